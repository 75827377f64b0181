package brackets

import (
	"context"

	"github.com/dmitrymomot/brackets/pkg/async"
)

// CheckAll validates every input concurrently, each on its own Validator,
// and returns the results in input order.
// It returns ctx.Err() if the context is cancelled before all checks finish.
func CheckAll(ctx context.Context, inputs ...string) ([]bool, error) {
	futures := make([]*async.Future[bool], 0, len(inputs))
	for _, input := range inputs {
		futures = append(futures, async.Async(ctx, input, checkWithContext))
	}
	return async.WaitAll(ctx, futures...)
}

func checkWithContext(ctx context.Context, input string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return New().Check(input), nil
}
