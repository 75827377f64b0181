// Package async provides small generic helpers for running a function in a
// goroutine and collecting its result later.
//
// Async starts the function and returns a *Future; Await blocks until the
// result is ready. WaitAll gathers several futures in order and honours
// context cancellation while waiting.
//
// # Usage
//
//	ctx := context.Background()
//	futures := make([]*async.Future[bool], 0, len(inputs))
//	for _, in := range inputs {
//	    futures = append(futures, async.Async(ctx, in, func(_ context.Context, s string) (bool, error) {
//	        return brackets.Check(s), nil
//	    }))
//	}
//	results, err := async.WaitAll(ctx, futures...)
//
// # Error Handling
//
// The package defines no error values of its own. A Future carries the error
// returned by the callback, or ctx.Err() when the context was cancelled before
// the callback started.
//
// Each call to Async spawns exactly one goroutine. Bound the number of calls
// when the workload is large.
package async
