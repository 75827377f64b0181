package async

import "context"

// Future holds the result of a computation started by Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation finishes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Done is closed once the result is available.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async runs fn with param in its own goroutine and returns a Future for its result.
// If ctx is already cancelled fn is not called and the Future carries ctx.Err().
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// WaitAll collects the results of futures in order.
// It stops at the first error, or when ctx is cancelled while waiting,
// and returns the results gathered so far.
func WaitAll[U any](ctx context.Context, futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		case <-future.Done():
		}

		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
