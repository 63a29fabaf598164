package async

import "context"

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f, r := NewFuture[U]()

	go func() {
		// Early exit prevents goroutine leak when context is pre-canceled
		if err := ctx.Err(); err != nil {
			r.Reject(err)
			return
		}
		r.Complete(fn(ctx, param))
	}()

	return f
}

// Completed returns a Future already completed with result and err.
func Completed[U any](result U, err error) *Future[U] {
	f, r := NewFuture[U]()
	r.Complete(result, err)
	return f
}

// WaitAll waits for all futures to complete and returns a slice of their results and an error
// if any of the futures returned an error.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed future,
// its result, and any error it might have returned.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// buffered so late finishers never block
	done := make(chan outcome, len(futures))
	for i, future := range futures {
		future.AddListener(func() {
			result, err := future.Await()
			done <- outcome{index: i, result: result, err: err}
		}, nil)
	}

	res := <-done
	return res.index, res.result, res.err
}
