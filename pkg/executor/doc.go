// Package executor runs function.Runnable tasks and turns functions into
// async.Future values.
//
// Two executors are provided:
//
//   - Direct returns the process-wide executor that runs each task in the
//     calling goroutine. It is mostly useful in tests and for cheap listeners.
//   - Pool is a fixed-size worker pool. Tasks are started in submission order;
//     those beyond the worker count wait in a FIFO queue. Shutdown stops
//     accepting tasks and waits for the queued and running ones.
//
// Submit runs a function on any Executor and returns a Future for its result.
// A panic inside the function fails the Future with ErrTaskPanicked instead of
// crashing the process:
//
//	pool, err := executor.NewFixedPool(4, executor.WithName("thumbnails"))
//	if err != nil {
//		return err
//	}
//	defer pool.Shutdown(context.Background())
//
//	f := executor.Submit(pool, ctx, func(ctx context.Context) (string, error) {
//		return render(ctx, id)
//	})
//	path, err := f.Await()
//
// The context handed to the function carries logger scope attributes
// "task_id" and "executor", so its *Context log calls are tagged.
//
// InvokeAll submits several functions and waits for all of them, cancelling
// the rest on the first error.
//
// # Configuration
//
// Config reads COMMONS_EXECUTOR_WORKERS and COMMONS_EXECUTOR_NAME through
// package config; NewPoolFromConfig builds a Pool from it.
package executor
