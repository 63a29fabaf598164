package executor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/commons/pkg/async"
	"github.com/dmitrymomot/commons/pkg/logger"
)

type named interface {
	Name() string
}

// Submit schedules fn on e and returns a Future for its result.
//
// The context passed to fn carries logger scope attributes "task_id" and, for
// named executors such as Pool, "executor", so records logged with it are
// tagged with both.
//
// The Future fails with the error from e when the task is rejected, with the
// context error when ctx is done before fn starts, and with ErrTaskPanicked
// when fn panics.
func Submit[T any](e Executor, ctx context.Context, fn func(context.Context) (T, error)) *async.Future[T] {
	f, r := async.NewFuture[T]()
	if fn == nil {
		r.Reject(ErrNilTask)
		return f
	}

	err := e.Execute(func() {
		defer func() {
			if p := recover(); p != nil {
				r.Reject(fmt.Errorf("%w: %v", ErrTaskPanicked, p))
			}
		}()
		if err := ctx.Err(); err != nil {
			r.Reject(err)
			return
		}
		r.Complete(fn(logger.WithScope(ctx, scope(e)...)))
	})
	if err != nil {
		r.Reject(err)
	}
	return f
}

func scope(e Executor) []slog.Attr {
	attrs := []slog.Attr{logger.TaskID(uuid.NewString())}
	if n, ok := e.(named); ok {
		attrs = append(attrs, logger.Executor(n.Name()))
	}
	return attrs
}

// InvokeAll runs every fn on e and waits for all of them. Results keep the
// order of fns. The first error cancels the context passed to the remaining
// functions and is returned.
//
// Each fn is submitted from its own goroutine, so functions waiting on a
// sibling's failure make progress even on the direct executor. Start order on
// a Pool is therefore not the order of fns.
func InvokeAll[T any](ctx context.Context, e Executor, fns ...func(context.Context) (T, error)) ([]T, error) {
	g, gctx := errgroup.WithContext(ctx)

	results := make([]T, len(fns))
	for i, fn := range fns {
		g.Go(func() error {
			v, err := Submit(e, gctx, fn).Await()
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
