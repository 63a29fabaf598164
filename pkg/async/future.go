package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/commons/pkg/function"
	"github.com/dmitrymomot/commons/pkg/logger"
	"github.com/dmitrymomot/commons/pkg/objects"
)

// Executor runs listener callbacks. executor.Executor satisfies it.
type Executor interface {
	Execute(task function.Runnable) error
}

// State describes the completion state of a Future.
type State int

const (
	Pending State = iota
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type listener struct {
	fn       function.Runnable
	executor Executor
}

// Future represents the result of an asynchronous computation.
// A Future completes exactly once; later completion attempts are ignored.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}

	mu        sync.Mutex // guards listeners and the close of done
	listeners []listener
}

// Resolver completes the Future it was created with.
type Resolver[U any] struct {
	f *Future[U]
}

// NewFuture returns a pending Future and the Resolver that completes it.
func NewFuture[U any]() (*Future[U], Resolver[U]) {
	f := &Future[U]{done: make(chan struct{})}
	return f, Resolver[U]{f: f}
}

// Complete sets the result and error of the Future.
// It reports false when the Future was already complete.
func (r Resolver[U]) Complete(result U, err error) bool {
	return r.f.complete(result, err)
}

// Resolve completes the Future with a result.
func (r Resolver[U]) Resolve(result U) bool {
	return r.f.complete(result, nil)
}

// Reject completes the Future with an error and the zero result.
func (r Resolver[U]) Reject(err error) bool {
	var zero U
	return r.f.complete(zero, err)
}

func (f *Future[U]) complete(result U, err error) bool {
	var (
		completed bool
		pending   []listener
	)
	f.once.Do(func() {
		completed = true
		f.result = result
		f.err = err

		f.mu.Lock()
		close(f.done)
		pending = f.listeners
		f.listeners = nil
		f.mu.Unlock()
	})

	// outside once.Do so a listener may try to complete f again
	for _, l := range pending {
		dispatch(l)
	}
	return completed
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// AwaitContext waits for completion or for ctx to be done, whichever comes first.
// The Future keeps running when ctx is cancelled.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the Future completes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// State reports whether the Future is pending, succeeded or failed.
func (f *Future[U]) State() State {
	if !f.IsComplete() {
		return Pending
	}
	if f.err != nil {
		return Failed
	}
	return Succeeded
}

// AddListener registers fn to run once the Future completes. Listeners run in
// registration order, each through its executor; a nil executor runs fn in the
// goroutine that completes the Future. A listener added after completion is
// dispatched immediately.
func (f *Future[U]) AddListener(fn function.Runnable, executor Executor) {
	objects.MustNonNil(fn)
	l := listener{fn: fn, executor: executor}

	f.mu.Lock()
	if !f.IsComplete() {
		f.listeners = append(f.listeners, l)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	dispatch(l)
}

// AddDoneCallback registers fn to receive the Future after it completes.
// fn runs in the goroutine that completes the Future.
func (f *Future[U]) AddDoneCallback(fn func(*Future[U])) {
	objects.MustNonNil(fn)
	f.AddListener(func() { fn(f) }, nil)
}

func dispatch(l listener) {
	if l.executor == nil {
		l.fn()
		return
	}
	if err := l.executor.Execute(l.fn); err != nil {
		slog.Default().Error("async: listener rejected by executor",
			logger.Component("async"),
			logger.Error(err),
		)
	}
}
