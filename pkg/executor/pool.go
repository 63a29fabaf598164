package executor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dmitrymomot/commons/pkg/atomic"
	"github.com/dmitrymomot/commons/pkg/container"
	"github.com/dmitrymomot/commons/pkg/function"
	"github.com/dmitrymomot/commons/pkg/logger"
)

// Pool runs tasks on at most a fixed number of goroutines at a time.
// Accepted tasks are queued and started strictly in submission order.
type Pool struct {
	name    string
	workers int
	log     *slog.Logger

	sem    *semaphore.Weighted
	wg     sync.WaitGroup
	ctx    context.Context // cancelled to drop queued tasks
	cancel context.CancelFunc

	qmu   sync.Mutex
	queue []task
	wake  chan struct{}

	closed    atomic.Boolean
	submitted atomic.Integer
	active    atomic.Integer
	completed atomic.Integer
	panicked  atomic.Integer
}

type task struct {
	id  string
	run function.Runnable
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger for task lifecycle events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// WithName sets the pool name used in log records. Empty names are ignored.
func WithName(name string) Option {
	return func(p *Pool) {
		if name != "" {
			p.name = name
		}
	}
}

// NewFixedPool creates a pool running at most n tasks concurrently.
// The pool owns a dispatching goroutine until Shutdown is called.
func NewFixedPool(n int, opts ...Option) (*Pool, error) {
	if n < 1 {
		return nil, ErrInvalidWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		name:    "pool",
		workers: n,
		log:     slog.Default(),
		sem:     semaphore.NewWeighted(int64(n)),
		ctx:     ctx,
		cancel:  cancel,
		wake:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(logger.Executor(p.name))

	go p.dispatch()
	return p, nil
}

// NewSingleThread creates a pool that runs one task at a time, in submission order.
func NewSingleThread(opts ...Option) *Pool {
	p, _ := NewFixedPool(1, opts...)
	return p
}

// Execute queues fn. It returns ErrExecutorShutdown after Shutdown was called.
func (p *Pool) Execute(fn function.Runnable) error {
	if fn == nil {
		return ErrNilTask
	}

	// the closed flag, wg.Add and the enqueue change together so Shutdown
	// never misses a task and queue order matches acceptance order
	err := p.closed.Do(func(closed container.Holder[bool]) error {
		if closed.Get() {
			return ErrExecutorShutdown
		}
		p.wg.Add(1)
		p.qmu.Lock()
		p.queue = append(p.queue, task{id: uuid.NewString(), run: fn})
		p.qmu.Unlock()
		p.submitted.Increment()
		return nil
	})
	if err != nil {
		return err
	}

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return nil
}

// dispatch pops tasks in queue order and starts each one once a worker slot
// is free. It returns when the pool context is cancelled.
func (p *Pool) dispatch() {
	for {
		t, ok := p.pop()
		if !ok {
			select {
			case <-p.wake:
				continue
			case <-p.ctx.Done():
				p.dropQueued()
				return
			}
		}

		if err := p.acquire(); err != nil {
			p.drop(t, err)
			p.dropQueued()
			return
		}
		go p.run(t)
	}
}

func (p *Pool) acquire() error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	return p.sem.Acquire(p.ctx, 1)
}

func (p *Pool) pop() (task, bool) {
	p.qmu.Lock()
	defer p.qmu.Unlock()
	if len(p.queue) == 0 {
		return task{}, false
	}
	t := p.queue[0]
	p.queue[0] = task{}
	p.queue = p.queue[1:]
	return t, true
}

func (p *Pool) dropQueued() {
	p.qmu.Lock()
	queued := p.queue
	p.queue = nil
	p.qmu.Unlock()

	for _, t := range queued {
		p.drop(t, p.ctx.Err())
	}
}

func (p *Pool) drop(t task, err error) {
	defer p.wg.Done()
	p.log.Warn("task dropped before start", logger.TaskID(t.id), logger.Error(err))
}

func (p *Pool) run(t task) {
	defer p.wg.Done()
	defer p.sem.Release(1)

	p.active.Increment()
	defer p.active.Decrement()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Increment()
			p.log.Error("task panicked", logger.TaskID(t.id), logger.Panic(r))
		}
		p.completed.Increment()
		p.log.Debug("task finished", logger.TaskID(t.id), logger.Duration(time.Since(start)))
	}()

	p.log.Debug("task started", logger.TaskID(t.id))
	t.run.Run()
}

// Shutdown stops accepting tasks and waits until queued and running tasks finish
// or ctx is done. When ctx is done first, tasks that have not started are
// dropped, running tasks keep running, and the context error is returned.
// Calling Shutdown more than once is safe.
func (p *Pool) Shutdown(ctx context.Context) error {
	if !p.closed.GetAndSet(true) {
		p.log.Debug("shutting down", logger.Workers(p.workers), slog.Int("submitted", p.Submitted()))
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}

// IsShutdown reports whether Shutdown has been called.
func (p *Pool) IsShutdown() bool {
	return p.closed.Get()
}

// Name, Workers, Active and Panicked report the pool name, its size, the
// number of running tasks and the number of tasks that panicked.
func (p *Pool) Name() string  { return p.name }
func (p *Pool) Workers() int  { return p.workers }
func (p *Pool) Active() int   { return p.active.Get() }
func (p *Pool) Panicked() int { return p.panicked.Get() }

// Completed returns the number of tasks that ran to the end, including panicked ones.
func (p *Pool) Completed() int {
	return p.completed.Get()
}

// Submitted returns the number of accepted tasks.
func (p *Pool) Submitted() int {
	return p.submitted.Get()
}
