package executor

import (
	"sync"

	"github.com/dmitrymomot/commons/pkg/async"
	"github.com/dmitrymomot/commons/pkg/function"
)

// Executor runs tasks. Implementations decide where and when.
type Executor interface {
	// Execute schedules task. It returns an error when the task cannot be accepted.
	Execute(task function.Runnable) error
}

var (
	_ async.Executor = Executor(nil)
	_ Executor       = (*DirectExecutor)(nil)
	_ Executor       = (*Pool)(nil)
)

// DirectExecutor runs every task in the calling goroutine before Execute returns.
type DirectExecutor struct{}

// Execute runs task. A panic in task propagates to the caller.
func (DirectExecutor) Execute(task function.Runnable) error {
	if task == nil {
		return ErrNilTask
	}
	task.Run()
	return nil
}

var direct = sync.OnceValue(func() *DirectExecutor {
	return &DirectExecutor{}
})

// Direct returns the shared DirectExecutor.
func Direct() *DirectExecutor {
	return direct()
}
