package executor

import (
	"errors"

	"github.com/dmitrymomot/commons/pkg/exception"
)

var (
	// ErrExecutorShutdown is returned for tasks submitted after Shutdown.
	ErrExecutorShutdown = exception.IllegalState("executor: executor has been shut down")

	// ErrInvalidWorkers is returned when a pool is created with fewer than one worker.
	ErrInvalidWorkers = exception.IllegalArgument("executor: worker count must be positive")

	// ErrNilTask is returned when a nil task is submitted.
	ErrNilTask = exception.IllegalArgument("executor: task cannot be nil")

	// ErrTaskPanicked fails a Future whose function panicked.
	ErrTaskPanicked = errors.New("executor: task panicked")
)
