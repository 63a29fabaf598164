package synchronized

import "github.com/dmitrymomot/commons/pkg/exception"

var (
	// ErrNotOwner is the panic value of Unlock called by a goroutine that does not hold the mutex.
	ErrNotOwner = exception.IllegalState("synchronized: unlock of mutex not held by current goroutine")

	// ErrNilLocker is returned when a helper receives a nil lock.
	ErrNilLocker = exception.IllegalArgument("synchronized: locker cannot be nil")

	// ErrNilFunc is returned when a helper receives a nil function.
	ErrNilFunc = exception.IllegalArgument("synchronized: function cannot be nil")
)
