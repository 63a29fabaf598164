package exception

import "errors"

var (
	// ErrNoSuchElement is returned when a value is expected to be present but is not.
	ErrNoSuchElement = errors.New("no such element")

	// ErrIllegalArgument is returned when a required argument is nil or invalid.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrIllegalState is returned when the receiver is not in a state that allows the call.
	ErrIllegalState = errors.New("illegal state")
)
