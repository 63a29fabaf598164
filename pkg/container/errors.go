package container

import "github.com/dmitrymomot/commons/pkg/exception"

var (
	// ErrNoValuePresent is returned when reading an empty Optional.
	ErrNoValuePresent = exception.NoSuchElement("no value present")

	// ErrNilValue is the panic value of Of when it receives a nil value.
	ErrNilValue = exception.IllegalArgument("value cannot be nil")
)
