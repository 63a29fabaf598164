package exception

import "errors"

// Error binds a message and an optional cause to one of the error kinds.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// New creates an Error of the given kind.
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind caused by cause.
func Wrap(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// NoSuchElement creates an ErrNoSuchElement error with a message.
func NoSuchElement(message string) *Error {
	return New(ErrNoSuchElement, message)
}

// IllegalArgument creates an ErrIllegalArgument error with a message.
func IllegalArgument(message string) *Error {
	return New(ErrIllegalArgument, message)
}

// IllegalState creates an ErrIllegalState error with a message.
func IllegalState(message string) *Error {
	return New(ErrIllegalState, message)
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.Kind == nil:
		msg = e.Message
	case e.Message == "":
		msg = e.Kind.Error()
	default:
		msg = e.Kind.Error() + ": " + e.Message
	}
	if e.Cause != nil {
		if msg == "" {
			return e.Cause.Error()
		}
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func IsNoSuchElement(err error) bool {
	return errors.Is(err, ErrNoSuchElement)
}

func IsIllegalArgument(err error) bool {
	return errors.Is(err, ErrIllegalArgument)
}

func IsIllegalState(err error) bool {
	return errors.Is(err, ErrIllegalState)
}
