package objects

import "github.com/dmitrymomot/commons/pkg/exception"

// ErrNilValue is returned by RequireNonNil when no custom error is supplied.
var ErrNilValue = exception.IllegalArgument("object cannot be nil")
