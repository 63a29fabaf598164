// Package exception defines the error kinds shared by the commons packages.
//
// Three kinds are distinguished:
//
//   - ErrNoSuchElement – a value was expected to be present but is not
//     (for example reading an empty Optional).
//   - ErrIllegalArgument – a required argument was nil or otherwise invalid.
//   - ErrIllegalState – the receiver is not in a state that allows the call
//     (for example submitting to an executor that was shut down).
//
// Kinds are plain sentinel errors, so callers match them with errors.Is. The
// Error type attaches a message and an optional cause to a kind while keeping
// both reachable through errors.Is and errors.As:
//
//	err := exception.Wrap(exception.ErrIllegalState, "pool is closed", ctx.Err())
//	errors.Is(err, exception.ErrIllegalState) // true
//	errors.Is(err, context.Canceled)          // true
//
// No error is ever swallowed by the commons packages: every failure reaches
// the immediate caller unchanged or wrapped.
package exception
