// Package objects provides nil-handling helpers for arguments and values.
//
// RequireNonNil returns its argument unchanged when it is present and an
// exception.ErrIllegalArgument error otherwise, so precondition checks read as
// a single statement:
//
//	fn, err := objects.RequireNonNil(consumer)
//	if err != nil {
//	    return err
//	}
//
// A value counts as nil when it is a nil interface or a nil pointer, map,
// slice, channel or function. Zero values of other kinds (0, "", false, empty
// structs) are present values.
package objects
