package objects

import "reflect"

// IsNil reports whether v is a nil interface or a nil pointer, map, slice,
// channel, function or unsafe pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// RequireNonNil returns v unchanged when it is not nil.
// Otherwise it returns the first supplied error, or ErrNilValue when none is given.
func RequireNonNil[T any](v T, errs ...error) (T, error) {
	if !IsNil(v) {
		return v, nil
	}
	var zero T
	for _, err := range errs {
		if err != nil {
			return zero, err
		}
	}
	return zero, ErrNilValue
}

// MustNonNil is like RequireNonNil but panics with ErrNilValue when v is nil.
func MustNonNil[T any](v T) T {
	v, err := RequireNonNil(v)
	if err != nil {
		panic(err)
	}
	return v
}

// DefaultIfNil returns def when v is nil, v otherwise.
func DefaultIfNil[T any](v, def T) T {
	if IsNil(v) {
		return def
	}
	return v
}

// Equal reports whether a and b are deeply equal.
// It backs the containment checks of containers and maps holding non-comparable types.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
