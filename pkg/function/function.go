package function

import "github.com/dmitrymomot/commons/pkg/objects"

// Function maps a value of type T to a value of type U.
type Function[T, U any] func(T) U

// Apply calls the function.
func (f Function[T, U]) Apply(t T) U {
	return f(t)
}

// AndThen returns a function that applies f and then g to the result.
func AndThen[T, U, V any](f Function[T, U], g Function[U, V]) Function[T, V] {
	objects.MustNonNil(f)
	objects.MustNonNil(g)
	return func(t T) V {
		return g(f(t))
	}
}

// Identity returns a function that always returns its argument.
func Identity[T any]() Function[T, T] {
	return func(t T) T { return t }
}
