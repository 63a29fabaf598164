package function

import "github.com/dmitrymomot/commons/pkg/objects"

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Test evaluates the predicate.
func (p Predicate[T]) Test(t T) bool {
	return p(t)
}

// Negate returns the logical negation of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(t T) bool { return !p(t) }
}

// And returns a short-circuiting conjunction of p and other.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	objects.MustNonNil(other)
	return func(t T) bool { return p(t) && other(t) }
}

// Or returns a short-circuiting disjunction of p and other.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	objects.MustNonNil(other)
	return func(t T) bool { return p(t) || other(t) }
}

// Always returns a predicate that accepts every value.
func Always[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Never returns a predicate that rejects every value.
func Never[T any]() Predicate[T] {
	return func(T) bool { return false }
}

// BiPredicate reports whether a pair of values satisfies a condition.
type BiPredicate[T, U any] func(T, U) bool

func (p BiPredicate[T, U]) Test(t T, u U) bool {
	return p(t, u)
}

func (p BiPredicate[T, U]) Negate() BiPredicate[T, U] {
	return func(t T, u U) bool { return !p(t, u) }
}

func (p BiPredicate[T, U]) And(other BiPredicate[T, U]) BiPredicate[T, U] {
	objects.MustNonNil(other)
	return func(t T, u U) bool { return p(t, u) && other(t, u) }
}

func (p BiPredicate[T, U]) Or(other BiPredicate[T, U]) BiPredicate[T, U] {
	objects.MustNonNil(other)
	return func(t T, u U) bool { return p(t, u) || other(t, u) }
}
