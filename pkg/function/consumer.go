package function

import "github.com/dmitrymomot/commons/pkg/objects"

// Consumer accepts a value and returns nothing.
type Consumer[T any] func(T)

// Accept calls the consumer.
func (c Consumer[T]) Accept(t T) {
	c(t)
}

// AndThen returns a consumer that calls c and then after with the same value.
func (c Consumer[T]) AndThen(after Consumer[T]) Consumer[T] {
	objects.MustNonNil(after)
	return func(t T) {
		c(t)
		after(t)
	}
}

// BiConsumer accepts two values and returns nothing.
type BiConsumer[T, U any] func(T, U)

// Accept calls the consumer.
func (c BiConsumer[T, U]) Accept(t T, u U) {
	c(t, u)
}

// AndThen returns a consumer that calls c and then after with the same values.
func (c BiConsumer[T, U]) AndThen(after BiConsumer[T, U]) BiConsumer[T, U] {
	objects.MustNonNil(after)
	return func(t T, u U) {
		c(t, u)
		after(t, u)
	}
}
