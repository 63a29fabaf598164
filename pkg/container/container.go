package container

import (
	"fmt"

	"github.com/dmitrymomot/commons/pkg/function"
	"github.com/dmitrymomot/commons/pkg/objects"
)

// Container is a mutable cell holding at most one value.
// The zero value is an empty container ready to use.
// It is not safe for concurrent use.
type Container[T any] struct {
	value   T
	present bool
}

// New creates a container holding v. A nil v yields an empty container.
func New[T any](v T) *Container[T] {
	c := &Container[T]{}
	c.Set(v)
	return c
}

// Empty creates a container without a value.
func Empty[T any]() *Container[T] {
	return &Container[T]{}
}

// Get returns the held value, or the zero value of T when the container is empty.
func (c *Container[T]) Get() T {
	return c.value
}

// Load returns the held value and whether one is present.
func (c *Container[T]) Load() (T, bool) {
	return c.value, c.present
}

// Set replaces the held value. The previous value is not retained.
// Setting a nil pointer, map, slice, channel, function or interface clears the container.
func (c *Container[T]) Set(v T) {
	if objects.IsNil(v) {
		c.Clear()
		return
	}
	c.put(v)
}

// Clear removes the held value.
func (c *Container[T]) Clear() {
	var zero T
	c.value = zero
	c.present = false
}

// SetAndGet sets v and returns it, which keeps call chains fluent.
func (c *Container[T]) SetAndGet(v T) T {
	c.Set(v)
	return c.value
}

// GetAndSet sets v and returns the value held before the call.
func (c *Container[T]) GetAndSet(v T) T {
	old := c.value
	c.Set(v)
	return old
}

// Unset empties the container and returns the value it held.
func (c *Container[T]) Unset() (T, bool) {
	old, ok := c.value, c.present
	c.Clear()
	return old, ok
}

// Contains reports whether the container holds a value deeply equal to item.
// An empty container contains only nil, since setting nil empties it.
func (c *Container[T]) Contains(item T) bool {
	if !c.present {
		return objects.IsNil(item)
	}
	return objects.Equal(c.value, item)
}

// IsPresent reports whether the container holds a value.
func (c *Container[T]) IsPresent() bool {
	return c.present
}

// Supplier returns a supplier reading the current value on each call.
func (c *Container[T]) Supplier() function.Supplier[T] {
	return c.Get
}

// Optional returns a snapshot of the current value as an Optional.
func (c *Container[T]) Optional() Optional[T] {
	if !c.present {
		return EmptyOptional[T]()
	}
	return Optional[T]{value: c.value, present: true}
}

func (c *Container[T]) String() string {
	if !c.present {
		return "Container[<empty>]"
	}
	return fmt.Sprintf("Container[%v]", c.value)
}

func (c *Container[T]) put(v T) {
	c.value = v
	c.present = true
}
