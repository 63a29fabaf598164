package atomic

import (
	"fmt"

	"github.com/dmitrymomot/commons/pkg/container"
	"github.com/dmitrymomot/commons/pkg/function"
	"github.com/dmitrymomot/commons/pkg/objects"
	"github.com/dmitrymomot/commons/pkg/synchronized"
)

// Reference is a container.Holder safe for concurrent use.
// The zero value is an empty reference ready to use. A Reference must not be
// copied after first use.
type Reference[T any] struct {
	mu    synchronized.Mutex
	value container.Container[T]
}

// New creates a Reference holding v. A nil v yields an empty reference.
func New[T any](v T) *Reference[T] {
	r := &Reference[T]{}
	r.value.Set(v)
	return r
}

// Empty creates a Reference without a value.
func Empty[T any]() *Reference[T] {
	return &Reference[T]{}
}

// Get returns the held value, or the zero value of T when empty.
func (r *Reference[T]) Get() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.Get()
}

// Load returns the held value and whether one is present.
func (r *Reference[T]) Load() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.Load()
}

// Set replaces the value. Setting nil empties the reference.
func (r *Reference[T]) Set(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value.Set(v)
}

// Clear removes the value.
func (r *Reference[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value.Clear()
}

// SetAndGet sets v and returns it.
func (r *Reference[T]) SetAndGet(v T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.SetAndGet(v)
}

// GetAndSet sets v and returns the previous value.
func (r *Reference[T]) GetAndSet(v T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.GetAndSet(v)
}

// Unset empties the reference and returns the value it held.
func (r *Reference[T]) Unset() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.Unset()
}

// Contains reports whether the value is deeply equal to item. An empty
// reference contains only nil.
func (r *Reference[T]) Contains(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.Contains(item)
}

// IsPresent reports whether a value is held.
func (r *Reference[T]) IsPresent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.IsPresent()
}

// Update replaces the value with fn applied to it and returns the new value.
// fn runs under the lock and may call other methods of r.
func (r *Reference[T]) Update(fn func(T) T) T {
	objects.MustNonNil(fn)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.SetAndGet(fn(r.Get()))
}

// GetAndUpdate is like Update but returns the previous value.
func (r *Reference[T]) GetAndUpdate(fn func(T) T) T {
	objects.MustNonNil(fn)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.GetAndSet(fn(r.Get()))
}

// CompareAndSet sets update when the reference currently holds a value deeply
// equal to expect, and reports whether it did.
func (r *Reference[T]) CompareAndSet(expect, update T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.Contains(expect) {
		return false
	}
	r.Set(update)
	return true
}

// Do runs fn with r locked for its whole duration and returns fn's error.
// The holder passed to fn is r itself.
func (r *Reference[T]) Do(fn func(h container.Holder[T]) error) error {
	return synchronized.Do(&r.mu, func() error {
		return fn(r)
	})
}

// Supplier returns a supplier reading the current value on each call.
func (r *Reference[T]) Supplier() function.Supplier[T] {
	return r.Get
}

// Optional returns a snapshot of the current value.
func (r *Reference[T]) Optional() container.Optional[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value.Optional()
}

func (r *Reference[T]) String() string {
	v, ok := r.Load()
	if !ok {
		return "Reference[<empty>]"
	}
	return fmt.Sprintf("Reference[%v]", v)
}
