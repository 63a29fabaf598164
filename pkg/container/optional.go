package container

import (
	"fmt"

	"github.com/dmitrymomot/commons/pkg/function"
	"github.com/dmitrymomot/commons/pkg/objects"
)

// Optional is an immutable value that may or may not be present.
// The zero value is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v. It panics with ErrNilValue when v is nil.
func Of[T any](v T) Optional[T] {
	if objects.IsNil(v) {
		panic(ErrNilValue)
	}
	return Optional[T]{value: v, present: true}
}

// OfNullable returns an Optional holding v, or an empty Optional when v is nil.
func OfNullable[T any](v T) Optional[T] {
	if objects.IsNil(v) {
		return Optional[T]{}
	}
	return Optional[T]{value: v, present: true}
}

// OfPtr returns an Optional holding *p, or an empty Optional when p is nil.
func OfPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return OfNullable(*p)
}

// EmptyOptional returns an Optional without a value.
func EmptyOptional[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value, or ErrNoValuePresent when the Optional is empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoValuePresent
	}
	return o.value, nil
}

// MustGet returns the value and panics when the Optional is empty.
func (o Optional[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// IfPresent calls consumer with the value when one is present.
func (o Optional[T]) IfPresent(consumer function.Consumer[T]) {
	objects.MustNonNil(consumer)
	if o.present {
		consumer(o.value)
	}
}

// IfPresentOrElse calls consumer with the value when present, otherwise runs orElse.
func (o Optional[T]) IfPresentOrElse(consumer function.Consumer[T], orElse function.Runnable) {
	objects.MustNonNil(consumer)
	if o.present {
		consumer(o.value)
		return
	}
	objects.MustNonNil(orElse)
	orElse()
}

// Filter returns o when its value matches predicate, otherwise an empty Optional.
func (o Optional[T]) Filter(predicate function.Predicate[T]) Optional[T] {
	objects.MustNonNil(predicate)
	if !o.present || predicate(o.value) {
		return o
	}
	return Optional[T]{}
}

// Or returns o when a value is present, otherwise the Optional produced by supplier.
func (o Optional[T]) Or(supplier function.Supplier[Optional[T]]) Optional[T] {
	if o.present {
		return o
	}
	return objects.MustNonNil(supplier)()
}

// OrElse returns the value when present, otherwise other.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value when present, otherwise the result of supplier.
func (o Optional[T]) OrElseGet(supplier function.Supplier[T]) T {
	if o.present {
		return o.value
	}
	return objects.MustNonNil(supplier)()
}

// OrElseErr returns the value when present. Otherwise it returns the error
// produced by supplier, or ErrNoValuePresent when supplier is nil.
func (o Optional[T]) OrElseErr(supplier function.Supplier[error]) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	if supplier == nil {
		return zero, ErrNoValuePresent
	}
	return zero, supplier()
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// Map applies mapper to the value of o when present and wraps the result with OfNullable.
func Map[T, U any](o Optional[T], mapper function.Function[T, U]) Optional[U] {
	objects.MustNonNil(mapper)
	if !o.present {
		return Optional[U]{}
	}
	return OfNullable(mapper(o.value))
}

// FlatMap applies mapper to the value of o when present and returns its result unwrapped.
func FlatMap[T, U any](o Optional[T], mapper function.Function[T, Optional[U]]) Optional[U] {
	objects.MustNonNil(mapper)
	if !o.present {
		return Optional[U]{}
	}
	return mapper(o.value)
}
