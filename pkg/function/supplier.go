package function

// Supplier produces a value on every call.
type Supplier[T any] func() T

// Get calls the supplier.
func (s Supplier[T]) Get() T {
	return s()
}

// Constant returns a supplier that always yields v.
func Constant[T any](v T) Supplier[T] {
	return func() T { return v }
}
