package container

import (
	"cmp"
	"strconv"
)

// Integer is a mutable int cell. An absent value reads as 0.
//
// Every compound operation is a Get followed by a Set. Arithmetic wraps on
// overflow like any Go int. Integer is not safe for concurrent use; see
// atomic.Integer.
type Integer struct {
	Container[int]
}

// NewInteger creates an Integer holding v.
func NewInteger(v int) *Integer {
	i := &Integer{}
	i.put(v)
	return i
}

// Add adds v to the value.
func (i *Integer) Add(v int) {
	i.Set(i.Get() + v)
}

// AddAndGet adds v and returns the new value.
func (i *Integer) AddAndGet(v int) int {
	return i.SetAndGet(i.Get() + v)
}

// GetAndAdd adds v and returns the previous value.
func (i *Integer) GetAndAdd(v int) int {
	return i.GetAndSet(i.Get() + v)
}

// Subtract subtracts v from the value.
func (i *Integer) Subtract(v int) {
	i.Add(-v)
}

// SubtractAndGet subtracts v and returns the new value.
func (i *Integer) SubtractAndGet(v int) int {
	return i.AddAndGet(-v)
}

// GetAndSubtract subtracts v and returns the previous value.
func (i *Integer) GetAndSubtract(v int) int {
	return i.GetAndAdd(-v)
}

// Increment adds one.
func (i *Integer) Increment() {
	i.Add(1)
}

// IncrementAndGet adds one and returns the new value.
func (i *Integer) IncrementAndGet() int {
	return i.AddAndGet(1)
}

// GetAndIncrement adds one and returns the previous value.
func (i *Integer) GetAndIncrement() int {
	return i.GetAndAdd(1)
}

// Decrement subtracts one.
func (i *Integer) Decrement() {
	i.Subtract(1)
}

// DecrementAndGet subtracts one and returns the new value.
func (i *Integer) DecrementAndGet() int {
	return i.SubtractAndGet(1)
}

// GetAndDecrement subtracts one and returns the previous value.
func (i *Integer) GetAndDecrement() int {
	return i.GetAndSubtract(1)
}

// Compare returns -1, 0 or +1 depending on whether the value is less than,
// equal to or greater than v.
func (i *Integer) Compare(v int) int {
	return cmp.Compare(i.Get(), v)
}

// Equal, LessThan, LessOrEqual, GreaterThan and GreaterOrEqual compare the
// value with v. An absent value compares as 0.
func (i *Integer) Equal(v int) bool          { return i.Get() == v }
func (i *Integer) LessThan(v int) bool       { return i.Get() < v }
func (i *Integer) LessOrEqual(v int) bool    { return i.Get() <= v }
func (i *Integer) GreaterThan(v int) bool    { return i.Get() > v }
func (i *Integer) GreaterOrEqual(v int) bool { return i.Get() >= v }

// Int returns the value as a native int.
func (i *Integer) Int() int {
	return i.Get()
}

// Int64 returns the value as an int64.
func (i *Integer) Int64() int64 {
	return int64(i.Get())
}

func (i *Integer) String() string {
	return strconv.Itoa(i.Get())
}
