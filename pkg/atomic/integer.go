package atomic

import (
	"cmp"
	"strconv"
)

// Integer is a container.IntegerHolder safe for concurrent use.
// An absent value reads as 0. Arithmetic wraps on overflow.
type Integer struct {
	Reference[int]
}

// NewInteger creates an Integer holding v.
func NewInteger(v int) *Integer {
	i := &Integer{}
	i.Set(v)
	return i
}

// Add adds v. Overflow wraps.
func (i *Integer) Add(v int) {
	i.AddAndGet(v)
}

// AddAndGet adds v and returns the new value.
func (i *Integer) AddAndGet(v int) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.SetAndGet(i.Get() + v)
}

// GetAndAdd adds v and returns the previous value.
func (i *Integer) GetAndAdd(v int) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.GetAndSet(i.Get() + v)
}

// Subtract subtracts v. Overflow wraps.
func (i *Integer) Subtract(v int) {
	i.AddAndGet(-v)
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
	i.AddAndGet(1)
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
	i.AddAndGet(-1)
}

// DecrementAndGet subtracts one and returns the new value.
func (i *Integer) DecrementAndGet() int {
	return i.AddAndGet(-1)
}

// GetAndDecrement subtracts one and returns the previous value.
func (i *Integer) GetAndDecrement() int {
	return i.GetAndAdd(-1)
}

// Compare returns -1, 0 or +1 depending on whether the value is less than,
// equal to or greater than v.
func (i *Integer) Compare(v int) int {
	return cmp.Compare(i.Get(), v)
}

// Equal, LessThan, LessOrEqual, GreaterThan and GreaterOrEqual compare
// a snapshot of the value with v.
func (i *Integer) Equal(v int) bool          { return i.Get() == v }
func (i *Integer) LessThan(v int) bool       { return i.Get() < v }
func (i *Integer) LessOrEqual(v int) bool    { return i.Get() <= v }
func (i *Integer) GreaterThan(v int) bool    { return i.Get() > v }
func (i *Integer) GreaterOrEqual(v int) bool { return i.Get() >= v }

// Int returns the value, 0 when absent.
func (i *Integer) Int() int {
	return i.Get()
}

// Int64 returns the value as int64.
func (i *Integer) Int64() int64 {
	return int64(i.Get())
}

func (i *Integer) String() string {
	return strconv.Itoa(i.Get())
}
