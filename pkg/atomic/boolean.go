package atomic

import "strconv"

// Boolean is a container.BooleanHolder safe for concurrent use.
// An absent value reads as false.
type Boolean struct {
	Reference[bool]
}

// NewBoolean creates a Boolean holding v.
func NewBoolean(v bool) *Boolean {
	b := &Boolean{}
	b.Set(v)
	return b
}

// WithTrue creates a Boolean holding true.
func WithTrue() *Boolean {
	return NewBoolean(true)
}

// WithFalse creates a Boolean holding false.
func WithFalse() *Boolean {
	return NewBoolean(false)
}

// True sets the value to true and returns true.
func (b *Boolean) True() bool {
	return b.SetAndGet(true)
}

// False sets the value to false and returns false.
func (b *Boolean) False() bool {
	return b.SetAndGet(false)
}

// Compliment negates the value in one step and returns the result.
func (b *Boolean) Compliment() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.SetAndGet(!b.Get())
}

// Bool returns the value, false when absent.
func (b *Boolean) Bool() bool {
	return b.Get()
}

func (b *Boolean) String() string {
	return strconv.FormatBool(b.Get())
}
