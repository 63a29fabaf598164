package container

// Boolean is a mutable boolean cell. An absent value reads as false.
// It is not safe for concurrent use; see atomic.Boolean.
type Boolean struct {
	Container[bool]
}

// NewBoolean creates a Boolean holding v.
func NewBoolean(v bool) *Boolean {
	b := &Boolean{}
	b.put(v)
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

// True sets the value to true regardless of the previous value.
func (b *Boolean) True() bool {
	return b.SetAndGet(true)
}

// False sets the value to false regardless of the previous value.
func (b *Boolean) False() bool {
	return b.SetAndGet(false)
}

// Compliment negates the value and returns the result.
// An absent value is treated as false, so the result is true.
func (b *Boolean) Compliment() bool {
	return b.SetAndGet(!b.Get())
}

// Bool returns the value for use in conditions.
func (b *Boolean) Bool() bool {
	return b.Get()
}

func (b *Boolean) String() string {
	if b.Get() {
		return "true"
	}
	return "false"
}
