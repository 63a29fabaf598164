package container

// Holder is the method set shared by plain and atomic single-slot containers.
type Holder[T any] interface {
	Get() T
	Load() (T, bool)
	Set(v T)
	Clear()
	SetAndGet(v T) T
	GetAndSet(v T) T
	Unset() (T, bool)
	Contains(item T) bool
	IsPresent() bool
}

// BooleanHolder is implemented by Boolean and atomic.Boolean.
type BooleanHolder interface {
	Holder[bool]
	True() bool
	False() bool
	Compliment() bool
	Bool() bool
}

// IntegerHolder is implemented by Integer and atomic.Integer.
type IntegerHolder interface {
	Holder[int]

	Add(v int)
	AddAndGet(v int) int
	GetAndAdd(v int) int
	Subtract(v int)
	SubtractAndGet(v int) int
	GetAndSubtract(v int) int

	Increment()
	IncrementAndGet() int
	GetAndIncrement() int
	Decrement()
	DecrementAndGet() int
	GetAndDecrement() int

	Compare(v int) int
	Equal(v int) bool
	LessThan(v int) bool
	LessOrEqual(v int) bool
	GreaterThan(v int) bool
	GreaterOrEqual(v int) bool

	Int() int
	Int64() int64
}

var (
	_ Holder[any]   = (*Container[any])(nil)
	_ BooleanHolder = (*Boolean)(nil)
	_ IntegerHolder = (*Integer)(nil)
)
