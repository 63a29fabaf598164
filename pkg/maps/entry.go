package maps

import "fmt"

// Entry is a key-value pair of a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewEntry creates an Entry.
func NewEntry[K comparable, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Value: v}
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}
