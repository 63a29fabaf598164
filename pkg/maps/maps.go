package maps

import (
	"cmp"
	"iter"
	stdmaps "maps"
	"slices"

	"github.com/dmitrymomot/commons/pkg/function"
	"github.com/dmitrymomot/commons/pkg/objects"
)

// Map is a map with java.util.Map style helpers.
type Map[K comparable, V any] struct {
	data map[K]V
}

// New creates an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{data: make(map[K]V)}
}

// From creates a Map holding a copy of src.
func From[K comparable, V any](src map[K]V) *Map[K, V] {
	m := &Map[K, V]{data: make(map[K]V, len(src))}
	stdmaps.Copy(m.data, src)
	return m
}

// Put associates v with k and returns v.
func (m *Map[K, V]) Put(k K, v V) V {
	if m.data == nil {
		m.data = make(map[K]V)
	}
	m.data[k] = v
	return v
}

// PutEntry stores the pair held by e.
func (m *Map[K, V]) PutEntry(e Entry[K, V]) {
	m.Put(e.Key, e.Value)
}

// PutIfAbsent stores v only when k has no mapping and returns the value mapped to k afterwards.
func (m *Map[K, V]) PutIfAbsent(k K, v V) V {
	if cur, ok := m.data[k]; ok {
		return cur
	}
	return m.Put(k, v)
}

// ComputeIfAbsent stores fn(k) when k has no mapping and returns the value mapped to k afterwards.
// fn is not called when k is present.
func (m *Map[K, V]) ComputeIfAbsent(k K, fn function.Function[K, V]) V {
	objects.MustNonNil(fn)
	if cur, ok := m.data[k]; ok {
		return cur
	}
	return m.Put(k, fn(k))
}

// Get returns the value mapped to k and whether the mapping exists.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.data[k]
	return v, ok
}

// GetOrDefault returns the value mapped to k, or def when there is none.
func (m *Map[K, V]) GetOrDefault(k K, def V) V {
	if v, ok := m.data[k]; ok {
		return v
	}
	return def
}

func (m *Map[K, V]) Size() int {
	return len(m.data)
}

func (m *Map[K, V]) IsEmpty() bool {
	return len(m.data) == 0
}

func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.data[k]
	return ok
}

// ContainsValue reports whether any key maps to a value deeply equal to v.
func (m *Map[K, V]) ContainsValue(v V) bool {
	for _, cur := range m.data {
		if objects.Equal(cur, v) {
			return true
		}
	}
	return false
}

// Remove deletes the mapping for k and returns the removed value.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	v, ok := m.data[k]
	if ok {
		delete(m.data, k)
	}
	return v, ok
}

// PutAll copies every mapping of src into m, overwriting existing keys.
func (m *Map[K, V]) PutAll(src map[K]V) {
	if m.data == nil {
		m.data = make(map[K]V, len(src))
	}
	stdmaps.Copy(m.data, src)
}

// Keys returns the keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	return slices.Collect(stdmaps.Keys(m.data))
}

// Values returns the values in unspecified order.
func (m *Map[K, V]) Values() []V {
	return slices.Collect(stdmaps.Values(m.data))
}

// Entries returns the mappings as entries in unspecified order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m.data))
	for k, v := range m.data {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// ForEach calls fn for every mapping.
func (m *Map[K, V]) ForEach(fn function.BiConsumer[K, V]) {
	objects.MustNonNil(fn)
	for k, v := range m.data {
		fn(k, v)
	}
}

// ForEachEntry calls fn with an Entry for every mapping.
func (m *Map[K, V]) ForEachEntry(fn function.Consumer[Entry[K, V]]) {
	objects.MustNonNil(fn)
	for k, v := range m.data {
		fn(Entry[K, V]{Key: k, Value: v})
	}
}

// ReplaceOldValue maps k to newValue only when k currently maps to a value
// deeply equal to oldValue. It reports whether the value was replaced.
func (m *Map[K, V]) ReplaceOldValue(k K, oldValue, newValue V) bool {
	cur, ok := m.data[k]
	if !ok || !objects.Equal(cur, oldValue) {
		return false
	}
	m.data[k] = newValue
	return true
}

// Replace maps k to v only when k already has a mapping.
// It returns the previous value and whether a replacement happened.
func (m *Map[K, V]) Replace(k K, v V) (V, bool) {
	old, ok := m.data[k]
	if ok {
		m.data[k] = v
	}
	return old, ok
}

// All returns an iterator over the mappings.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return stdmaps.All(m.data)
}

// Copy returns a shallow copy of m.
func (m *Map[K, V]) Copy() *Map[K, V] {
	return From(m.data)
}

// Map returns a shallow copy of the mappings as a built-in map.
func (m *Map[K, V]) Map() map[K]V {
	out := make(map[K]V, len(m.data))
	stdmaps.Copy(out, m.data)
	return out
}

func (m *Map[K, V]) Clear() {
	clear(m.data)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m *Map[K, V]) []K {
	return slices.Sorted(stdmaps.Keys(m.data))
}
