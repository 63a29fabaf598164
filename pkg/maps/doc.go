// Package maps provides Map, a generic map type with the convenience methods
// of java.util.Map: PutIfAbsent, ComputeIfAbsent, Replace, ForEach and friends.
//
// Map wraps a built-in Go map and is not safe for concurrent use. The zero
// value is an empty map ready to use.
//
//	m := maps.New[string, int]()
//	m.Put("a", 1)
//	m.ComputeIfAbsent("b", func(k string) int { return len(k) })
//	for k, v := range m.All() {
//		fmt.Println(k, v)
//	}
//
// Iteration order of All, Keys, Entries and ForEach is unspecified, like the
// built-in map. Use SortedKeys when keys are ordered and a stable order is needed.
package maps
