package maps_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commons/pkg/maps"
)

func TestMap_Put(t *testing.T) {
	t.Parallel()

	var m maps.Map[string, int]
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 1, m.Put("a", 1))
	m.PutEntry(maps.NewEntry("b", 2))

	assert.Equal(t, 2, m.Size())
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 9, m.GetOrDefault("missing", 9))
}

func TestMap_PutIfAbsent(t *testing.T) {
	t.Parallel()

	m := maps.From(map[string]int{"a": 1})
	assert.Equal(t, 1, m.PutIfAbsent("a", 5))
	assert.Equal(t, 5, m.PutIfAbsent("b", 5))
	assert.Equal(t, 5, m.GetOrDefault("b", 0))
}

func TestMap_ComputeIfAbsent(t *testing.T) {
	t.Parallel()

	calls := 0
	length := func(k string) int {
		calls++
		return len(k)
	}

	m := maps.New[string, int]()
	assert.Equal(t, 3, m.ComputeIfAbsent("abc", length))
	assert.Equal(t, 3, m.ComputeIfAbsent("abc", length))
	assert.Equal(t, 1, calls, "mapping function runs only for absent keys")

	assert.Panics(t, func() { m.ComputeIfAbsent("x", nil) })
}

func TestMap_Contains(t *testing.T) {
	t.Parallel()

	m := maps.From(map[string][]int{"a": {1, 2}})
	assert.True(t, m.ContainsKey("a"))
	assert.False(t, m.ContainsKey("b"))
	assert.True(t, m.ContainsValue([]int{1, 2}))
	assert.False(t, m.ContainsValue([]int{1}))
}

func TestMap_Remove(t *testing.T) {
	t.Parallel()

	m := maps.From(map[string]int{"a": 1})
	v, ok := m.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Remove("a")
	assert.False(t, ok)
	assert.True(t, m.IsEmpty())
}

func TestMap_Replace(t *testing.T) {
	t.Parallel()

	m := maps.From(map[string]int{"a": 1})

	old, ok := m.Replace("a", 2)
	assert.True(t, ok)
	assert.Equal(t, 1, old)

	_, ok = m.Replace("b", 2)
	assert.False(t, ok)
	assert.False(t, m.ContainsKey("b"), "replace never inserts")

	assert.False(t, m.ReplaceOldValue("a", 1, 3))
	assert.True(t, m.ReplaceOldValue("a", 2, 3))
	assert.False(t, m.ReplaceOldValue("missing", 0, 3))
	assert.Equal(t, 3, m.GetOrDefault("a", 0))
}

func TestMap_Bulk(t *testing.T) {
	t.Parallel()

	m := maps.New[string, int]()
	m.PutAll(map[string]int{"b": 2, "a": 1, "c": 3})

	assert.ElementsMatch(t, []string{"a", "b", "c"}, m.Keys())
	assert.ElementsMatch(t, []int{1, 2, 3}, m.Values())
	assert.Equal(t, []string{"a", "b", "c"}, maps.SortedKeys(m))
	assert.ElementsMatch(t, []maps.Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, m.Entries())

	cp := m.Copy()
	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 3, cp.Size())
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, cp.Map())
}

func TestMap_Iteration(t *testing.T) {
	t.Parallel()

	m := maps.From(map[string]int{"a": 1, "b": 2})

	sum := 0
	m.ForEach(func(_ string, v int) { sum += v })
	assert.Equal(t, 3, sum)

	var keys []string
	m.ForEachEntry(func(e maps.Entry[string, int]) { keys = append(keys, e.String()) })
	assert.ElementsMatch(t, []string{"a=1", "b=2"}, keys)

	var joined []string
	for k := range m.All() {
		joined = append(joined, strings.ToUpper(k))
	}
	assert.ElementsMatch(t, []string{"A", "B"}, joined)
}
