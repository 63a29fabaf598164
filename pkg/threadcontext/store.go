package threadcontext

import (
	"sync"

	"github.com/dmitrymomot/commons/pkg/maps"
)

// Store is a key-value map safe for concurrent use.
// A nil *Store behaves as an empty store that discards writes.
type Store struct {
	mu   sync.RWMutex
	data maps.Map[string, any]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the value stored under key, or def when the key is missing.
func (s *Store) Get(key string, def any) any {
	if s == nil {
		return def
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.GetOrDefault(key, def)
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value any) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Put(key, value)
}

// PutIfNone stores value under key when the key is missing or holds nil.
func (s *Store) PutIfNone(key string, value any) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.GetOrDefault(key, nil) == nil {
		s.data.Put(key, value)
	}
}

// PutAll stores every pair of values.
func (s *Store) PutAll(values map[string]any) {
	if s == nil || len(values) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.PutAll(values)
}

// Remove deletes key. Missing keys are ignored.
func (s *Store) Remove(key string) {
	s.RemoveAll(key)
}

// RemoveAll deletes every given key.
func (s *Store) RemoveAll(keys ...string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		s.data.Remove(k)
	}
}

// Clear deletes every key.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Clear()
}

// Context returns a copy of the stored values. Changes to the copy do not
// affect the Store.
func (s *Store) Context() *maps.Map[string, any] {
	if s == nil {
		return maps.New[string, any]()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Copy()
}

func (s *Store) Contains(key string) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ContainsKey(key)
}

func (s *Store) IsEmpty() bool {
	if s == nil {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.IsEmpty()
}
