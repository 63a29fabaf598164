package synchronized

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Mutex is a reentrant mutual exclusion lock.
// The zero value is an unlocked mutex. A Mutex must not be copied after first use.
type Mutex struct {
	mu    sync.Mutex
	owner atomic.Int64 // goroutine id of the holder, 0 when unlocked
	depth int          // guarded by mu
}

var _ sync.Locker = (*Mutex)(nil)

// Lock acquires the mutex. When the calling goroutine already holds it, Lock
// increments the hold count and returns immediately.
func (m *Mutex) Lock() {
	id := goid.Get()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

// TryLock acquires the mutex without blocking and reports whether it succeeded.
func (m *Mutex) TryLock() bool {
	id := goid.Get()
	if m.owner.Load() == id {
		m.depth++
		return true
	}
	if !m.mu.TryLock() {
		return false
	}
	m.owner.Store(id)
	m.depth = 1
	return true
}

// Unlock releases one hold of the mutex. The mutex becomes available to other
// goroutines after the outermost hold is released.
// It panics with ErrNotOwner when the calling goroutine does not hold the mutex.
func (m *Mutex) Unlock() {
	if m.owner.Load() != goid.Get() {
		panic(ErrNotOwner)
	}
	m.depth--
	if m.depth > 0 {
		return
	}
	m.owner.Store(0)
	m.mu.Unlock()
}

// HeldByCurrent reports whether the calling goroutine holds the mutex.
func (m *Mutex) HeldByCurrent() bool {
	return m.owner.Load() == goid.Get()
}
