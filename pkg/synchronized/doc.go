// Package synchronized provides a reentrant mutex and helpers that run a
// function while holding a lock.
//
// Mutex may be locked again by the goroutine that already holds it. Each Lock
// must be paired with an Unlock; the lock is released when the outermost Unlock
// runs. Ownership is tracked by goroutine id, so a Mutex must be unlocked by the
// goroutine that locked it. Unlocking from any other goroutine panics with
// ErrNotOwner.
//
// Do, Call and CallErr acquire any sync.Locker, run the function and release
// the lock on every exit path, including panics:
//
//	var mu synchronized.Mutex
//	err := synchronized.Do(&mu, func() error {
//		return store.Flush()
//	})
//
// There is no timeout or deadlock detection. A blocked Lock waits until the
// holder releases it.
package synchronized
