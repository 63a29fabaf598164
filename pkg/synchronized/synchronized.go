package synchronized

import "sync"

// Do runs fn while holding l and returns its error unchanged.
// The lock is released when fn returns or panics.
func Do(l sync.Locker, fn func() error) error {
	if l == nil {
		return ErrNilLocker
	}
	if fn == nil {
		return ErrNilFunc
	}
	l.Lock()
	defer l.Unlock()
	return fn()
}

// Call runs fn while holding l and returns its result.
// It panics with ErrNilLocker or ErrNilFunc on nil arguments.
func Call[T any](l sync.Locker, fn func() T) T {
	mustArgs(l, fn == nil)
	l.Lock()
	defer l.Unlock()
	return fn()
}

// CallErr runs fn while holding l and returns its result and error.
func CallErr[T any](l sync.Locker, fn func() (T, error)) (T, error) {
	if l == nil {
		var zero T
		return zero, ErrNilLocker
	}
	if fn == nil {
		var zero T
		return zero, ErrNilFunc
	}
	l.Lock()
	defer l.Unlock()
	return fn()
}

func mustArgs(l sync.Locker, nilFunc bool) {
	if l == nil {
		panic(ErrNilLocker)
	}
	if nilFunc {
		panic(ErrNilFunc)
	}
}
