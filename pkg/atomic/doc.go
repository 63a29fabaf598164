// Package atomic provides thread-safe counterparts of the holders in package
// container.
//
// Reference, Boolean and Integer guard a container.Container with their own
// synchronized.Mutex. Every method, including compound operations such as
// IncrementAndGet, Compliment or Update, runs entirely under that lock, so
// concurrent callers observe each operation as a single step:
//
//	counter := atomic.NewInteger(0)
//	var wg sync.WaitGroup
//	for range 1000 {
//		wg.Add(1)
//		go func() {
//			defer wg.Done()
//			counter.Increment()
//		}()
//	}
//	wg.Wait() // counter.Get() == 1000
//
// The lock is reentrant. A function passed to Update or Do may call other
// methods of the same holder without deadlocking.
//
// Unlike sync/atomic, the holders work with any type and support absence.
// Prefer sync/atomic for hot counters where the extra features are not needed.
package atomic
