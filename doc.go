// Package commons is a set of small building blocks for Go programs, modelled
// on the Apache Commons Lang and Guava utilities.
//
// The root package holds no code. Import the packages under pkg/:
//
//   - container: single-value holders (Container, Boolean, Integer) and Optional.
//   - atomic: the same holders guarded by a per-instance reentrant lock.
//   - synchronized: a reentrant Mutex and scoped lock helpers.
//   - function: named function types such as Supplier, Predicate and Consumer.
//   - objects: nil checks and deep equality helpers.
//   - exception: error kinds NoSuchElement, IllegalArgument and IllegalState.
//   - maps: a map type with PutIfAbsent, ComputeIfAbsent and Replace helpers.
//   - threadcontext: a diagnostic key-value store carried by context.Context.
//   - async: futures with completion listeners.
//   - executor: a direct executor, a fixed worker pool and Submit.
//   - config and logger: environment loading and slog construction.
//
// Basic usage:
//
//	counter := atomic.NewInteger(0)
//	pool, _ := executor.NewFixedPool(4)
//	for range 10 {
//		_ = pool.Execute(func() { counter.Increment() })
//	}
//	_ = pool.Shutdown(context.Background())
//	fmt.Println(counter.Get()) // 10
package commons
