// Package threadcontext provides a mutable key-value store for diagnostic
// values that travel with a unit of work, such as a user id or a job name.
//
// Go has no thread-local storage. The store is attached to a context.Context
// instead and reaches every function that receives that context:
//
//	ctx := threadcontext.WithStore(context.Background())
//	threadcontext.FromContext(ctx).Put("job", "nightly-sync")
//
//	go worker(threadcontext.Fork(ctx))
//
// Values are not shared with other goroutines implicitly. A goroutine started
// with the same context sees the same Store; Fork gives it an independent copy
// so writes on either side stay private.
//
// LoggerExtractor plugs the store into a logger built by package logger, so
// every record logged with the context carries the stored values.
package threadcontext
