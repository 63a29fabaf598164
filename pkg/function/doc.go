// Package function provides named function types that mirror the functional
// interfaces of Java: Supplier, Function, Consumer, BiConsumer, Predicate,
// BiPredicate and Runnable.
//
// Every type is a plain Go func type with methods, in the spirit of
// http.HandlerFunc, so an ordinary function literal converts to it without a
// wrapper:
//
//	isEven := function.Predicate[int](func(v int) bool { return v%2 == 0 })
//	isOdd := isEven.Negate()
//	positiveEven := isEven.And(func(v int) bool { return v > 0 })
//
// Combinators (AndThen, And, Or) require non-nil arguments and panic with
// objects.ErrNilValue, an exception.ErrIllegalArgument, when given nil.
package function
