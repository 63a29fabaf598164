// Package container provides mutable single-slot value cells in the style of
// Apache Commons-Lang's MutableObject, MutableBoolean and MutableInt, plus an
// immutable Optional modelled on java.util.Optional.
//
// # Containers
//
// Container holds at most one value of any type. Absence is a valid state:
// the zero Container is empty, Clear removes the value, and setting a nil
// pointer, map, slice, channel, function or interface also leaves the
// container empty.
//
//	c := container.New(model)
//	c.Contains(model)            // true
//	old := c.GetAndSet(other)    // old == model
//	v, ok := c.Unset()           // v == other, ok == true; c is now empty
//
// Boolean and Integer specialise Container with domain operations (True,
// Compliment, IncrementAndGet, ...). Boolean treats an absent value as false
// and Integer treats it as 0.
//
// Integer arithmetic is plain Go int arithmetic: it wraps on overflow and
// provides no overflow detection.
//
// # Thread Safety
//
// Containers are NOT safe for concurrent use. Confine each container to a
// single goroutine or guard it externally. The atomic package provides
// drop-in thread-safe variants implementing the same Holder, BooleanHolder
// and IntegerHolder interfaces, so call sites do not change when thread safety
// becomes a requirement.
//
// # Optional
//
// Optional is an immutable value that may or may not hold a value. Reading an
// empty Optional with Get returns an error matching exception.ErrNoSuchElement:
//
//	name, err := container.OfNullable(user.Nickname).
//	    Filter(func(s string) bool { return s != "" }).
//	    Get()
//
// Map and FlatMap are package functions because Go methods cannot introduce
// type parameters.
package container
