package threadcontext

import "context"

type contextKey struct{}

// WithStore returns a copy of ctx carrying a new empty Store.
// If ctx already carries a Store it is shadowed, not modified.
func WithStore(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, NewStore())
}

// WithValues returns a copy of ctx carrying a new Store seeded with values.
func WithValues(ctx context.Context, values map[string]any) context.Context {
	s := NewStore()
	s.PutAll(values)
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the Store carried by ctx, or nil when there is none.
// All Store methods are safe to call on a nil Store.
func FromContext(ctx context.Context) *Store {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(contextKey{}).(*Store)
	return s
}

// Fork returns a copy of ctx carrying a snapshot of its Store. Changes made
// through the returned context do not affect ctx and vice versa.
func Fork(ctx context.Context) context.Context {
	s := NewStore()
	s.PutAll(FromContext(ctx).Context().Map())
	return context.WithValue(ctx, contextKey{}, s)
}

// Value returns the value stored under key in the Store carried by ctx,
// converted to T. It reports false when the key is missing or has another type.
func Value[T any](ctx context.Context, key string) (T, bool) {
	v, ok := FromContext(ctx).Get(key, nil).(T)
	return v, ok
}
