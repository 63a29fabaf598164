package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor returns an attribute derived from ctx, or false when ctx
// carries nothing to log.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type scopeKey struct{}

// WithScope returns a context whose records carry attrs in addition to any
// scope attributes already in ctx. Executors use it to tag the context handed
// to a task with the task id and executor name.
func WithScope(ctx context.Context, attrs ...slog.Attr) context.Context {
	attrs = slices.DeleteFunc(slices.Clone(attrs), func(a slog.Attr) bool { return a.Equal(slog.Attr{}) })
	if len(attrs) == 0 {
		return ctx
	}
	return context.WithValue(ctx, scopeKey{}, append(Scope(ctx), attrs...))
}

// Scope returns a copy of the scope attributes stored in ctx.
func Scope(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(scopeKey{}).([]slog.Attr)
	return slices.Clone(attrs)
}

// ContextHandler adds context-derived attributes to each record before passing
// it on. Extractor output comes first, in registration order, followed by the
// scope attributes set with WithScope. Empty groups are dropped.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are skipped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	return &ContextHandler{
		next:       next,
		extractors: slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool { return ex == nil }),
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		return h.next.Handle(ctx, rec)
	}
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok && !isEmptyGroup(attr) {
			rec.AddAttrs(attr)
		}
	}
	if scope := Scope(ctx); len(scope) > 0 {
		rec.AddAttrs(scope...)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

func isEmptyGroup(a slog.Attr) bool {
	return a.Value.Kind() == slog.KindGroup && len(a.Value.Group()) == 0
}
