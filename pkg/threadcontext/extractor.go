package threadcontext

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/commons/pkg/maps"
)

// GroupKey is the attribute group name used by LoggerExtractor.
const GroupKey = "context"

// LoggerExtractor returns a logger.ContextExtractor that adds the stored values
// as a "context" attribute group. With keys given, only those keys are logged.
// Nothing is added when the context carries no Store or no matching value.
func LoggerExtractor(keys ...string) func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		values := FromContext(ctx).Context()
		if values.IsEmpty() {
			return slog.Attr{}, false
		}

		selected := keys
		if len(selected) == 0 {
			selected = maps.SortedKeys(values)
		}

		attrs := make([]slog.Attr, 0, len(selected))
		for _, k := range selected {
			if v, ok := values.Get(k); ok {
				attrs = append(attrs, slog.Any(k, v))
			}
		}
		if len(attrs) == 0 {
			return slog.Attr{}, false
		}
		return slog.Attr{Key: GroupKey, Value: slog.GroupValue(attrs...)}, true
	}
}
