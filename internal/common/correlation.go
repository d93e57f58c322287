package common

import "context"

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// ContextWithCorrelationID stores a correlation ID on the context for
// downstream handlers and tool invocations.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext returns the correlation ID stored on the
// context, or an empty string when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}
