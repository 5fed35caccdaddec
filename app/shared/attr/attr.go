// Package attr provides slog attribute helpers shared by every module.
package attr

import (
	"context"
	"log/slog"
)

type ctxKey string

// CtxKeyCorrelationID is the context key under which the message
// correlation ID is stored by the handler wrapper.
const CtxKeyCorrelationID ctxKey = "correlation_id"

// String returns a string slog attribute.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Int returns an int slog attribute.
func Int(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

// Any returns an any-valued slog attribute.
func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

// Error returns the conventional "error" attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// ExtractCorrelationID pulls the correlation ID out of ctx, returning an
// empty attribute when none was set.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if ctx == nil {
		return slog.String("correlation_id", "")
	}
	if id, ok := ctx.Value(CtxKeyCorrelationID).(string); ok {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "")
}

// WithCorrelationID returns a context carrying the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyCorrelationID, id)
}
