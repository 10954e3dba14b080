package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey struct{}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a context whose logger carries the request_id
// attribute. Everything logged through FromContext downstream is correlated
// to the request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, slog.Default().With("request_id", requestID))
}

// WithPlayer annotates the context logger with the verified player's id.
// The auth middleware calls this once per request so handlers and services
// never attach tg_id by hand.
func WithPlayer(ctx context.Context, tgID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, FromContext(ctx).With("tg_id", tgID))
}

// FromContext returns the request-scoped logger, or the default logger when
// the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
