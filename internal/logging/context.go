package logging

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithLogger stores a request-scoped logger on the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the context logger when present, else the fallback.
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return fallback
}
