package logging

import (
	"context"
	"log/slog"
)

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger from the context, or the global logger if not found
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return GetGlobalLogger()
}

// WithInvocationID adds an invocation ID to the logger in the context
func WithInvocationID(ctx context.Context, id string) context.Context {
	logger := FromContext(ctx).With("invocation_id", id)
	return WithLogger(ctx, logger)
}

// WithComponent adds a component name to the logger in the context
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx).With("component", component)
	return WithLogger(ctx, logger)
}
