package logging

import (
	"context"

	"go.uber.org/zap"
)

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 2)

	if scanID := ScanIDFromContext(ctx); scanID != "" {
		fields = append(fields, zap.String("scan.id", scanID))
	}

	return fields
}

// Context key types
type scanCtxKey struct{}
type loggerCtxKey struct{}

// ScanIDFromContext extracts the scan ID from context.
func ScanIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(scanCtxKey{}).(string); ok {
		return s
	}
	return ""
}

// WithScanID adds a scan ID to context so every log line produced during an
// analysis carries the same correlation ID.
func WithScanID(ctx context.Context, scanID string) context.Context {
	return context.WithValue(ctx, scanCtxKey{}, scanID)
}

// WithLogger stores logger in context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext retrieves logger from context.
// Returns a nop logger if not found.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return NewNop()
}
