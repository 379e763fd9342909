package logger

import (
	"context"
	"log/slog"
)

type fieldsKey struct{}

// requestFields are attached to every log line written with a Ctx* helper.
type requestFields struct {
	requestID string
	userID    string
	role      string
}

func fieldsFrom(ctx context.Context) requestFields {
	f, _ := ctx.Value(fieldsKey{}).(requestFields)
	return f
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	f := fieldsFrom(ctx)
	f.requestID = requestID
	return context.WithValue(ctx, fieldsKey{}, f)
}

// WithUser records the authenticated caller.
func WithUser(ctx context.Context, userID, role string) context.Context {
	f := fieldsFrom(ctx)
	f.userID, f.role = userID, role
	return context.WithValue(ctx, fieldsKey{}, f)
}

func RequestID(ctx context.Context) string {
	return fieldsFrom(ctx).requestID
}

// FromContext returns the global logger with whatever request fields ctx
// carries.
func FromContext(ctx context.Context) *slog.Logger {
	f := fieldsFrom(ctx)
	l := GetLogger()

	var attrs []any
	if f.requestID != "" {
		attrs = append(attrs, "request_id", f.requestID)
	}
	if f.userID != "" {
		attrs = append(attrs, "user_id", f.userID, "role", f.role)
	}
	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

func CtxDebug(ctx context.Context, msg string, args ...any) {
	logAt(ctx, FromContext(ctx), slog.LevelDebug, msg, args...)
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	logAt(ctx, FromContext(ctx), slog.LevelInfo, msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	logAt(ctx, FromContext(ctx), slog.LevelWarn, msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	logAt(ctx, FromContext(ctx), slog.LevelError, msg, args...)
}

// CtxWithError logs at error level with err under "error".
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	logAt(ctx, FromContext(ctx), slog.LevelError, msg, append([]any{"error", err.Error()}, args...)...)
}
