package monitoring

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"careerlink/internal/logger"
)

// Alert reports err to error tracking and logs it with the event id.
func Alert(ctx context.Context, message string, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	var evID *sentry.EventID
	hub.WithScope(func(scope *sentry.Scope) {
		if id := logger.RequestID(ctx); id != "" {
			scope.SetTag("request_id", id)
		}
		evID = hub.CaptureException(errors.Wrap(err, message))
	})
	logger.FromContext(ctx).Error("critical error encountered",
		slog.String("msg", message),
		slog.String("error", err.Error()),
		slog.Any("event_id", evID),
	)
}

// RecoverAndAlert reports a recovered panic value.
func RecoverAndAlert(ctx context.Context, message string, recovered any) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	evID := hub.RecoverWithContext(ctx, recovered)
	logger.FromContext(ctx).Error("panic recovered",
		slog.String("msg", message),
		slog.Any("panic", recovered),
		slog.Any("event_id", evID),
	)
}
