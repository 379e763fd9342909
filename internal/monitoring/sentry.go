package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init configures the global Sentry hub. With an empty DSN the SDK stays
// disabled and every capture call is a no-op.
func Init(dsn, environment string, sampleRate float64) error {
	if dsn == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		SampleRate:       sampleRate,
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	return nil
}

// Flush waits for buffered events before shutdown.
func Flush() {
	sentry.Flush(5 * time.Second)
}
