package email

import (
	"context"
	"strings"

	"careerlink/internal/logger"
)

// Provider delivers an Email.
type Provider interface {
	Send(ctx context.Context, email *Email) error
}

// Config holds SMTP settings. An empty Host disables delivery.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// NewProvider returns an SMTP provider, or a NoopProvider when SMTP is not
// configured.
func NewProvider(cfg Config) Provider {
	if cfg.Host == "" {
		return &NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}

// NoopProvider logs messages instead of sending them.
type NoopProvider struct{}

func (p *NoopProvider) Send(ctx context.Context, email *Email) error {
	logger.CtxDebug(ctx, "email delivery disabled, dropping message",
		"to", strings.Join(email.To, ","),
		"subject", email.Subject,
	)
	return nil
}
