package email

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through gomail's dialer.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
	name   string
}

func NewSMTPProvider(cfg Config) *SMTPProvider {
	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.FromEmail,
		name:   cfg.FromName,
	}
}

func (p *SMTPProvider) Send(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return errors.New("no recipients specified")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := p.buildMessage(email)
	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (p *SMTPProvider) buildMessage(email *Email) *gomail.Message {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.from
	}
	if p.name != "" {
		m.SetAddressHeader("From", from, p.name)
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	m.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		m.AddAlternative("text/html", email.HTMLBody)
	}
	return m
}
