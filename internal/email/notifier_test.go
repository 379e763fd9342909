package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProvider struct {
	sent []*Email
	err  error
}

func (p *recordingProvider) Send(_ context.Context, email *Email) error {
	p.sent = append(p.sent, email)
	return p.err
}

func TestNotifier_RendersTemplates(t *testing.T) {
	p := &recordingProvider{}
	n := NewNotifier(p)
	ctx := context.Background()

	n.Welcome(ctx, "ann@example.com", "ann", "JOB_SEEKER")
	n.NewApplication(ctx, "boss@example.com", "boss", "ann", "Go Developer")
	n.StatusChanged(ctx, "ann@example.com", "ann", "Go Developer", "ACCEPTED")

	require.Len(t, p.sent, 3)
	assert.Equal(t, []string{"ann@example.com"}, p.sent[0].To)
	assert.Contains(t, p.sent[0].Body, "Your JOB_SEEKER account is ready")
	assert.Equal(t, "New application: Go Developer", p.sent[1].Subject)
	assert.Contains(t, p.sent[1].Body, `ann applied to "Go Developer"`)
	assert.Contains(t, p.sent[2].Body, "is now ACCEPTED")
}

func TestNotifier_SwallowsFailures(t *testing.T) {
	p := &recordingProvider{err: errors.New("smtp down")}
	n := NewNotifier(p)

	assert.NotPanics(t, func() {
		n.Welcome(context.Background(), "ann@example.com", "ann", "EMPLOYER")
	})
	assert.Len(t, p.sent, 1)
}

func TestNotifier_SkipsEmptyRecipient(t *testing.T) {
	p := &recordingProvider{}
	NewNotifier(p).Welcome(context.Background(), "", "ann", "EMPLOYER")
	assert.Empty(t, p.sent)
}

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &NoopProvider{}, NewProvider(Config{}))
	assert.IsType(t, &SMTPProvider{}, NewProvider(Config{Host: "smtp.example.com", Port: 587}))
}

func TestSMTPProvider_BuildMessage(t *testing.T) {
	p := NewSMTPProvider(Config{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@careerlink.dev", FromName: "CareerLink"})
	m := p.buildMessage(&Email{To: []string{"a@example.com"}, Subject: "Hi", Body: "text"})

	assert.Equal(t, []string{"Hi"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{"a@example.com"}, m.GetHeader("To"))
	require.Len(t, m.GetHeader("From"), 1)
	assert.Contains(t, m.GetHeader("From")[0], "noreply@careerlink.dev")
}
