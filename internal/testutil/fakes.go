package testutil

import (
	"context"
	"sync"

	"careerlink/internal/email"

	"github.com/tmc/langchaingo/llms"
)

// Mailer records every message instead of sending it.
type Mailer struct {
	mu   sync.Mutex
	Sent []*email.Email
}

func (m *Mailer) Send(_ context.Context, msg *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return nil
}

// SentTo returns the subjects of messages addressed to addr.
func (m *Mailer) SentTo(addr string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var subjects []string
	for _, msg := range m.Sent {
		for _, to := range msg.To {
			if to == addr {
				subjects = append(subjects, msg.Subject)
			}
		}
	}
	return subjects
}

// Model is an llms.Model that answers every prompt with Reply.
type Model struct {
	mu      sync.Mutex
	Reply   string
	Err     error
	Prompts []string
}

func (m *Model) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.Prompts = append(m.Prompts, text.Text)
			}
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.Reply}}}, nil
}

func (m *Model) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func (m *Model) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// Extractor returns Text for any document.
type Extractor struct {
	Text string
	Err  error
}

func (e *Extractor) ExtractText([]byte) (string, error) {
	return e.Text, e.Err
}
