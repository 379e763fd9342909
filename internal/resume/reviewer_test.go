package resume

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.reply}}}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func newTestReviewer(model llms.Model) *Reviewer {
	return NewReviewer(model, ReviewerConfig{
		MaxChars:      20,
		CacheSize:     8,
		CacheTTL:      time.Minute,
		RatePerMinute: 600,
	})
}

func staticText(s string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) { return s, nil }
}

func TestBuildPrompt_Truncates(t *testing.T) {
	prompt := BuildPrompt(strings.Repeat("é", 30), 10)
	assert.True(t, strings.HasPrefix(prompt, "You are a professional resume reviewer."))
	assert.True(t, strings.HasSuffix(prompt, "Resume:\n"+strings.Repeat("é", 10)))
}

func TestReviewer_ReviewAndCache(t *testing.T) {
	model := &fakeModel{reply: "  1. Add metrics  "}
	r := newTestReviewer(model)
	ctx := context.Background()

	review, err := r.Review(ctx, "resumes/u1/cv.pdf", staticText("Go developer with 5 years of experience"))
	require.NoError(t, err)
	assert.Equal(t, "1. Add metrics", review)
	require.Len(t, model.prompts, 1)
	assert.True(t, strings.HasSuffix(model.prompts[0], "Go developer with 5 "), "text is cut to MaxChars")

	loads := 0
	review, err = r.Review(ctx, "resumes/u1/cv.pdf", func(context.Context) (string, error) {
		loads++
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "1. Add metrics", review)
	assert.Zero(t, loads, "cache hit must not reload the resume")
	assert.Len(t, model.prompts, 1)

	r.Forget("resumes/u1/cv.pdf")
	_, err = r.Review(ctx, "resumes/u1/cv.pdf", staticText("new text"))
	require.NoError(t, err)
	assert.Len(t, model.prompts, 2)
}

func TestReviewer_EmptyOutputFallsBack(t *testing.T) {
	r := newTestReviewer(&fakeModel{reply: "   "})

	review, err := r.Review(context.Background(), "k", staticText("text"))
	require.NoError(t, err)
	assert.Equal(t, "No feedback generated.", review)
}

func TestReviewer_Errors(t *testing.T) {
	t.Run("model failure is returned and not cached", func(t *testing.T) {
		model := &fakeModel{err: errors.New("quota exceeded")}
		r := newTestReviewer(model)

		_, err := r.Review(context.Background(), "k", staticText("text"))
		assert.ErrorContains(t, err, "quota exceeded")

		model.err = nil
		model.reply = "ok"
		review, err := r.Review(context.Background(), "k", staticText("text"))
		require.NoError(t, err)
		assert.Equal(t, "ok", review)
	})

	t.Run("load failure skips the model", func(t *testing.T) {
		model := &fakeModel{reply: "unused"}
		r := newTestReviewer(model)

		_, err := r.Review(context.Background(), "k", func(context.Context) (string, error) {
			return "", ErrNoText
		})
		assert.ErrorIs(t, err, ErrNoText)
		assert.Empty(t, model.prompts)
	})

	t.Run("cancelled context stops the limiter wait", func(t *testing.T) {
		r := NewReviewer(&fakeModel{reply: "x"}, ReviewerConfig{CacheSize: 1, CacheTTL: time.Minute, RatePerMinute: 1})
		ctx, cancel := context.WithCancel(context.Background())

		_, err := r.Review(ctx, "a", staticText("text"))
		require.NoError(t, err)

		cancel()
		_, err = r.Review(ctx, "b", staticText("text"))
		assert.Error(t, err)
	})
}
