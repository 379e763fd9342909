package resume

import (
	"context"
	"fmt"
	"strings"
	"time"

	"careerlink/internal/logger"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"golang.org/x/time/rate"
)

const (
	promptPrefix    = "You are a professional resume reviewer. Please suggest the top 3 improvements for the resume below.\n\nResume:\n"
	defaultFeedback = "No feedback generated."
)

type ReviewerConfig struct {
	MaxChars      int
	CacheSize     int
	CacheTTL      time.Duration
	RatePerMinute int
}

// Reviewer asks an LLM for resume feedback. Reviews are cached per resume key
// and model calls share one token bucket.
type Reviewer struct {
	model    llms.Model
	limiter  *rate.Limiter
	cache    *expirable.LRU[string, string]
	maxChars int
}

func NewReviewer(model llms.Model, cfg ReviewerConfig) *Reviewer {
	perCall := time.Minute / time.Duration(max(cfg.RatePerMinute, 1))
	return &Reviewer{
		model:    model,
		limiter:  rate.NewLimiter(rate.Every(perCall), max(cfg.RatePerMinute/2, 1)),
		cache:    expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
		maxChars: cfg.MaxChars,
	}
}

// NewGeminiModel builds the googleai client used in production.
func NewGeminiModel(ctx context.Context, apiKey, modelName string) (llms.Model, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return llm, nil
}

// Review returns the cached review for key or produces a new one from the
// text that load returns. load is only called on a cache miss.
func (r *Reviewer) Review(ctx context.Context, key string, load func(ctx context.Context) (string, error)) (string, error) {
	if review, ok := r.cache.Get(key); ok {
		logger.CtxDebug(ctx, "resume review cache hit", "key", key)
		return review, nil
	}

	text, err := load(ctx)
	if err != nil {
		return "", err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, r.model, BuildPrompt(text, r.maxChars))
	if err != nil {
		return "", fmt.Errorf("generate review: %w", err)
	}

	review := strings.TrimSpace(resp)
	if review == "" {
		review = defaultFeedback
	}
	r.cache.Add(key, review)
	return review, nil
}

// Forget drops the cached review for key.
func (r *Reviewer) Forget(key string) {
	r.cache.Remove(key)
}

// BuildPrompt truncates text to maxChars characters and wraps it in the
// reviewer instructions.
func BuildPrompt(text string, maxChars int) string {
	if maxChars > 0 {
		if runes := []rune(text); len(runes) > maxChars {
			text = string(runes[:maxChars])
		}
	}
	return promptPrefix + text
}
