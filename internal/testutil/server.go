package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerlink/internal/app"
	"careerlink/internal/auth"
	"careerlink/internal/config"
	"careerlink/internal/models"
	"careerlink/internal/storage"
	"careerlink/pkg/contextkeys"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer drives the full router inside one rolled-back transaction.
type TestServer struct {
	Handler http.Handler
	DB      *gorm.DB
	Config  *config.Config
	Mailer  *Mailer
	Model   *Model
	tokens  *auth.TokenManager
}

type Option func(*config.Config, *app.Deps)

// WithoutReviewer leaves the AI model unconfigured.
func WithoutReviewer() Option {
	return func(_ *config.Config, deps *app.Deps) { deps.ReviewModel = nil }
}

// WithPDFExtractor uses the extractor the app builds from config.
func WithPDFExtractor() Option {
	return func(_ *config.Config, deps *app.Deps) { deps.Extractor = nil }
}

func WithExtractor(e *Extractor) Option {
	return func(_ *config.Config, deps *app.Deps) { deps.Extractor = e }
}

func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()
	tx := TxDB(t)
	cfg := Config()
	cfg.Storage.BasePath = t.TempDir()

	store, err := storage.NewLocalStorage(storage.Config{BasePath: cfg.Storage.BasePath, BaseURL: cfg.Storage.BaseURL})
	require.NoError(t, err)

	mailer := &Mailer{}
	model := &Model{Reply: "1. Quantify impact"}
	deps := app.Deps{
		Storage:       store,
		EmailProvider: mailer,
		ReviewModel:   model,
		Extractor:     &Extractor{Text: "Go developer"},
	}
	for _, opt := range opts {
		opt(cfg, &deps)
	}

	router, err := app.SetupRouter(context.Background(), cfg, tx, deps)
	require.NoError(t, err)

	// DBMiddleware prefers a transaction found on the request context.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), contextkeys.DBContextKey, tx)
		router.ServeHTTP(w, r.WithContext(ctx))
	})

	return &TestServer{
		Handler: handler,
		DB:      tx,
		Config:  cfg,
		Mailer:  mailer,
		Model:   model,
		tokens:  auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL()),
	}
}

// Cookie issues a session cookie for user without going through /login.
func (ts *TestServer) Cookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, err := ts.tokens.Generate(user.ID, string(user.Role))
	require.NoError(t, err)
	return &http.Cookie{Name: ts.Config.JWT.CookieName, Value: token}
}

// Do sends body as JSON (when non-nil) with the optional cookie.
func (ts *TestServer) Do(t *testing.T, method, path string, cookie *http.Cookie, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.Send(req, cookie)
}

func (ts *TestServer) Send(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	ts.Handler.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the recorded body into v.
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

// ErrorBody is the decoded error envelope.
type ErrorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}
