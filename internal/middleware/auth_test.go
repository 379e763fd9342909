package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"careerlink/internal/auth"
	"careerlink/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newGatedRouter(tokens *auth.TokenManager, roles ...models.UserRole) *gin.Engine {
	r := gin.New()
	group := r.Group("/", AuthMiddleware(tokens, "token"))
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c), "role": GetRole(c)})
	})
	return r
}

func doRequest(r http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("secret", 15*time.Minute)
	r := newGatedRouter(tokens)

	t.Run("absent cookie yields 401", func(t *testing.T) {
		w := doRequest(r, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		assert.Equal(t, "Unauthorized", body.Error.Message)
	})

	t.Run("tampered token yields 401", func(t *testing.T) {
		w := doRequest(r, &http.Cookie{Name: "token", Value: "abc.def.ghi"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token yields 401", func(t *testing.T) {
		expired := auth.NewTokenManager("secret", -time.Minute)
		token, err := expired.Generate("user-1", "JOB_SEEKER")
		require.NoError(t, err)

		w := doRequest(r, &http.Cookie{Name: "token", Value: token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := tokens.Generate("user-1", "job_seeker")
		require.NoError(t, err)

		w := doRequest(r, &http.Cookie{Name: "token", Value: token})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":"user-1","role":"JOB_SEEKER"}`, w.Body.String())
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := auth.NewTokenManager("secret", 15*time.Minute)
	r := newGatedRouter(tokens, models.UserRoleEmployer)

	t.Run("wrong role yields 403 naming required roles", func(t *testing.T) {
		token, err := tokens.Generate("user-1", "JOB_SEEKER")
		require.NoError(t, err)

		w := doRequest(r, &http.Cookie{Name: "token", Value: token})
		require.Equal(t, http.StatusForbidden, w.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FORBIDDEN", body.Error.Code)
		assert.Equal(t, "Requires one of these roles: EMPLOYER", body.Error.Message)
		assert.Equal(t, "JOB_SEEKER", body.Error.Details["yourRole"])
	})

	t.Run("role match is case-insensitive", func(t *testing.T) {
		token, err := tokens.Generate("user-2", "employer")
		require.NoError(t, err)

		w := doRequest(r, &http.Cookie{Name: "token", Value: token})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSessionCookie(t *testing.T) {
	session := auth.SessionCookie{Name: "token", TTL: 15 * time.Minute, SameSite: http.SameSiteLaxMode}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	session.Set(c, "jwt-value")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "jwt-value", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 900, cookies[0].MaxAge)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	session.Clear(c)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given", w.Header().Get("X-Request-ID"))
}
