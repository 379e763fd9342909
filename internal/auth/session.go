package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie writes and clears the HTTP-only cookie carrying the token.
type SessionCookie struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	TTL      time.Duration
}

func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (s SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(s.SameSite)
	c.SetCookie(s.Name, token, int(s.TTL.Seconds()), "/", s.Domain, s.Secure, true)
}

func (s SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(s.SameSite)
	c.SetCookie(s.Name, "", -1, "/", s.Domain, s.Secure, true)
}
