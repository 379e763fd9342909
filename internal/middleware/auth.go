package middleware

import (
	"net/http"
	"strings"

	"careerlink/internal/auth"
	"careerlink/internal/logger"
	"careerlink/internal/models"
	"careerlink/pkg/apperrors"
	"careerlink/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware reads the session cookie, verifies it and stores the caller's
// id and role in the gin context. Any failure is a 401.
func AuthMiddleware(tokens *auth.TokenManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			logger.CtxDebug(c.Request.Context(), "rejected session token", "error", err.Error())
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.RoleKey, strings.ToUpper(claims.Role))
		c.Request = c.Request.WithContext(logger.WithUser(c.Request.Context(), claims.UserID, strings.ToUpper(claims.Role)))
		c.Next()
	}
}

// RequireRoles lets the request through only when the caller's role is one of
// roles. Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[string]bool, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		roleSet[strings.ToUpper(string(r))] = true
		names = append(names, string(r))
	}
	message := "Requires one of these roles: " + strings.Join(names, ", ")

	return func(c *gin.Context) {
		role := GetRole(c)
		if !roleSet[strings.ToUpper(role)] {
			apperrors.HandleError(c, apperrors.New(apperrors.CodeForbidden, "auth", message, http.StatusForbidden).
				WithDetails(gin.H{"requiredRoles": names, "yourRole": role}))
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "".
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}

// GetRole returns the authenticated user's role, or "".
func GetRole(c *gin.Context) string {
	return c.GetString(contextkeys.RoleKey)
}
