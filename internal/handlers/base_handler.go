package handlers

import (
	"fmt"
	"net/http"

	"careerlink/internal/logger"
	"careerlink/internal/middleware"
	"careerlink/internal/models"
	"careerlink/internal/monitoring"
	"careerlink/internal/services"
	"careerlink/internal/validator"
	"careerlink/pkg/apperrors"
	"careerlink/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries what every handler shares: the validator and the
// session gate.
type BaseHandler struct {
	validator *validator.Validator
	auth      gin.HandlerFunc
}

func NewBaseHandler(v *validator.Validator, auth gin.HandlerFunc) *BaseHandler {
	return &BaseHandler{
		validator: v,
		auth:      auth,
	}
}

// Protected returns the middleware chain for an authenticated route,
// optionally restricted to roles.
func (h *BaseHandler) Protected(roles ...models.UserRole) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{h.auth}
	if len(roles) > 0 {
		chain = append(chain, middleware.RequireRoles(roles...))
	}
	return chain
}

// GetDB returns the *gorm.DB that DBMiddleware stored on the request.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		logger.CtxError(c.Request.Context(), "db not found in context")
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db.WithContext(c.Request.Context())
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(ctx, "failed to bind JSON body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWarn(ctx, "failed to bind query params", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError renders err. Server-side failures are also reported to
// error tracking.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		cause := appErr.Err
		if cause == nil {
			cause = appErr
		}
		monitoring.Alert(ctx, appErr.Message, cause)
	} else {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
	}
	apperrors.HandleError(c, appErr)
}

// GetAndAuthorizeUserID returns the caller's id, writing a 401 when the
// request is not authenticated.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		logger.CtxWarn(c.Request.Context(), "unauthorized access: no user in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return userID, true
}

// GetCaller is GetAndAuthorizeUserID plus the caller's role.
func (h *BaseHandler) GetCaller(c *gin.Context) (services.Caller, bool) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return services.Caller{}, false
	}
	role, _ := models.ParseRole(middleware.GetRole(c))
	return services.Caller{ID: userID, Role: role}, true
}
