package handlers

import (
	"net/http"

	"careerlink/internal/auth"
	"careerlink/internal/services"
	"careerlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	session     auth.SessionCookie
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, session auth.SessionCookie) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		session:     session,
	}
}

// RegisterRoutes mounts the session endpoints on the root group and the
// current-user lookup under /api.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	users := r.Group("/api/users")
	users.Use(h.Protected()...)
	{
		users.GET("/token", h.CurrentUser)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.session.Set(c, result.Token)
	c.JSON(http.StatusCreated, dto.NewUserResponse(result.User))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.session.Set(c, result.Token)
	c.JSON(http.StatusOK, dto.NewLoginResponse(result.User))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Clear(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.CurrentUser(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
