package handlers

import (
	"net/http"

	"careerlink/internal/models"
	"careerlink/internal/services"
	"careerlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	seekers := r.Group("/applications")
	seekers.Use(h.Protected(models.UserRoleJobSeeker)...)
	{
		seekers.POST("", h.Apply)
		seekers.GET("/:userId", h.ListMyApplications)
	}

	employers := r.Group("/applications")
	employers.Use(h.Protected(models.UserRoleEmployer)...)
	{
		employers.GET("/employer", h.ListEmployerApplications)
		employers.GET("/employer/job", h.ListJobApplications)
		employers.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListMine(h.GetDB(c), userID, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListEmployerApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	rows, err := h.applicationService.ListForEmployer(h.GetDB(c), userID, c.Query("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	rows, err := h.applicationService.ListForJob(h.GetDB(c), userID, c.Query("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
