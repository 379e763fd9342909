package handlers

import (
	"net/http"

	"careerlink/internal/models"
	"careerlink/internal/services"
	"careerlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// SectionHandler serves one profile section (education, experience or
// projects) under /<path>.
type SectionHandler[Req any, Resp any] struct {
	*BaseHandler
	path    string
	service services.SectionService[Req, Resp]
}

func NewSectionHandler[Req any, Resp any](base *BaseHandler, path string, service services.SectionService[Req, Resp]) *SectionHandler[Req, Resp] {
	return &SectionHandler[Req, Resp]{
		BaseHandler: base,
		path:        path,
		service:     service,
	}
}

func (h *SectionHandler[Req, Resp]) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group(h.path)
	public.Use(h.Protected()...)
	{
		public.GET("/:userId", h.List)
	}

	owner := r.Group(h.path)
	owner.Use(h.Protected(models.UserRoleJobSeeker)...)
	{
		owner.POST("", h.Create)
		owner.PUT("/:id", h.Update)
		owner.DELETE("/:id", h.Delete)
	}
}

func (h *SectionHandler[Req, Resp]) List(c *gin.Context) {
	records, err := h.service.List(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *SectionHandler[Req, Resp]) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req Req
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.service.Create(c.Request.Context(), h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *SectionHandler[Req, Resp]) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req Req
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	record, err := h.service.Update(c.Request.Context(), h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *SectionHandler[Req, Resp]) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: h.service.Name() + " deleted successfully"})
}
