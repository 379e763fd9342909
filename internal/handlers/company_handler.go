package handlers

import (
	"net/http"

	"careerlink/internal/services"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/companies", h.ListCompanies)
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}
