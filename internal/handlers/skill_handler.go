package handlers

import (
	"net/http"

	"careerlink/internal/services"
	"careerlink/internal/services/dto"
	"careerlink/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/user/:userId/skill")
	skills.Use(h.Protected()...)
	{
		skills.GET("", h.GetSkill)
		skills.PUT("", h.UpdateSkill)
	}
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	skill, err := h.skillService.GetSkill(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	// A non-string "skills" fails to bind; it gets the same message as a
	// missing one.
	var req dto.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Skill must be a valid string"))
		return
	}

	skill, err := h.skillService.UpdateSkill(h.GetDB(c), caller, c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}
