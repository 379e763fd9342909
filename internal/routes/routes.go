package routes

import (
	"net/http"

	"careerlink/internal/handlers"
	"careerlink/internal/logger"
	"careerlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route. Session endpoints live at the root,
// everything else under /api.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "pong"})
	})

	appHandlers.AuthHandler.RegisterRoutes(&router.RouterGroup)

	api := router.Group("/api")
	{
		appHandlers.CompanyHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.EducationHandler.RegisterRoutes(api)
		appHandlers.ExperienceHandler.RegisterRoutes(api)
		appHandlers.ProjectHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.ResumeHandler.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered", "count", len(router.Routes()))
}
