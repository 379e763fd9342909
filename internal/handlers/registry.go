package handlers

import "careerlink/internal/services/dto"

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	CompanyHandler     *CompanyHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	EducationHandler   *SectionHandler[dto.EducationRequest, dto.EducationResponse]
	ExperienceHandler  *SectionHandler[dto.ExperienceRequest, dto.ExperienceResponse]
	ProjectHandler     *SectionHandler[dto.ProjectRequest, dto.ProjectResponse]
	SkillHandler       *SkillHandler
	ResumeHandler      *ResumeHandler
}
