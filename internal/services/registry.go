package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	CompanyService     CompanyService
	JobService         JobService
	ApplicationService ApplicationService
	EducationService   EducationService
	ExperienceService  ExperienceService
	ProjectService     ProjectService
	SkillService       SkillService
	ResumeService      ResumeService
}
