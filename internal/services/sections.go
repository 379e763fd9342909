package services

import (
	"strings"

	"careerlink/internal/models"
	"careerlink/internal/repositories"
	"careerlink/internal/services/dto"
	"careerlink/pkg/apperrors"
	"careerlink/pkg/dates"

	"gorm.io/datatypes"
)

type (
	EducationService  = SectionService[dto.EducationRequest, dto.EducationResponse]
	ExperienceService = SectionService[dto.ExperienceRequest, dto.ExperienceResponse]
	ProjectService    = SectionService[dto.ProjectRequest, dto.ProjectResponse]
)

func NewEducationService(repo repositories.SectionRepository[models.Education]) EducationService {
	return NewSectionService(repo, SectionKind[models.Education, dto.EducationRequest, dto.EducationResponse]{
		Domain:        "education",
		Name:          "Education",
		RequestUserID: func(r *dto.EducationRequest) string { return r.UserID },
		Owner:         func(e *models.Education) string { return e.UserID },
		SetOwner:      func(e *models.Education, id string) { e.UserID = id },
		Respond:       dto.NewEducationResponse,
		Apply: func(r *dto.EducationRequest, e *models.Education) error {
			institution := strings.TrimSpace(r.Institution)
			degree := strings.TrimSpace(r.Degree)
			if institution == "" || degree == "" || strings.TrimSpace(r.StartDate) == "" {
				return apperrors.NewBadRequestError("Institution, Degree, and Start Date are required.")
			}
			start, end, err := parseRange(&r.StartDate, r.EndDate)
			if err != nil {
				return err
			}
			e.Institution = institution
			e.Degree = degree
			e.FieldOfStudy = strings.TrimSpace(r.FieldOfStudy)
			e.StartDate = *start
			e.EndDate = end
			return nil
		},
	})
}

func NewExperienceService(repo repositories.SectionRepository[models.Experience]) ExperienceService {
	return NewSectionService(repo, SectionKind[models.Experience, dto.ExperienceRequest, dto.ExperienceResponse]{
		Domain:        "experience",
		Name:          "Experience",
		RequestUserID: func(r *dto.ExperienceRequest) string { return r.UserID },
		Owner:         func(e *models.Experience) string { return e.UserID },
		SetOwner:      func(e *models.Experience, id string) { e.UserID = id },
		Respond:       dto.NewExperienceResponse,
		Apply: func(r *dto.ExperienceRequest, e *models.Experience) error {
			company := strings.TrimSpace(r.Company)
			jobTitle := strings.TrimSpace(r.JobTitle)
			if company == "" || jobTitle == "" || strings.TrimSpace(r.StartDate) == "" {
				return apperrors.NewBadRequestError("Company, Job Title, and Start Date are required.")
			}
			start, end, err := parseRange(&r.StartDate, r.EndDate)
			if err != nil {
				return err
			}
			e.Company = company
			e.JobTitle = jobTitle
			e.Description = strings.TrimSpace(r.Description)
			e.StartDate = *start
			e.EndDate = end
			return nil
		},
	})
}

func NewProjectService(repo repositories.SectionRepository[models.Project]) ProjectService {
	return NewSectionService(repo, SectionKind[models.Project, dto.ProjectRequest, dto.ProjectResponse]{
		Domain:        "project",
		Name:          "Project",
		RequestUserID: func(r *dto.ProjectRequest) string { return r.UserID },
		Owner:         func(p *models.Project) string { return p.UserID },
		SetOwner:      func(p *models.Project, id string) { p.UserID = id },
		Respond:       dto.NewProjectResponse,
		Apply: func(r *dto.ProjectRequest, p *models.Project) error {
			title := strings.TrimSpace(r.Title)
			description := strings.TrimSpace(r.Description)
			if title == "" || description == "" {
				return apperrors.NewBadRequestError("Title and Description are required.")
			}
			start, end, err := parseRange(r.StartDate, r.EndDate)
			if err != nil {
				return err
			}
			p.Title = title
			p.Description = description
			p.Technologies = strings.TrimSpace(r.Technologies)
			p.ProjectURL = strings.TrimSpace(r.ProjectURL)
			p.StartDate = start
			p.EndDate = end
			return nil
		},
	})
}

// parseRange parses optional start and end dates and rejects an end that
// falls before the start.
func parseRange(startRaw, endRaw *string) (*datatypes.Date, *datatypes.Date, error) {
	start, err := dates.ParseOptional(trimmed(startRaw))
	if err != nil {
		return nil, nil, apperrors.NewBadRequestError("Start date must be a valid date")
	}
	end, err := dates.ParseOptional(trimmed(endRaw))
	if err != nil {
		return nil, nil, apperrors.NewBadRequestError("End date must be a valid date")
	}
	if start != nil && end != nil && dates.Before(*end, *start) {
		return nil, nil, apperrors.NewBadRequestError("End date cannot be before start date")
	}
	return start, end, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
