package dto

import (
	"time"

	"careerlink/internal/models"
	"careerlink/pkg/dates"
)

type EducationRequest struct {
	UserID       string  `json:"userId"`
	Institution  string  `json:"institution" validate:"max=255"`
	Degree       string  `json:"degree" validate:"max=255"`
	FieldOfStudy string  `json:"fieldOfStudy" validate:"max=255"`
	StartDate    string  `json:"startDate" validate:"omitempty,is-date"`
	EndDate      *string `json:"endDate" validate:"omitempty,is-date"`
}

type EducationResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldOfStudy"`
	StartDate    string    `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewEducationResponse(e *models.Education) *EducationResponse {
	return &EducationResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    dates.Format(e.StartDate),
		EndDate:      dates.FormatOptional(e.EndDate),
		CreatedAt:    e.CreatedAt,
	}
}

type ExperienceRequest struct {
	UserID      string  `json:"userId"`
	Company     string  `json:"company" validate:"max=255"`
	JobTitle    string  `json:"jobTitle" validate:"max=255"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate" validate:"omitempty,is-date"`
	EndDate     *string `json:"endDate" validate:"omitempty,is-date"`
}

type ExperienceResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Company     string    `json:"company"`
	JobTitle    string    `json:"jobTitle"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewExperienceResponse(e *models.Experience) *ExperienceResponse {
	return &ExperienceResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Company:     e.Company,
		JobTitle:    e.JobTitle,
		Description: e.Description,
		StartDate:   dates.Format(e.StartDate),
		EndDate:     dates.FormatOptional(e.EndDate),
		CreatedAt:   e.CreatedAt,
	}
}

type ProjectRequest struct {
	UserID       string  `json:"userId"`
	Title        string  `json:"title" validate:"max=255"`
	Description  string  `json:"description"`
	Technologies string  `json:"technologies" validate:"max=512"`
	ProjectURL   string  `json:"projectUrl" validate:"omitempty,url,max=1024"`
	StartDate    *string `json:"startDate" validate:"omitempty,is-date"`
	EndDate      *string `json:"endDate" validate:"omitempty,is-date"`
}

type ProjectResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	ProjectURL   string    `json:"projectUrl"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewProjectResponse(p *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		ProjectURL:   p.ProjectURL,
		StartDate:    dates.FormatOptional(p.StartDate),
		EndDate:      dates.FormatOptional(p.EndDate),
		CreatedAt:    p.CreatedAt,
	}
}
