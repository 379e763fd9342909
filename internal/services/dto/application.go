package dto

import (
	"time"

	"careerlink/internal/models"
)

type ApplyRequest struct {
	JobID  string `json:"jobId"`
	UserID string `json:"userId"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type ApplicationResponse struct {
	ID        string                   `json:"id"`
	JobID     string                   `json:"jobId"`
	UserID    string                   `json:"userId"`
	Status    models.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"appliedAt"`
	Job       *JobResponse             `json:"job,omitempty"`
}

func NewApplicationResponse(a *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		UserID:    a.UserID,
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
	}
	if a.Job != nil {
		resp.Job = NewJobResponse(a.Job)
	}
	return resp
}

// EmployerApplicationRow is one applicant as seen by the hiring employer.
type EmployerApplicationRow struct {
	ID             string                   `json:"id"`
	JobID          string                   `json:"jobId"`
	JobTitle       string                   `json:"jobTitle"`
	ApplicantID    string                   `json:"applicantId"`
	ApplicantName  string                   `json:"applicantName"`
	ApplicantEmail string                   `json:"applicantEmail"`
	Status         models.ApplicationStatus `json:"status"`
	AppliedAt      time.Time                `json:"appliedAt"`
}

func NewEmployerApplicationRow(a *models.Application) EmployerApplicationRow {
	row := EmployerApplicationRow{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.UserID,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
	}
	if a.Job != nil {
		row.JobTitle = a.Job.Title
	}
	if a.User != nil {
		row.ApplicantName = a.User.Username
		row.ApplicantEmail = a.User.Email
	}
	return row
}
