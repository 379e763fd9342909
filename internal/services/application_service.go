package services

import (
	"context"
	"net/http"
	"strings"

	"careerlink/internal/email"
	"careerlink/internal/logger"
	"careerlink/internal/models"
	"careerlink/internal/repositories"
	"careerlink/internal/services/dto"
	"careerlink/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(ctx context.Context, db *gorm.DB, callerID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	ListMine(db *gorm.DB, callerID, userID string) ([]*dto.ApplicationResponse, error)
	ListForEmployer(db *gorm.DB, employerID, jobID string) ([]dto.EmployerApplicationRow, error)
	ListForJob(db *gorm.DB, employerID, jobID string) ([]dto.EmployerApplicationRow, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, employerID, id string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	notifier *email.Notifier
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notifier *email.Notifier,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, db *gorm.DB, callerID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	if req.UserID != "" && req.UserID != callerID {
		return nil, apperrors.NewForbiddenError("Not authorized to apply for this user")
	}
	jobID := strings.TrimSpace(req.JobID)
	if jobID == "" {
		return nil, apperrors.NewBadRequestError("Job ID is required")
	}

	job, err := s.jobRepo.FindActiveByID(db, jobID)
	if err != nil {
		return nil, mapJobError(err)
	}

	exists, err := s.appRepo.Exists(db, job.ID, callerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, errAlreadyApplied()
	}

	app := &models.Application{
		JobID:  job.ID,
		UserID: callerID,
		Status: models.ApplicationStatusApplied,
	}
	if err := s.appRepo.Create(db, app); err != nil {
		// the unique index catches concurrent duplicates the pre-check missed
		if apperrors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, errAlreadyApplied()
		}
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "application submitted", "application_id", app.ID, "job_id", job.ID)

	if job.Employer != nil {
		applicantName := callerID
		if applicant, err := s.userRepo.FindByID(db, callerID); err == nil {
			applicantName = applicant.Username
		}
		s.notifier.NewApplication(ctx, job.Employer.Email, job.Employer.Username, applicantName, job.Title)
	}

	app.Job = job
	return dto.NewApplicationResponse(app), nil
}

func (s *ApplicationServiceImpl) ListMine(db *gorm.DB, callerID, userID string) ([]*dto.ApplicationResponse, error) {
	if userID != callerID {
		return nil, apperrors.NewForbiddenError("Not authorized to view these applications")
	}

	apps, err := s.appRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewApplicationResponse(&apps[i]))
	}
	return out, nil
}

func (s *ApplicationServiceImpl) ListForEmployer(db *gorm.DB, employerID, jobID string) ([]dto.EmployerApplicationRow, error) {
	apps, err := s.appRepo.ListForEmployer(db, employerID, strings.TrimSpace(jobID))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return employerRows(apps), nil
}

// ListForJob is ListForEmployer for exactly one job, which must exist and
// belong to the employer.
func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, employerID, jobID string) ([]dto.EmployerApplicationRow, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, apperrors.NewBadRequestError("Job ID is required")
	}

	job, err := s.jobRepo.FindActiveByID(db, jobID)
	if err != nil {
		return nil, mapJobError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("Not authorized to view applications for this job")
	}

	return s.ListForEmployer(db, employerID, jobID)
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, employerID, id string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	status := models.ApplicationStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus("application", "Invalid application status")
	}

	app, err := s.appRepo.FindByID(db, id)
	if err != nil {
		return nil, mapApplicationError(err)
	}
	if app.Job == nil || app.Job.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("Not authorized to update this application")
	}

	if err := s.appRepo.UpdateStatus(db, app.ID, status); err != nil {
		return nil, mapApplicationError(err)
	}
	app.Status = status
	logger.CtxInfo(ctx, "application status changed", "application_id", app.ID, "status", status)

	if app.User != nil {
		s.notifier.StatusChanged(ctx, app.User.Email, app.User.Username, app.Job.Title, string(status))
	}

	return dto.NewApplicationResponse(app), nil
}

func employerRows(apps []models.Application) []dto.EmployerApplicationRow {
	rows := make([]dto.EmployerApplicationRow, 0, len(apps))
	for i := range apps {
		rows = append(rows, dto.NewEmployerApplicationRow(&apps[i]))
	}
	return rows
}

func mapApplicationError(err error) error {
	if apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.ErrNotFound(err, "application", "Application not found")
	}
	return apperrors.InternalError(err)
}

func errAlreadyApplied() *apperrors.AppError {
	return apperrors.New(apperrors.CodeAlreadyExists, "application", "Already applied to this job", http.StatusBadRequest)
}
