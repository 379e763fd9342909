package services

import (
	"context"
	"strconv"
	"strings"

	"careerlink/internal/logger"
	"careerlink/internal/models"
	"careerlink/internal/repositories"
	"careerlink/internal/services/dto"
	"careerlink/pkg/apperrors"

	"gorm.io/gorm"
)

const msgJobFieldsRequired = "Title, description, and location are required"

// Caller is the authenticated user a request acts on behalf of.
type Caller struct {
	ID   string
	Role models.UserRole
}

func (c Caller) IsEmployer() bool {
	return c.Role == models.UserRoleEmployer
}

type JobService interface {
	List(db *gorm.DB, caller Caller, query *dto.JobQuery) ([]*dto.JobResponse, error)
	Get(db *gorm.DB, id string) (*dto.JobResponse, error)
	Create(ctx context.Context, db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, db *gorm.DB, employerID, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, db *gorm.DB, employerID, id string) error
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// List returns live jobs matching query. Employers only ever see their own.
func (s *JobServiceImpl) List(db *gorm.DB, caller Caller, query *dto.JobQuery) ([]*dto.JobResponse, error) {
	filter := repositories.JobFilter{
		Title:    strings.TrimSpace(query.Title),
		Location: strings.TrimSpace(query.Location),
	}
	if raw := strings.TrimSpace(query.MinSalary); raw != "" {
		minSalary, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperrors.NewBadRequestError("minSalary must be a number")
		}
		filter.MinSalary = &minSalary
	}
	if caller.IsEmployer() {
		filter.EmployerID = caller.ID
	}

	jobs, err := s.jobRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.NewJobResponse(&jobs[i]))
	}
	return out, nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, mapJobError(err)
	}
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) Create(ctx context.Context, db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	location := strings.TrimSpace(req.Location)
	if title == "" || description == "" || location == "" {
		return nil, apperrors.NewBadRequestError(msgJobFieldsRequired)
	}

	employer, err := s.userRepo.FindByID(db, employerID)
	if err != nil {
		return nil, mapUserError(err)
	}
	if !employer.IsEmployer() || employer.CompanyID == nil {
		return nil, apperrors.NewForbiddenError("Only employers associated with a company can post jobs")
	}

	job := &models.Job{
		Title:        title,
		Description:  description,
		Location:     location,
		Salary:       req.Salary.Float(),
		Requirements: strings.TrimSpace(req.Requirements),
		EmployerID:   employer.ID,
		CompanyID:    *employer.CompanyID,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job posted", "job_id", job.ID, "employer_id", employer.ID)
	return s.Get(db, job.ID)
}

// Update applies the non-nil fields of req to a job the employer owns.
func (s *JobServiceImpl) Update(ctx context.Context, db *gorm.DB, employerID, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if _, err := s.findOwnedJob(db, employerID, id); err != nil {
		return nil, err
	}

	values := make(map[string]interface{})
	for column, field := range map[string]*string{
		"title":       req.Title,
		"description": req.Description,
		"location":    req.Location,
	} {
		if field == nil {
			continue
		}
		v := strings.TrimSpace(*field)
		if v == "" {
			return nil, apperrors.NewBadRequestError(msgJobFieldsRequired)
		}
		values[column] = v
	}
	if req.Requirements != nil {
		values["requirements"] = strings.TrimSpace(*req.Requirements)
	}
	if salary := req.Salary.Float(); salary != nil {
		values["salary"] = *salary
	}

	if len(values) > 0 {
		if err := s.jobRepo.Update(db, id, values); err != nil {
			return nil, mapJobError(err)
		}
		logger.CtxInfo(ctx, "job updated", "job_id", id)
	}
	return s.Get(db, id)
}

func (s *JobServiceImpl) Delete(ctx context.Context, db *gorm.DB, employerID, id string) error {
	if _, err := s.findOwnedJob(db, employerID, id); err != nil {
		return err
	}
	if err := s.jobRepo.SoftDelete(db, id); err != nil {
		return mapJobError(err)
	}
	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}

func (s *JobServiceImpl) findOwnedJob(db *gorm.DB, employerID, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindActiveByID(db, id)
	if err != nil {
		return nil, mapJobError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("You are not authorized to modify this job")
	}
	return job, nil
}
