package repositories

import (
	"errors"

	"careerlink/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	Exists(db *gorm.DB, jobID, userID string) (bool, error)
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Application, error)
	// ListForEmployer returns applications to the employer's live jobs,
	// optionally limited to one job.
	ListForEmployer(db *gorm.DB, employerID, jobID string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Exists(db *gorm.DB, jobID, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.Preload("Job").Preload("User").Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListForEmployer(db *gorm.DB, employerID, jobID string) ([]models.Application, error) {
	query := db.Select("applications.*").
		Preload("Job").Preload("User").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ? AND jobs.is_deleted = ?", employerID, false)
	if jobID != "" {
		query = query.Where("applications.job_id = ?", jobID)
	}

	var apps []models.Application
	err := query.Order("applications.applied_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
