package repositories

import (
	"errors"
	"strings"

	"careerlink/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows a job listing. Zero values mean "no filter".
type JobFilter struct {
	Title      string
	Location   string
	MinSalary  *float64
	EmployerID string
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	// FindActiveByID ignores soft-deleted jobs.
	FindActiveByID(db *gorm.DB, id string) (*models.Job, error)
	List(db *gorm.DB, filter JobFilter) ([]models.Job, error)
	Update(db *gorm.DB, id string, values map[string]interface{}) error
	SoftDelete(db *gorm.DB, id string) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := withJobRelations(db).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) List(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	query := withJobRelations(db).Where("is_deleted = ?", false)

	// LOWER(..) LIKE keeps the match case-insensitive on both postgres and mysql.
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", containsPattern(filter.Title))
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", containsPattern(filter.Location))
	}
	if filter.MinSalary != nil {
		query = query.Where("salary >= ?", *filter.MinSalary)
	}
	if filter.EmployerID != "" {
		query = query.Where("employer_id = ?", filter.EmployerID)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, id string, values map[string]interface{}) error {
	result := db.Model(&models.Job{}).Where("id = ? AND is_deleted = ?", id, false).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) SoftDelete(db *gorm.DB, id string) error {
	return r.Update(db, id, map[string]interface{}{"is_deleted": true})
}

func withJobRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Company").Preload("Employer")
}

func containsPattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(strings.ToLower(s))
	return "%" + escaped + "%"
}
