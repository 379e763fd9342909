package repositories

import (
	"errors"

	"careerlink/internal/models"

	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// Section is any profile record owned by a single user.
type Section interface {
	models.Education | models.Experience | models.Project
}

// SectionRepository stores education, experience and project records.
type SectionRepository[T Section] interface {
	ListByUser(db *gorm.DB, userID string) ([]T, error)
	FindByID(db *gorm.DB, id string) (*T, error)
	Create(db *gorm.DB, record *T) error
	Save(db *gorm.DB, record *T) error
	Delete(db *gorm.DB, id string) error
}

type SectionRepositoryImpl[T Section] struct{}

func NewSectionRepository[T Section]() SectionRepository[T] {
	return &SectionRepositoryImpl[T]{}
}

func (r *SectionRepositoryImpl[T]) ListByUser(db *gorm.DB, userID string) ([]T, error) {
	var records []T
	err := db.Where("user_id = ?", userID).
		Order("start_date DESC").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *SectionRepositoryImpl[T]) FindByID(db *gorm.DB, id string) (*T, error) {
	var record T
	if err := db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *SectionRepositoryImpl[T]) Create(db *gorm.DB, record *T) error {
	return db.Create(record).Error
}

func (r *SectionRepositoryImpl[T]) Save(db *gorm.DB, record *T) error {
	return db.Save(record).Error
}

func (r *SectionRepositoryImpl[T]) Delete(db *gorm.DB, id string) error {
	var record T
	result := db.Where("id = ?", id).Delete(&record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
