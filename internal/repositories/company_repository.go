package repositories

import (
	"careerlink/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	FindAll(db *gorm.DB) ([]models.Company, error)
	// FindOrCreate returns the company called name, creating it with
	// location and website when it does not exist yet.
	FindOrCreate(db *gorm.DB, name, location, website string) (*models.Company, error)
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

func (r *CompanyRepositoryImpl) FindAll(db *gorm.DB) ([]models.Company, error) {
	var companies []models.Company
	err := db.Order("name ASC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) FindOrCreate(db *gorm.DB, name, location, website string) (*models.Company, error) {
	var company models.Company
	err := db.Where(models.Company{Name: name}).
		Attrs(models.Company{Location: location, Website: website}).
		FirstOrCreate(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}
