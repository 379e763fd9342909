package services

import (
	"careerlink/internal/repositories"
	"careerlink/internal/services/dto"
	"careerlink/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	List(db *gorm.DB) ([]*dto.CompanyResponse, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) List(db *gorm.DB) ([]*dto.CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, dto.NewCompanyResponse(&companies[i]))
	}
	return out, nil
}
