package services

import (
	"careerlink/internal/models"
	"careerlink/internal/repositories"
	"careerlink/internal/services/dto"
	"careerlink/pkg/apperrors"

	"gorm.io/gorm"
)

type SkillService interface {
	GetSkill(db *gorm.DB, userID string) (*dto.SkillResponse, error)
	UpdateSkill(db *gorm.DB, caller Caller, userID string, req *dto.SkillRequest) (*dto.SkillResponse, error)
}

type SkillServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewSkillService(userRepo repositories.UserRepository) SkillService {
	return &SkillServiceImpl{userRepo: userRepo}
}

func (s *SkillServiceImpl) GetSkill(db *gorm.DB, userID string) (*dto.SkillResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}
	return &dto.SkillResponse{Skill: user.Skills}, nil
}

// UpdateSkill replaces the caller's free-text skill list.
func (s *SkillServiceImpl) UpdateSkill(db *gorm.DB, caller Caller, userID string, req *dto.SkillRequest) (*dto.SkillResponse, error) {
	if req.Skills == nil {
		return nil, apperrors.NewBadRequestError("Skill must be a valid string")
	}
	if userID != caller.ID {
		return nil, apperrors.ErrRequestUnauthorized
	}
	if caller.Role == models.UserRoleEmployer {
		return nil, apperrors.NewBadRequestError("Employers cannot add skills")
	}

	if err := s.userRepo.UpdateSkills(db, userID, *req.Skills); err != nil {
		return nil, mapUserError(err)
	}
	return &dto.SkillResponse{Skill: *req.Skills}, nil
}
