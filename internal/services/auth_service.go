package services

import (
	"context"
	"strings"

	"careerlink/internal/auth"
	"careerlink/internal/email"
	"careerlink/internal/logger"
	"careerlink/internal/models"
	"careerlink/internal/repositories"
	"careerlink/internal/services/dto"
	"careerlink/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthResult carries the freshly issued session token next to the user.
type AuthResult struct {
	User  *models.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*AuthResult, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*AuthResult, error)
	CurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	tokens      *auth.TokenManager
	notifier    *email.Notifier
}

func NewAuthService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	tokens *auth.TokenManager,
	notifier *email.Notifier,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
		notifier:    notifier,
	}
}

// Register creates the user, and for employers the company, in one
// transaction, then issues a session token.
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*AuthResult, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, apperrors.NewBadRequestError("Role must be JOB_SEEKER or EMPLOYER")
	}

	emailAddr := strings.TrimSpace(req.Email)
	companyName := strings.TrimSpace(req.CompanyName)
	if role == models.UserRoleEmployer && companyName == "" {
		return nil, apperrors.NewBadRequestError("Company name is required for employers")
	}

	exists, err := s.userRepo.ExistsByEmail(db, emailAddr)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, errEmailTaken()
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if role == models.UserRoleEmployer {
			company, err := s.companyRepo.FindOrCreate(tx, companyName,
				strings.TrimSpace(req.Location), strings.TrimSpace(req.Website))
			if err != nil {
				return err
			}
			user.CompanyID = &company.ID
			user.Company = company
		}
		return s.userRepo.Create(tx, user)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, errEmailTaken()
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	s.notifier.Welcome(ctx, user.Email, user.Username, string(user.Role))

	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(db, strings.TrimSpace(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthServiceImpl) CurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}
	return dto.NewUserResponse(user), nil
}

func errEmailTaken() *apperrors.AppError {
	return apperrors.ErrAlreadyExists("auth", "Email already registered")
}
