package services

import (
	"careerlink/internal/repositories"
	"careerlink/pkg/apperrors"
)

func mapUserError(err error) error {
	if apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrNotFound(err, "user", "User not found")
	}
	return apperrors.InternalError(err)
}

func mapJobError(err error) error {
	if apperrors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrNotFound(err, "job", "Job not found")
	}
	return apperrors.InternalError(err)
}
