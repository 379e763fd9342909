package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"careerlink/internal/logger"
	"careerlink/internal/repositories"
	"careerlink/internal/resume"
	"careerlink/internal/services/dto"
	"careerlink/internal/storage"
	"careerlink/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const msgReviewFailed = "Failed to review resume."

// ResumeReviewer produces LLM feedback for a stored resume.
type ResumeReviewer interface {
	Review(ctx context.Context, key string, load func(ctx context.Context) (string, error)) (string, error)
	Forget(key string)
}

type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type ResumeService interface {
	Upload(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.ResumeUploadResponse, error)
	GetURL(db *gorm.DB, userID string) (*dto.ResumeURLResponse, error)
	Analyze(ctx context.Context, db *gorm.DB, callerID, userID string) (*dto.ResumeReviewResponse, error)
}

type ResumeServiceImpl struct {
	userRepo  repositories.UserRepository
	storage   storage.Storage
	extractor resume.TextExtractor
	reviewer  ResumeReviewer // nil when no AI key is configured
	upload    UploadConfig
}

func NewResumeService(
	userRepo repositories.UserRepository,
	store storage.Storage,
	extractor resume.TextExtractor,
	reviewer ResumeReviewer,
	upload UploadConfig,
) ResumeService {
	return &ResumeServiceImpl{
		userRepo:  userRepo,
		storage:   store,
		extractor: extractor,
		reviewer:  reviewer,
		upload:    upload,
	}
}

func (s *ResumeServiceImpl) Upload(ctx context.Context, db *gorm.DB, userID string, file *multipart.FileHeader) (*dto.ResumeUploadResponse, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("Resume file is required")
	}
	if s.upload.MaxSize > 0 && file.Size > s.upload.MaxSize {
		return nil, apperrors.New(apperrors.CodePayloadTooLarge, "resume", "Resume file is too large", http.StatusBadRequest)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !s.allowed(mtype) {
		return nil, apperrors.New(apperrors.CodeUnsupportedFileType, "resume",
			"Resume must be a PDF, DOC or DOCX file", http.StatusBadRequest).
			WithDetails(map[string]string{"detectedType": mtype.String()})
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, apperrors.InternalError(err)
	}

	key := resumeKey(userID, file.Filename, mtype.Extension())
	if err := s.storage.Save(ctx, key, src, mtype.String()); err != nil {
		return nil, apperrors.ErrExternalService(err, "storage", "Failed to store resume")
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateResume(db, userID, url, key); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.CtxWarn(ctx, "failed to remove orphaned resume", "key", key, "error", delErr)
		}
		return nil, mapUserError(err)
	}

	if old := user.ResumeKey; old != "" && old != key {
		if err := s.storage.Delete(ctx, old); err != nil {
			logger.CtxWarn(ctx, "failed to delete previous resume", "key", old, "error", err)
		}
		if s.reviewer != nil {
			s.reviewer.Forget(old)
		}
	}

	logger.CtxInfo(ctx, "resume uploaded", "user_id", userID, "key", key, "type", mtype.String())
	return &dto.ResumeUploadResponse{Message: "Resume uploaded successfully", ResumeURL: url}, nil
}

func (s *ResumeServiceImpl) GetURL(db *gorm.DB, userID string) (*dto.ResumeURLResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, errResumeNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.ResumeURL == "" {
		return nil, errResumeNotFound(nil)
	}
	return &dto.ResumeURLResponse{ResumeURL: user.ResumeURL}, nil
}

func (s *ResumeServiceImpl) Analyze(ctx context.Context, db *gorm.DB, callerID, userID string) (*dto.ResumeReviewResponse, error) {
	if callerID != userID {
		return nil, apperrors.NewForbiddenError("Not authorized to analyze this resume")
	}
	if s.reviewer == nil {
		return nil, apperrors.ErrServiceUnavailable("resume", "Resume review is not configured")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, errResumeNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.ResumeKey == "" {
		return nil, errResumeNotFound(nil)
	}

	review, err := s.reviewer.Review(ctx, user.ResumeKey, func(ctx context.Context) (string, error) {
		return s.loadText(ctx, user.ResumeKey)
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.ErrExternalService(err, "resume", msgReviewFailed)
	}
	return &dto.ResumeReviewResponse{Review: review}, nil
}

// loadText reads the stored resume and extracts its text. Only PDFs carry
// extractable text.
func (s *ResumeServiceImpl) loadText(ctx context.Context, key string) (string, error) {
	rc, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", errResumeNotFound(err)
		}
		return "", fmt.Errorf("read resume: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	if !mimetype.Detect(data).Is("application/pdf") {
		return "", errNoResumeText()
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		if errors.Is(err, resume.ErrNoText) {
			return "", errNoResumeText()
		}
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errNoResumeText()
	}
	return text, nil
}

func (s *ResumeServiceImpl) allowed(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if mimetype.EqualsAny(m.String(), s.upload.AllowedTypes...) {
			return true
		}
	}
	return false
}

// resumeKey builds resumes/<user>/<slug>-<short id><ext>.
func resumeKey(userID, filename, ext string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name := slug.Make(base)
	if name == "" {
		name = "resume"
	}
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(filename))
	}
	return fmt.Sprintf("resumes/%s/%s-%s%s", userID, name, uuid.NewString()[:8], ext)
}

func errResumeNotFound(err error) *apperrors.AppError {
	return apperrors.ErrNotFound(err, "resume", "Resume not found")
}

func errNoResumeText() *apperrors.AppError {
	return apperrors.ErrUnprocessable("resume", "Could not extract text from resume")
}
