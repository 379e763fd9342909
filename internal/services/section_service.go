package services

import (
	"context"

	"careerlink/internal/logger"
	"careerlink/internal/repositories"
	"careerlink/pkg/apperrors"

	"gorm.io/gorm"
)

// SectionService manages one kind of profile record (education, experience
// or projects). Only the owner may change a record.
type SectionService[Req any, Resp any] interface {
	// Name is the display name used in messages, e.g. "Education".
	Name() string
	List(db *gorm.DB, userID string) ([]*Resp, error)
	Create(ctx context.Context, db *gorm.DB, callerID string, req *Req) (*Resp, error)
	Update(ctx context.Context, db *gorm.DB, callerID, id string, req *Req) (*Resp, error)
	Delete(ctx context.Context, db *gorm.DB, callerID, id string) error
}

// SectionKind describes how requests map onto one record type.
type SectionKind[T repositories.Section, Req any, Resp any] struct {
	Domain string
	Name   string
	// RequestUserID returns the userId sent in the body, if any.
	RequestUserID func(req *Req) string
	// Apply validates req and copies it onto rec.
	Apply    func(req *Req, rec *T) error
	Owner    func(rec *T) string
	SetOwner func(rec *T, userID string)
	Respond  func(rec *T) *Resp
}

type SectionServiceImpl[T repositories.Section, Req any, Resp any] struct {
	repo repositories.SectionRepository[T]
	kind SectionKind[T, Req, Resp]
}

func NewSectionService[T repositories.Section, Req any, Resp any](
	repo repositories.SectionRepository[T],
	kind SectionKind[T, Req, Resp],
) SectionService[Req, Resp] {
	return &SectionServiceImpl[T, Req, Resp]{
		repo: repo,
		kind: kind,
	}
}

func (s *SectionServiceImpl[T, Req, Resp]) Name() string {
	return s.kind.Name
}

func (s *SectionServiceImpl[T, Req, Resp]) List(db *gorm.DB, userID string) ([]*Resp, error) {
	records, err := s.repo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*Resp, 0, len(records))
	for i := range records {
		out = append(out, s.kind.Respond(&records[i]))
	}
	return out, nil
}

func (s *SectionServiceImpl[T, Req, Resp]) Create(ctx context.Context, db *gorm.DB, callerID string, req *Req) (*Resp, error) {
	if err := s.checkBodyUser(callerID, req); err != nil {
		return nil, err
	}

	var rec T
	if err := s.kind.Apply(req, &rec); err != nil {
		return nil, err
	}
	s.kind.SetOwner(&rec, callerID)

	if err := s.repo.Create(db, &rec); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "profile record created", "kind", s.kind.Domain, "user_id", callerID)
	return s.kind.Respond(&rec), nil
}

func (s *SectionServiceImpl[T, Req, Resp]) Update(ctx context.Context, db *gorm.DB, callerID, id string, req *Req) (*Resp, error) {
	rec, err := s.findOwned(db, callerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkBodyUser(callerID, req); err != nil {
		return nil, err
	}

	if err := s.kind.Apply(req, rec); err != nil {
		return nil, err
	}
	if err := s.repo.Save(db, rec); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "profile record updated", "kind", s.kind.Domain, "id", id)
	return s.kind.Respond(rec), nil
}

func (s *SectionServiceImpl[T, Req, Resp]) Delete(ctx context.Context, db *gorm.DB, callerID, id string) error {
	if _, err := s.findOwned(db, callerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(db, id); err != nil {
		return s.mapError(err)
	}
	logger.CtxInfo(ctx, "profile record deleted", "kind", s.kind.Domain, "id", id)
	return nil
}

func (s *SectionServiceImpl[T, Req, Resp]) findOwned(db *gorm.DB, callerID, id string) (*T, error) {
	rec, err := s.repo.FindByID(db, id)
	if err != nil {
		return nil, s.mapError(err)
	}
	if s.kind.Owner(rec) != callerID {
		return nil, apperrors.ErrNotRecordOwner
	}
	return rec, nil
}

func (s *SectionServiceImpl[T, Req, Resp]) checkBodyUser(callerID string, req *Req) error {
	if userID := s.kind.RequestUserID(req); userID != "" && userID != callerID {
		return apperrors.ErrRequestUnauthorized
	}
	return nil
}

func (s *SectionServiceImpl[T, Req, Resp]) mapError(err error) error {
	if apperrors.Is(err, repositories.ErrRecordNotFound) {
		return apperrors.ErrNotFound(err, s.kind.Domain, s.kind.Name+" not found")
	}
	return apperrors.InternalError(err)
}
