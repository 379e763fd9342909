package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"regexp"
	"testing"

	"careerlink/internal/logger"
	"careerlink/internal/models"
	"careerlink/internal/repositories"
	"careerlink/internal/storage"
	"careerlink/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResumeKey(t *testing.T) {
	cases := []struct {
		filename, ext string
		want          string
	}{
		{"My Résumé (final).pdf", ".pdf", `^resumes/u1/my-resume-final-[0-9a-f]{8}\.pdf$`},
		{"../../etc/passwd", "", `^resumes/u1/passwd-[0-9a-f]{8}$`},
		{"???.DOCX", "", `^resumes/u1/resume-[0-9a-f]{8}\.docx$`},
	}
	for _, tc := range cases {
		assert.Regexp(t, regexp.MustCompile(tc.want), resumeKey("u1", tc.filename, tc.ext), tc.filename)
	}
	assert.NotEqual(t, resumeKey("u1", "cv.pdf", ".pdf"), resumeKey("u1", "cv.pdf", ".pdf"))
}

func TestParseRange(t *testing.T) {
	str := func(s string) *string { return &s }

	start, end, err := parseRange(str(" 2020-01-01 "), nil)
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Nil(t, end)

	start, end, err = parseRange(nil, str(""))
	require.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)

	_, _, err = parseRange(str("2020-01-01"), str("2020-01-01"))
	assert.NoError(t, err, "same day is fine")

	_, _, err = parseRange(str("2020-01-02"), str("2020-01-01"))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "End date cannot be before start date", appErr.Message)

	_, _, err = parseRange(str("yesterday"), nil)
	assert.Error(t, err)
}

type failingUserRepo struct {
	repositories.UserRepository
}

func (failingUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	return &models.User{BaseModel: models.BaseModel{ID: id}}, nil
}

func (failingUserRepo) UpdateResume(*gorm.DB, string, string, string) error {
	return errors.New("connection reset")
}

type undeletableStorage struct {
	*storage.LocalStorage
	deleted []string
}

func (s *undeletableStorage) Delete(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return errors.New("bucket is read-only")
}

func formFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestUpload_LogsFailedCleanup(t *testing.T) {
	var logs bytes.Buffer
	logger.InitWithWriter("production", &logs)

	local, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	store := &undeletableStorage{LocalStorage: local}

	svc := NewResumeService(failingUserRepo{}, store, nil, nil, UploadConfig{AllowedTypes: []string{"application/pdf"}})
	_, err = svc.Upload(context.Background(), nil, "u1", formFile(t, "cv.pdf", []byte("%PDF-1.4\n%%EOF\n")))
	require.Error(t, err)

	require.Len(t, store.deleted, 1)
	assert.Contains(t, logs.String(), "failed to remove orphaned resume")
	assert.Contains(t, logs.String(), "bucket is read-only")
	assert.Contains(t, logs.String(), store.deleted[0])
}
