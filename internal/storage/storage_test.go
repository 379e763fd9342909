package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads/"})
	require.NoError(t, err)

	key := "resumes/user-1/cv-1234.pdf"
	require.NoError(t, s.Save(ctx, key, strings.NewReader("%PDF-1.4"), "application/pdf"))

	exists, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Get(ctx, key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "%PDF-1.4", string(data))

	url, err := s.GetURL(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/user-1/cv-1234.pdf", url)

	require.NoError(t, s.Delete(ctx, key))
	require.NoError(t, s.Delete(ctx, key), "deleting twice is fine")

	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_KeysStayInsideBasePath(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: base})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "../../escape.txt", strings.NewReader("x"), "text/plain"))

	exists, err := s.Exists(ctx, "escape.txt")
	require.NoError(t, err)
	assert.True(t, exists, "traversal is clamped to the base path")
}

func TestNewStorage(t *testing.T) {
	_, err := NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(Config{Type: "cloudflare_r2", Bucket: "b"})
	assert.ErrorContains(t, err, "endpoint is required")

	s, err := NewStorage(Config{Type: "cloudflare_r2", Bucket: "resumes", Endpoint: "https://acct.r2.cloudflarestorage.com"})
	require.NoError(t, err)
	url, err := s.GetURL(context.Background(), "resumes/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://resumes.r2.dev/resumes/a.pdf", url)

	local, err := NewStorage(Config{Type: "local", BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, local)
}
