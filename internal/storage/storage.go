package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrNotFound = errors.New("object not found")

// Storage is the object store resumes are written to.
type Storage interface {
	// Save stores the object at key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get opens the object at key. Returns ErrNotFound when it is missing.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for key.
	GetURL(ctx context.Context, key string) (string, error)
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // local only
	BaseURL    string // public URL base
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string // r2 or a custom s3 endpoint
	PublicRead bool
}

// NewStorage builds the backend named by cfg.Type.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
