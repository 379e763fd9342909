// Package testutil runs database-backed tests against a throwaway
// PostgreSQL container.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"careerlink/database"
	"careerlink/internal/config"
	"careerlink/internal/logger"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

const postgresImage = "postgres:16-alpine"

var (
	startOnce sync.Once
	sharedDB  *gorm.DB
	startErr  error
	container *postgres.PostgresContainer
)

// DB returns the migrated database shared by the test binary. The test is
// skipped under -short or when no container runtime is available.
func DB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	startOnce.Do(func() {
		sharedDB, startErr = start(context.Background())
	})
	if startErr != nil {
		t.Skipf("postgres container unavailable: %v", startErr)
	}
	return sharedDB
}

// TxDB returns a transaction that is rolled back when the test ends.
func TxDB(t *testing.T) *gorm.DB {
	t.Helper()
	tx := DB(t).Begin()
	if tx.Error != nil {
		t.Fatalf("begin transaction: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

// Terminate stops the container. Call it from TestMain after m.Run.
func Terminate() {
	if sharedDB != nil {
		database.Close(sharedDB)
	}
	if container != nil {
		if err := testcontainers.TerminateContainer(container); err != nil {
			logger.Warn("failed to terminate container", "error", err)
		}
	}
}

func start(ctx context.Context) (db *gorm.DB, err error) {
	// testcontainers panics when no docker host can be found at all
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start container: %v", r)
		}
	}()

	container, err = postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("careerlink"),
		postgres.WithUsername("careerlink"),
		postgres.WithPassword("careerlink"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	cfg := Config()
	cfg.Database.DSN = dsn

	db, err = database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Config returns a complete configuration suitable for tests.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Database.Driver = "postgres"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 15
	cfg.JWT.CookieName = "token"
	cfg.JWT.SameSite = "lax"
	cfg.Storage.Type = "local"
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	cfg.AI.Model = "test-model"
	cfg.AI.MaxResumeChars = 8000
	cfg.AI.CacheTTL = 60
	cfg.AI.CacheSize = 16
	cfg.AI.RatePerMinute = 600
	return cfg
}
