package database

import (
	"fmt"

	"careerlink/internal/logger"
	"careerlink/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date with the models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	logger.Info("Database schema migrated", "dialect", db.Dialector.Name())
	return nil
}
