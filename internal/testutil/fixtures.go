package testutil

import (
	"fmt"
	"testing"

	"careerlink/internal/auth"
	"careerlink/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const DefaultPassword = "password123"

// UniqueEmail returns an address no other fixture uses.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

func CreateCompany(t *testing.T, db *gorm.DB, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name, Location: "Remote", Website: "https://example.com"}
	require.NoError(t, db.Create(company).Error)
	return company
}

// CreateUser stores a user with DefaultPassword.
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole, company *models.Company) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	user := &models.User{
		Username:     "user-" + uuid.NewString()[:6],
		Email:        UniqueEmail(string(role)),
		PasswordHash: hash,
		Role:         role,
	}
	if company != nil {
		user.CompanyID = &company.ID
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateEmployer stores an employer attached to a fresh company.
func CreateEmployer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	company := CreateCompany(t, db, "Company "+uuid.NewString()[:8])
	return CreateUser(t, db, models.UserRoleEmployer, company)
}

func CreateJob(t *testing.T, db *gorm.DB, employer *models.User, title string, salary *float64) *models.Job {
	t.Helper()
	require.NotNil(t, employer.CompanyID, "employer needs a company")
	job := &models.Job{
		Title:       title,
		Description: "Build things",
		Location:    "Berlin",
		Salary:      salary,
		EmployerID:  employer.ID,
		CompanyID:   *employer.CompanyID,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func Float(f float64) *float64 {
	return &f
}
