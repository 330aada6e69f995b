package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"skillconnect/database"
	"skillconnect/internal/config"
	"skillconnect/internal/models"
	"skillconnect/internal/repositories"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         role,
		AvgRating:    1,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestJob(t *testing.T, db *gorm.DB, providerID string) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:           "Build a landing page",
		Description:     "A single page site with a contact form.",
		BudgetType:      models.BudgetTypeFixed,
		BudgetAmount:    500,
		Deadline:        time.Now().Add(14 * 24 * time.Hour),
		ExperienceLevel: models.ExperienceLevelEntry,
		Status:          models.JobStatusOpen,
		JobProviderID:   providerID,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func newTestProposalService(db *gorm.DB) ProposalService {
	return NewProposalService(db, repositories.NewProposalRepository(), repositories.NewJobRepository())
}

func newTestJobService(db *gorm.DB) JobService {
	return NewJobService(db, repositories.NewJobRepository(), repositories.NewSkillRepository(), repositories.NewUserRepository())
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }
