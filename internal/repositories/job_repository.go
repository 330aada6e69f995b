package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"skillconnect/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilters are the exact-match filters for the job listing, plus a
// case-insensitive title substring search. Zero values mean "no constraint".
type JobFilters struct {
	Status          models.JobStatus
	BudgetType      models.BudgetType
	ExperienceLevel models.ExperienceLevel
	CategoryID      string
	EstimatedHours  *int
	Search          string
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindByIDWithProvider(db *gorm.DB, id string) (*models.Job, error)
	FindAll(db *gorm.DB, filters JobFilters) ([]models.Job, error)
	FindByStatus(db *gorm.DB, status models.JobStatus) ([]models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	IncrementProposalsCount(db *gorm.DB, jobID string, delta int) error
	Delete(db *gorm.DB, id string) error
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Preload("Category").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// providerPublicFields limits the populated provider to its public identity.
func providerPublicFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func (r *jobRepository) FindByIDWithProvider(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.
		Preload("Category").
		Preload("JobProvider", providerPublicFields).
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindAll(db *gorm.DB, filters JobFilters) ([]models.Job, error) {
	query := db.Model(&models.Job{}).Preload("Category")

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.BudgetType != "" {
		query = query.Where("budget_type = ?", filters.BudgetType)
	}
	if filters.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filters.ExperienceLevel)
	}
	if filters.EstimatedHours != nil {
		query = query.Where("estimated_hours = ?", *filters.EstimatedHours)
	}
	if filters.CategoryID != "" {
		query = query.Joins("JOIN job_categories ON job_categories.job_id = jobs.id").
			Where("job_categories.skill_id = ?", filters.CategoryID)
	}
	if filters.Search != "" {
		// LOWER + LIKE works on both postgres and sqlite.
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) FindByStatus(db *gorm.DB, status models.JobStatus) ([]models.Job, error) {
	var jobs []models.Job
	err := db.
		Preload("JobProvider", providerPublicFields).
		Where("status = ?", status).
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

// IncrementProposalsCount applies an atomic counter update. Negative deltas
// floor at zero.
func (r *jobRepository) IncrementProposalsCount(db *gorm.DB, jobID string, delta int) error {
	if delta >= 0 {
		return db.Model(&models.Job{}).
			Where("id = ?", jobID).
			UpdateColumn("proposals_count", gorm.Expr("proposals_count + ?", delta)).Error
	}
	return db.Model(&models.Job{}).
		Where("id = ?", jobID).
		UpdateColumn("proposals_count",
			gorm.Expr("CASE WHEN proposals_count + ? < 0 THEN 0 ELSE proposals_count + ? END", delta, delta)).Error
}

func (r *jobRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Job{}, "id = ?", id).Error
}
