package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skillconnect/internal/models"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionRepository interface {
	Create(db *gorm.DB, submission *models.Submission) error
	FindByID(db *gorm.DB, id string) (*models.Submission, error)
	FindByIDWithUsers(db *gorm.DB, id string) (*models.Submission, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Submission, error)
	FindByJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (*models.Submission, error)
	Update(db *gorm.DB, submission *models.Submission) error
	Delete(db *gorm.DB, id string) error
}

type submissionRepository struct{}

func NewSubmissionRepository() SubmissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(db *gorm.DB, submission *models.Submission) error {
	return db.Create(submission).Error
}

func (r *submissionRepository) FindByID(db *gorm.DB, id string) (*models.Submission, error) {
	var submission models.Submission
	if err := db.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByIDWithUsers(db *gorm.DB, id string) (*models.Submission, error) {
	var submission models.Submission
	err := db.
		Preload("Freelancer").
		Preload("JobProvider").
		First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.
		Preload("Freelancer").
		Preload("JobProvider").
		Where("job_id = ?", jobID).
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindByJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (*models.Submission, error) {
	var submission models.Submission
	err := db.Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) Update(db *gorm.DB, submission *models.Submission) error {
	return db.Save(submission).Error
}

func (r *submissionRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Submission{}, "id = ?", id).Error
}
