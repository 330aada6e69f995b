package repositories

import (
	"errors"

	"gorm.io/gorm"

	"skillconnect/internal/models"
)

var ErrProposalNotFound = errors.New("proposal not found")

type ProposalRepository interface {
	Create(db *gorm.DB, proposal *models.Proposal) error
	FindByID(db *gorm.DB, id string) (*models.Proposal, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Proposal, error)
	FindByJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (*models.Proposal, error)
	FindByFreelancerWithJobs(db *gorm.DB, freelancerID string) ([]models.Proposal, error)
	CountByJob(db *gorm.DB, jobID string) (int64, error)
	Update(db *gorm.DB, proposal *models.Proposal) error
	RejectSiblings(db *gorm.DB, jobID, acceptedID string) error
	Delete(db *gorm.DB, id string) error
}

type proposalRepository struct{}

func NewProposalRepository() ProposalRepository {
	return &proposalRepository{}
}

func (r *proposalRepository) Create(db *gorm.DB, proposal *models.Proposal) error {
	return db.Create(proposal).Error
}

func (r *proposalRepository) FindByID(db *gorm.DB, id string) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := db.First(&proposal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := db.Where("job_id = ?", jobID).Order("created_at").Find(&proposals).Error
	return proposals, err
}

func (r *proposalRepository) FindByJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := db.Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) FindByFreelancerWithJobs(db *gorm.DB, freelancerID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := db.
		Preload("Job").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&proposals).Error
	return proposals, err
}

func (r *proposalRepository) CountByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Proposal{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *proposalRepository) Update(db *gorm.DB, proposal *models.Proposal) error {
	return db.Save(proposal).Error
}

// RejectSiblings marks every other pending proposal on the job rejected.
func (r *proposalRepository) RejectSiblings(db *gorm.DB, jobID, acceptedID string) error {
	return db.Model(&models.Proposal{}).
		Where("job_id = ? AND id <> ?", jobID, acceptedID).
		Update("status", models.ProposalStatusRejected).Error
}

func (r *proposalRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Proposal{}, "id = ?", id).Error
}
