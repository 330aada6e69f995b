package services

import (
	"gorm.io/gorm"

	"skillconnect/internal/models"
	"skillconnect/internal/repositories"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

type ProposalService interface {
	SubmitProposal(freelancerID string, req *dto.SubmitProposalRequest) (*models.Proposal, error)
	GetProposalsByJob(jobID string) ([]models.Proposal, error)
	GetProposalForJobByUser(jobID, freelancerID string) (*models.Proposal, error)
	GetJobsAppliedTo(freelancerID string) ([]dto.AppliedJob, error)
	UpdateProposal(proposalID, callerID string, req *dto.UpdateProposalRequest) (*models.Proposal, error)
	DeleteProposal(proposalID, jobID, callerID string) error
	AcceptProposal(proposalID, jobID, callerID string) (*models.Proposal, error)
}

type proposalService struct {
	db           *gorm.DB
	proposalRepo repositories.ProposalRepository
	jobRepo      repositories.JobRepository
}

func NewProposalService(
	db *gorm.DB,
	proposalRepo repositories.ProposalRepository,
	jobRepo repositories.JobRepository,
) ProposalService {
	return &proposalService{
		db:           db,
		proposalRepo: proposalRepo,
		jobRepo:      jobRepo,
	}
}

// SubmitProposal creates the proposal and bumps the job's counter in one
// transaction. The composite unique index backs up the duplicate pre-check.
func (s *proposalService) SubmitProposal(freelancerID string, req *dto.SubmitProposalRequest) (*models.Proposal, error) {
	if err := validateProposalBudget(models.BudgetType(req.BudgetType), req.BudgetAmount, req.BudgetHourlyRate); err != nil {
		return nil, err
	}

	if _, err := s.jobRepo.FindByID(s.db, req.JobID); err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("proposal", "Job not found.")
		}
		return nil, err
	}

	if _, err := s.proposalRepo.FindByJobAndFreelancer(s.db, req.JobID, freelancerID); err == nil {
		return nil, apperrors.NewConflictError("proposal", "Proposal already submitted for this job.")
	} else if err != repositories.ErrProposalNotFound {
		return nil, err
	}

	proposal := &models.Proposal{
		JobID:           req.JobID,
		FreelancerID:    freelancerID,
		BudgetType:      models.BudgetType(req.BudgetType),
		CoverLetterText: req.CoverLetterText,
		Attachments:     req.Attachments,
		Status:          models.ProposalStatusPending,
	}
	// Only the field matching the budget type is stored.
	switch proposal.BudgetType {
	case models.BudgetTypeFixed:
		proposal.BudgetAmount = req.BudgetAmount
	case models.BudgetTypeHourly:
		proposal.BudgetHourlyRate = req.BudgetHourlyRate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.proposalRepo.Create(tx, proposal); err != nil {
			return err
		}
		return s.jobRepo.IncrementProposalsCount(tx, req.JobID, 1)
	})
	if err != nil {
		return nil, err
	}
	return proposal, nil
}

func (s *proposalService) GetProposalsByJob(jobID string) ([]models.Proposal, error) {
	if _, err := s.jobRepo.FindByID(s.db, jobID); err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("proposal", "Job not found.")
		}
		return nil, err
	}
	return s.proposalRepo.FindByJob(s.db, jobID)
}

func (s *proposalService) GetProposalForJobByUser(jobID, freelancerID string) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByJobAndFreelancer(s.db, jobID, freelancerID)
	if err != nil {
		if err == repositories.ErrProposalNotFound {
			return nil, apperrors.NewNotFoundError("proposal", "No proposal found for this job.")
		}
		return nil, err
	}
	return proposal, nil
}

func (s *proposalService) GetJobsAppliedTo(freelancerID string) ([]dto.AppliedJob, error) {
	proposals, err := s.proposalRepo.FindByFreelancerWithJobs(s.db, freelancerID)
	if err != nil {
		return nil, err
	}

	applied := make([]dto.AppliedJob, 0, len(proposals))
	for _, p := range proposals {
		if p.Job == nil {
			continue
		}
		applied = append(applied, dto.AppliedJob{
			ProposalID:   p.ID,
			JobID:        p.Job.ID,
			Title:        p.Job.Title,
			Description:  p.Job.Description,
			Status:       p.Job.Status,
			BudgetType:   p.Job.BudgetType,
			BudgetAmount: p.Job.BudgetAmount,
		})
	}
	return applied, nil
}

func (s *proposalService) UpdateProposal(proposalID, callerID string, req *dto.UpdateProposalRequest) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(s.db, proposalID)
	if err != nil {
		if err == repositories.ErrProposalNotFound {
			return nil, apperrors.NewNotFoundError("proposal", "Proposal not found.")
		}
		return nil, err
	}

	if proposal.FreelancerID != callerID {
		return nil, apperrors.NewForbiddenError("You are not authorized to update this proposal.")
	}

	budgetType := proposal.BudgetType
	if req.BudgetType != nil {
		budgetType = models.BudgetType(*req.BudgetType)
	}
	if req.BudgetType != nil || req.BudgetAmount != nil || req.BudgetHourlyRate != nil {
		amount := req.BudgetAmount
		if amount == nil {
			amount = proposal.BudgetAmount
		}
		rate := req.BudgetHourlyRate
		if rate == nil {
			rate = proposal.BudgetHourlyRate
		}
		if err := validateProposalBudget(budgetType, amount, rate); err != nil {
			return nil, err
		}
		proposal.BudgetType = budgetType
		switch budgetType {
		case models.BudgetTypeFixed:
			proposal.BudgetAmount = amount
			proposal.BudgetHourlyRate = nil
		case models.BudgetTypeHourly:
			proposal.BudgetHourlyRate = rate
			proposal.BudgetAmount = nil
		}
	}

	if req.CoverLetterText != nil {
		proposal.CoverLetterText = *req.CoverLetterText
	}
	if req.Attachments != nil {
		proposal.Attachments = req.Attachments
	}

	if err := s.proposalRepo.Update(s.db, proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

// DeleteProposal removes the proposal and, when the parent job still exists,
// decrements its counter (floored at zero) in the same transaction.
func (s *proposalService) DeleteProposal(proposalID, jobID, callerID string) error {
	proposal, err := s.proposalRepo.FindByID(s.db, proposalID)
	if err != nil {
		if err == repositories.ErrProposalNotFound {
			return apperrors.NewNotFoundError("proposal", "Proposal not found.")
		}
		return err
	}

	if proposal.FreelancerID != callerID {
		return apperrors.NewForbiddenError("You are not authorized to delete this proposal.")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.proposalRepo.Delete(tx, proposalID); err != nil {
			return err
		}
		_, err := s.jobRepo.FindByID(tx, jobID)
		if err == repositories.ErrJobNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return s.jobRepo.IncrementProposalsCount(tx, jobID, -1)
	})
}

// AcceptProposal is the assignment transition: the job provider picks a
// proposal, the job moves Open -> In Progress with the freelancer attached,
// and every sibling proposal is rejected.
func (s *proposalService) AcceptProposal(proposalID, jobID, callerID string) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(s.db, proposalID)
	if err != nil {
		if err == repositories.ErrProposalNotFound {
			return nil, apperrors.NewNotFoundError("proposal", "Proposal not found.")
		}
		return nil, err
	}
	if proposal.JobID != jobID {
		return nil, apperrors.NewBadRequestError("Proposal does not belong to this job.")
	}

	job, err := s.jobRepo.FindByID(s.db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("proposal", "Job not found.")
		}
		return nil, err
	}

	if job.JobProviderID != callerID {
		return nil, apperrors.NewForbiddenError("Only the job provider can accept proposals.")
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.NewInvalidStatusError("proposal", "Proposals can only be accepted while the job is Open.")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		freelancerID := proposal.FreelancerID
		job.FreelancerID = &freelancerID
		job.Status = models.JobStatusInProgress
		if err := s.jobRepo.Update(tx, job); err != nil {
			return err
		}

		proposal.Status = models.ProposalStatusAccepted
		if err := s.proposalRepo.Update(tx, proposal); err != nil {
			return err
		}
		return s.proposalRepo.RejectSiblings(tx, jobID, proposalID)
	})
	if err != nil {
		return nil, err
	}
	return proposal, nil
}

// validateProposalBudget enforces that exactly the field matching the budget
// type is present and positive.
func validateProposalBudget(budgetType models.BudgetType, amount, hourlyRate *float64) error {
	switch budgetType {
	case models.BudgetTypeHourly:
		if hourlyRate == nil || *hourlyRate <= 0 {
			return apperrors.NewBadRequestError("Invalid hourly rate.")
		}
	case models.BudgetTypeFixed:
		if amount == nil || *amount <= 0 {
			return apperrors.NewBadRequestError("Invalid budget amount.")
		}
	default:
		return apperrors.NewBadRequestError("Invalid budget type.")
	}
	return nil
}
