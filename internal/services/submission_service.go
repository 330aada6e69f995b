package services

import (
	"gorm.io/gorm"

	"skillconnect/internal/models"
	"skillconnect/internal/repositories"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

type SubmissionService interface {
	CreateSubmission(callerID string, req *dto.CreateSubmissionRequest) (*models.Submission, error)
	GetSubmissionsByJob(jobID string) ([]models.Submission, error)
	GetSubmission(submissionID string) (*models.Submission, error)
	UpdateSubmission(submissionID, callerID string, req *dto.UpdateSubmissionRequest) (*models.Submission, error)
	DeleteSubmission(submissionID, callerID string) error
}

type submissionService struct {
	db             *gorm.DB
	submissionRepo repositories.SubmissionRepository
	jobRepo        repositories.JobRepository
}

func NewSubmissionService(
	db *gorm.DB,
	submissionRepo repositories.SubmissionRepository,
	jobRepo repositories.JobRepository,
) SubmissionService {
	return &submissionService{
		db:             db,
		submissionRepo: submissionRepo,
		jobRepo:        jobRepo,
	}
}

// CreateSubmission requires the caller to be the freelancer assigned to the
// job. The provider id is denormalized from the job.
func (s *submissionService) CreateSubmission(callerID string, req *dto.CreateSubmissionRequest) (*models.Submission, error) {
	job, err := s.jobRepo.FindByID(s.db, req.JobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("submission", "Job not found.")
		}
		return nil, err
	}

	if job.FreelancerID == nil || *job.FreelancerID != callerID {
		return nil, apperrors.NewForbiddenError("You are not assigned to this job.")
	}

	if _, err := s.submissionRepo.FindByJobAndFreelancer(s.db, req.JobID, callerID); err == nil {
		return nil, apperrors.NewConflictError("submission", "You have already submitted work for this job.")
	} else if err != repositories.ErrSubmissionNotFound {
		return nil, err
	}

	submission := &models.Submission{
		JobID:         req.JobID,
		FreelancerID:  callerID,
		JobProviderID: job.JobProviderID,
		Title:         req.Title,
		Text:          req.Text,
		Attachments:   req.Attachments,
		Status:        models.SubmissionStatusPending,
	}

	if err := s.submissionRepo.Create(s.db, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) GetSubmissionsByJob(jobID string) ([]models.Submission, error) {
	submissions, err := s.submissionRepo.FindByJob(s.db, jobID)
	if err != nil {
		return nil, err
	}
	if len(submissions) == 0 {
		return nil, apperrors.NewNotFoundError("submission", "No submissions found for this job.")
	}
	return submissions, nil
}

func (s *submissionService) GetSubmission(submissionID string) (*models.Submission, error) {
	submission, err := s.submissionRepo.FindByIDWithUsers(s.db, submissionID)
	if err != nil {
		if err == repositories.ErrSubmissionNotFound {
			return nil, apperrors.NewNotFoundError("submission", "Submission not found.")
		}
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) UpdateSubmission(submissionID, callerID string, req *dto.UpdateSubmissionRequest) (*models.Submission, error) {
	submission, _, err := s.loadOwned(submissionID, callerID, "update")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		submission.Title = *req.Title
	}
	if req.Text != nil {
		submission.Text = *req.Text
	}
	if req.Attachments != nil {
		submission.Attachments = req.Attachments
	}
	if req.Status != nil {
		status := models.SubmissionStatus(*req.Status)
		if !models.ValidSubmissionStatus(status) {
			return nil, apperrors.NewBadRequestError("Submission status must be Pending or Complete.")
		}
		submission.Status = status
	}

	if err := s.submissionRepo.Update(s.db, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *submissionService) DeleteSubmission(submissionID, callerID string) error {
	submission, _, err := s.loadOwned(submissionID, callerID, "delete")
	if err != nil {
		return err
	}
	return s.submissionRepo.Delete(s.db, submission.ID)
}

// loadOwned fetches the submission and its job and checks that the caller is
// the assigned freelancer.
func (s *submissionService) loadOwned(submissionID, callerID, action string) (*models.Submission, *models.Job, error) {
	submission, err := s.submissionRepo.FindByID(s.db, submissionID)
	if err != nil {
		if err == repositories.ErrSubmissionNotFound {
			return nil, nil, apperrors.NewNotFoundError("submission", "Submission not found.")
		}
		return nil, nil, err
	}

	job, err := s.jobRepo.FindByID(s.db, submission.JobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, nil, apperrors.NewNotFoundError("submission", "Job associated with the submission not found.")
		}
		return nil, nil, err
	}

	if job.FreelancerID == nil || *job.FreelancerID != callerID {
		return nil, nil, apperrors.NewForbiddenError("You are not authorized to " + action + " this submission.")
	}

	return submission, job, nil
}
