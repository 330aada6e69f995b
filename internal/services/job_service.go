package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"skillconnect/internal/models"
	"skillconnect/internal/repositories"
	"skillconnect/internal/services/dto"
	"skillconnect/pkg/apperrors"
)

// deadline accepts full timestamps and bare dates.
var deadlineLayouts = []string{time.RFC3339, "2006-01-02"}

type JobService interface {
	CreateJob(req *dto.CreateJobRequest) (*models.Job, error)
	ListJobs(query *dto.JobListQuery) ([]models.Job, error)
	GetJob(jobID string) (*models.Job, error)
	ListActiveJobs() ([]models.Job, error)
	UpdateJobProgress(jobID string, req *dto.UpdateJobProgressRequest) (*models.Job, error)
	UpdateJob(jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(jobID string) error
}

type jobService struct {
	db        *gorm.DB
	jobRepo   repositories.JobRepository
	skillRepo repositories.SkillRepository
	userRepo  repositories.UserRepository
}

func NewJobService(
	db *gorm.DB,
	jobRepo repositories.JobRepository,
	skillRepo repositories.SkillRepository,
	userRepo repositories.UserRepository,
) JobService {
	return &jobService{
		db:        db,
		jobRepo:   jobRepo,
		skillRepo: skillRepo,
		userRepo:  userRepo,
	}
}

func (s *jobService) CreateJob(req *dto.CreateJobRequest) (*models.Job, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid or past deadline.")
	}
	if !deadline.After(time.Now()) {
		return nil, apperrors.NewBadRequestError("Invalid or past deadline.")
	}

	if _, err := s.userRepo.FindByID(s.db, req.JobProviderID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewNotFoundError("job", "Job provider not found.")
		}
		return nil, err
	}

	category, err := s.resolveCategory(req.Category)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:             req.Title,
		Description:       req.Description,
		BudgetType:        models.BudgetType(req.BudgetType),
		BudgetAmount:      req.BudgetAmount,
		HourlyRate:        req.HourlyRate,
		EstimatedHours:    req.EstimatedHours,
		Deadline:          deadline,
		RequiredSkills:    req.RequiredSkills,
		ExperienceLevel:   models.ExperienceLevel(req.ExperienceLevel),
		PreferredLocation: req.PreferredLocation,
		Status:            models.JobStatusOpen,
		ProposalsCount:    0,
		Attachments:       req.Attachments,
		JobProviderID:     req.JobProviderID,
		Category:          category,
	}

	if err := s.jobRepo.Create(s.db, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) ListJobs(query *dto.JobListQuery) ([]models.Job, error) {
	filters := repositories.JobFilters{
		Status:          models.JobStatus(query.Status),
		BudgetType:      models.BudgetType(query.BudgetType),
		ExperienceLevel: models.ExperienceLevel(query.ExperienceLevel),
		CategoryID:      query.Category,
		EstimatedHours:  query.EstimatedTime,
		Search:          query.Search,
	}
	return s.jobRepo.FindAll(s.db, filters)
}

func (s *jobService) GetJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByIDWithProvider(s.db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("job", "Job not found.")
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) ListActiveJobs() ([]models.Job, error) {
	return s.jobRepo.FindByStatus(s.db, models.JobStatusInProgress)
}

// UpdateJobProgress moves the job through its lifecycle. Transitions are
// validated against the transition table; Completed and Cancelled are terminal.
func (s *jobService) UpdateJobProgress(jobID string, req *dto.UpdateJobProgressRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(s.db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("job", "Job not found.")
		}
		return nil, err
	}

	next := models.JobStatus(req.Status)
	if !models.CanTransitionJob(job.Status, next) {
		return nil, apperrors.NewInvalidStatusError("job",
			fmt.Sprintf("Cannot transition job from %q to %q.", job.Status, next))
	}

	job.Status = next
	if req.ProgressDetails != nil {
		job.ProgressDetails = req.ProgressDetails
	}

	if err := s.jobRepo.Update(s.db, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) UpdateJob(jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(s.db, jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			return nil, apperrors.NewNotFoundError("job", "Job not found.")
		}
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.BudgetType != nil {
		job.BudgetType = models.BudgetType(*req.BudgetType)
	}
	if req.BudgetAmount != nil {
		job.BudgetAmount = *req.BudgetAmount
	}
	if req.HourlyRate != nil {
		job.HourlyRate = req.HourlyRate
	}
	if req.EstimatedHours != nil {
		job.EstimatedHours = req.EstimatedHours
	}
	if req.Deadline != nil {
		deadline, err := parseDeadline(*req.Deadline)
		if err != nil || !deadline.After(time.Now()) {
			return nil, apperrors.NewBadRequestError("Invalid or past deadline.")
		}
		job.Deadline = deadline
	}
	if req.RequiredSkills != nil {
		job.RequiredSkills = req.RequiredSkills
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = models.ExperienceLevel(*req.ExperienceLevel)
	}
	if req.PreferredLocation != nil {
		job.PreferredLocation = req.PreferredLocation
	}
	if req.Attachments != nil {
		job.Attachments = req.Attachments
	}

	if req.Category != nil {
		category, err := s.resolveCategory(req.Category)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(job).Association("Category").Replace(category); err != nil {
			return nil, err
		}
	}

	if err := s.jobRepo.Update(s.db, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) DeleteJob(jobID string) error {
	if _, err := s.jobRepo.FindByID(s.db, jobID); err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.NewNotFoundError("job", "Job not found.")
		}
		return err
	}
	return s.jobRepo.Delete(s.db, jobID)
}

// resolveCategory maps skill ids to Skill rows, rejecting unknown ids.
func (s *jobService) resolveCategory(ids []string) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	skills, err := s.skillRepo.FindByIDs(s.db, ids)
	if err != nil {
		return nil, err
	}
	if len(skills) != len(ids) {
		return nil, apperrors.NewBadRequestError("Some category skill IDs are invalid.")
	}
	return skills, nil
}

func parseDeadline(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range deadlineLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
