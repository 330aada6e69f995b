package dto

import "skillconnect/internal/models"

type CreateJobRequest struct {
	Title             string              `json:"title" validate:"required,max=100"`
	Description       string              `json:"description" validate:"required,min=10"`
	Category          []string            `json:"category"`
	BudgetType        string              `json:"budgetType" validate:"required,is-budget-type"`
	BudgetAmount      float64             `json:"budgetAmount" validate:"required,gt=0"`
	HourlyRate        *float64            `json:"hourlyRate" validate:"omitempty,gt=0"`
	EstimatedHours    *int                `json:"estimatedHours" validate:"omitempty,gt=0"`
	Deadline          string              `json:"deadline" validate:"required"`
	Attachments       []models.Attachment `json:"attachments"`
	RequiredSkills    []string            `json:"requiredSkills"`
	ExperienceLevel   string              `json:"experienceLevel" validate:"required,is-experience-level"`
	PreferredLocation *string             `json:"preferredLocation"`
	JobProviderID     string              `json:"jobProviderId" validate:"required"`
}

// UpdateJobRequest is the generic partial update; nil means "leave as is".
type UpdateJobRequest struct {
	Title             *string             `json:"title" validate:"omitempty,max=100"`
	Description       *string             `json:"description" validate:"omitempty,min=10"`
	Category          []string            `json:"category"`
	BudgetType        *string             `json:"budgetType" validate:"omitempty,is-budget-type"`
	BudgetAmount      *float64            `json:"budgetAmount" validate:"omitempty,gt=0"`
	HourlyRate        *float64            `json:"hourlyRate" validate:"omitempty,gt=0"`
	EstimatedHours    *int                `json:"estimatedHours" validate:"omitempty,gt=0"`
	Deadline          *string             `json:"deadline"`
	Attachments       []models.Attachment `json:"attachments"`
	RequiredSkills    []string            `json:"requiredSkills"`
	ExperienceLevel   *string             `json:"experienceLevel" validate:"omitempty,is-experience-level"`
	PreferredLocation *string             `json:"preferredLocation"`
}

type UpdateJobProgressRequest struct {
	Status          string  `json:"status" validate:"required,is-job-status"`
	ProgressDetails *string `json:"progressDetails"`
}

type JobListQuery struct {
	Status          string `form:"status" validate:"omitempty,is-job-status"`
	BudgetType      string `form:"budgetType" validate:"omitempty,is-budget-type"`
	ExperienceLevel string `form:"experienceLevel" validate:"omitempty,is-experience-level"`
	Category        string `form:"category"`
	EstimatedTime   *int   `form:"estimatedTime"`
	Search          string `form:"search"`
}
