package dto

import "skillconnect/internal/models"

type SubmitProposalRequest struct {
	JobID            string              `json:"jobId" validate:"required"`
	BudgetType       string              `json:"budgetType" validate:"required,is-budget-type"`
	BudgetAmount     *float64            `json:"budgetAmount"`
	BudgetHourlyRate *float64            `json:"budgetHourlyRate"`
	CoverLetterText  string              `json:"coverLetterText" validate:"required,min=10"`
	Attachments      []models.Attachment `json:"attachments"`
}

type UpdateProposalRequest struct {
	BudgetType       *string             `json:"budgetType" validate:"omitempty,is-budget-type"`
	BudgetAmount     *float64            `json:"budgetAmount"`
	BudgetHourlyRate *float64            `json:"budgetHourlyRate"`
	CoverLetterText  *string             `json:"coverLetterText" validate:"omitempty,min=10"`
	Attachments      []models.Attachment `json:"attachments"`
}

// AppliedJob is the projection returned by "jobs I applied to": the referenced
// job's public fields plus the proposal that links the caller to it.
type AppliedJob struct {
	ProposalID   string            `json:"proposalId"`
	JobID        string            `json:"jobId"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Status       models.JobStatus  `json:"status"`
	BudgetType   models.BudgetType `json:"budgetType"`
	BudgetAmount float64           `json:"budgetAmount"`
}
