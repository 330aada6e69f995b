package dto

import "skillconnect/internal/models"

type CreateSubmissionRequest struct {
	JobID       string              `json:"jobId" validate:"required"`
	Title       string              `json:"title" validate:"required,max=100"`
	Text        string              `json:"text" validate:"required,min=10"`
	Attachments []models.Attachment `json:"attachments"`
}

type UpdateSubmissionRequest struct {
	Title       *string             `json:"title" validate:"omitempty,max=100"`
	Text        *string             `json:"text" validate:"omitempty,min=10"`
	Attachments []models.Attachment `json:"attachments"`
	Status      *string             `json:"status" validate:"omitempty,is-submission-status"`
}
