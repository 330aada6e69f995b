package models

import "gorm.io/datatypes"

// Proposal is a freelancer's bid on a job. The composite unique index makes the
// database reject a second proposal for the same (job, freelancer) pair even
// when two submissions race past the application-level check.
type Proposal struct {
	BaseModel
	JobID        string `gorm:"type:uuid;not null;uniqueIndex:idx_job_freelancer" json:"jobId"`
	FreelancerID string `gorm:"type:uuid;not null;uniqueIndex:idx_job_freelancer" json:"freelancerId"`

	BudgetType BudgetType `gorm:"type:varchar(10);not null" json:"budgetType"`
	// Exactly one of the two is set, matching BudgetType.
	BudgetAmount     *float64 `json:"budgetAmount,omitempty"`
	BudgetHourlyRate *float64 `json:"budgetHourlyRate,omitempty"`

	CoverLetterText string                          `gorm:"not null" json:"coverLetterText"`
	Attachments     datatypes.JSONSlice[Attachment] `json:"attachments"`

	Status ProposalStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`

	// Relations
	Job        *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Freelancer *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}
