package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"not null" json:"description"`

	BudgetType     BudgetType `gorm:"type:varchar(10);not null" json:"budgetType"`
	BudgetAmount   float64    `gorm:"not null" json:"budgetAmount"`
	HourlyRate     *float64   `json:"hourlyRate,omitempty"`
	EstimatedHours *int       `json:"estimatedHours,omitempty"`

	Deadline time.Time `gorm:"not null" json:"deadline"`

	RequiredSkills    datatypes.JSONSlice[string] `json:"requiredSkills"`
	ExperienceLevel   ExperienceLevel             `gorm:"type:varchar(20);not null" json:"experienceLevel"`
	PreferredLocation *string                     `json:"preferredLocation,omitempty"`

	Status          JobStatus `gorm:"type:varchar(20);default:'Open'" json:"status"`
	ProgressDetails *string   `json:"progressDetails,omitempty"`

	// ProposalsCount is denormalized; it is only ever changed together with the
	// proposal row inside one transaction.
	ProposalsCount int `gorm:"default:0" json:"proposalsCount"`

	Attachments datatypes.JSONSlice[Attachment] `json:"attachments"`

	JobProviderID string  `gorm:"type:uuid;not null;index" json:"jobProviderId"`
	FreelancerID  *string `gorm:"type:uuid" json:"freelancerId"`

	// Relations
	Category          []Skill    `gorm:"many2many:job_categories" json:"category,omitempty"`
	JobProvider       *User      `gorm:"foreignKey:JobProviderID" json:"jobProvider,omitempty"`
	ReceivedProposals []Proposal `gorm:"foreignKey:JobID" json:"receivedProposals,omitempty"`
}
