package models

import "gorm.io/datatypes"

// Submission is delivered work from the assigned freelancer against a job.
// JobProviderID is denormalized from the job at creation time.
type Submission struct {
	BaseModel
	JobID         string `gorm:"type:uuid;not null;uniqueIndex:idx_submission_job_freelancer" json:"jobId"`
	FreelancerID  string `gorm:"type:uuid;not null;uniqueIndex:idx_submission_job_freelancer" json:"freelancerId"`
	JobProviderID string `gorm:"type:uuid;not null" json:"jobProviderId"`

	Title string `gorm:"size:100;not null" json:"title"`
	Text  string `gorm:"not null" json:"text"`

	Attachments datatypes.JSONSlice[Attachment] `json:"attachments"`

	Status SubmissionStatus `gorm:"type:varchar(10);default:'Pending'" json:"status"`

	// Relations
	Freelancer  *User `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	JobProvider *User `gorm:"foreignKey:JobProviderID" json:"jobProvider,omitempty"`
}
