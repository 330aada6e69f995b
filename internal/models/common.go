package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a UUID so ids work the same on postgres and sqlite.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Attachment is file metadata carried on jobs, proposals and submissions.
// The files themselves live elsewhere; only name and URL are stored.
type Attachment struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}
