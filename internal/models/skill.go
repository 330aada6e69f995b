package models

// Skill is a named capability tag shared by user profiles and job categories.
type Skill struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
