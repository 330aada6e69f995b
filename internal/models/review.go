package models

type Review struct {
	BaseModel
	ReviewerID string `gorm:"type:uuid;not null;index" json:"reviewerId"`
	RevieweeID string `gorm:"type:uuid;not null;index" json:"revieweeId"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Title      string `gorm:"not null" json:"title"`
	ReviewText string `gorm:"not null" json:"reviewText"`

	// Relations
	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee *User `gorm:"foreignKey:RevieweeID" json:"reviewee,omitempty"`
}
