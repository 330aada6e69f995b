package models

type User struct {
	BaseModel
	Name           string   `gorm:"not null" json:"name"`
	Email          string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string   `gorm:"not null" json:"-"`
	Role           UserRole `gorm:"type:varchar(20);not null" json:"role"`
	ProfilePicture *string  `json:"profilePicture"`
	Bio            *string  `json:"bio"`
	Location       *string  `json:"location"`
	AvgRating      float64  `gorm:"default:1" json:"avgRating"`
	TotalEarnings  float64  `gorm:"default:0" json:"totalEarnings"`

	// Relations
	Skills  []Skill  `gorm:"many2many:user_skills" json:"skills,omitempty"`
	Reviews []Review `gorm:"foreignKey:RevieweeID" json:"reviews,omitempty"`
}

// PublicUser is the projection exposed when a user is populated into another
// document (job provider, freelancer, reviewer).
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
