package dto

type UpdateProfileRequest struct {
	Bio            *string  `json:"bio"`
	Location       *string  `json:"location"`
	ProfilePicture *string  `json:"profilePicture"`
	Skills         []string `json:"skills"`
}

type SkillRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
