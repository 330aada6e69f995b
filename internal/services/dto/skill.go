package dto

type SkillRequest struct {
	Name string `json:"name" validate:"required"`
}
