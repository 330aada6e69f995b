package dto

type ContactProviderRequest struct {
	ProviderEmail string `json:"providerEmail" validate:"required,email"`
	UserName      string `json:"userName" validate:"required"`
	Message       string `json:"message" validate:"required"`
}
