package dto

type CreateReviewRequest struct {
	RevieweeID string `json:"revieweeId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Title      string `json:"title" validate:"required"`
	ReviewText string `json:"reviewText" validate:"required"`
}
