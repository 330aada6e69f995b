package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillconnect/internal/middleware"
	"skillconnect/internal/services"
	"skillconnect/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.POST("", h.CreateReview)
		reviews.GET("/:userId", h.GetReviewsForUser)
	}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetReviewsForUser(c *gin.Context) {
	reviews, err := h.reviewService.GetReviewsForUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
