package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillconnect/internal/middleware"
	"skillconnect/internal/services"
	"skillconnect/internal/services/dto"
)

type SubmissionHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewSubmissionHandler(base *BaseHandler, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler:       base,
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	submissions := rg.Group("/submissions")
	submissions.Use(middleware.AuthMiddleware())
	{
		submissions.POST("", h.CreateSubmission)
		submissions.GET("/:jobId", h.GetSubmissionsByJob)
		submissions.PUT("/:jobId", h.UpdateSubmission)
		submissions.DELETE("/:jobId", h.DeleteSubmission)
	}
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSubmissionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	submission, err := h.submissionService.CreateSubmission(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

func (h *SubmissionHandler) GetSubmissionsByJob(c *gin.Context) {
	submissions, err := h.submissionService.GetSubmissionsByJob(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// UpdateSubmission edits the caller's submission. The path parameter carries
// the submission id; it shares the :jobId slot with the read route.
func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubmissionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	submission, err := h.submissionService.UpdateSubmission(c.Param("jobId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.submissionService.DeleteSubmission(c.Param("jobId"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted successfully."})
}
