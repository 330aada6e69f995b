package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillconnect/internal/middleware"
	"skillconnect/internal/services"
	"skillconnect/internal/services/dto"
)

type ProposalHandler struct {
	*BaseHandler
	proposalService services.ProposalService
}

func NewProposalHandler(base *BaseHandler, proposalService services.ProposalService) *ProposalHandler {
	return &ProposalHandler{
		BaseHandler:     base,
		proposalService: proposalService,
	}
}

func (h *ProposalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	proposals := rg.Group("/proposals")
	proposals.Use(middleware.AuthMiddleware())
	{
		proposals.POST("", h.SubmitProposal)
		proposals.GET("/applied/me", h.GetJobsAppliedTo)
		proposals.GET("/:jobId", h.GetProposalsByJob)
		proposals.GET("/:jobId/me", h.GetMyProposalForJob)
		proposals.PUT("/:jobId", h.UpdateProposal)
		proposals.PUT("/:jobId/:proposalId/accept", h.AcceptProposal)
		proposals.DELETE("/:jobId/:proposalId", h.DeleteProposal)
	}
}

func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitProposalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.SubmitProposal(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

func (h *ProposalHandler) GetProposalsByJob(c *gin.Context) {
	proposals, err := h.proposalService.GetProposalsByJob(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposals)
}

// GetMyProposalForJob returns the caller's own proposal on the job.
func (h *ProposalHandler) GetMyProposalForJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.GetProposalForJobByUser(c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposal)
}

func (h *ProposalHandler) GetJobsAppliedTo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applied, err := h.proposalService.GetJobsAppliedTo(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": applied})
}

// UpdateProposal edits the caller's proposal. The path parameter carries the
// proposal id; it shares the :jobId slot with the read routes.
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProposalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.UpdateProposal(c.Param("jobId"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposal)
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	err := h.proposalService.DeleteProposal(c.Param("proposalId"), c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Proposal deleted successfully."})
}

func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.AcceptProposal(c.Param("proposalId"), c.Param("jobId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposal)
}
