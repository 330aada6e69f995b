package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillconnect/internal/services"
	"skillconnect/internal/services/dto"
)

type EmailHandler struct {
	*BaseHandler
	emailService services.EmailService
}

func NewEmailHandler(base *BaseHandler, emailService services.EmailService) *EmailHandler {
	return &EmailHandler{
		BaseHandler:  base,
		emailService: emailService,
	}
}

func (h *EmailHandler) RegisterRoutes(rg *gin.RouterGroup) {
	email := rg.Group("/email")
	{
		email.POST("/job-provider", h.ContactJobProvider)
	}
}

func (h *EmailHandler) ContactJobProvider(c *gin.Context) {
	var req dto.ContactProviderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.emailService.ContactJobProvider(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully."})
}
