package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillconnect/internal/services"
	"skillconnect/internal/services/dto"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	skills := rg.Group("/skills")
	{
		skills.POST("", h.CreateSkill)
		skills.GET("", h.GetAllSkills)
		skills.GET("/:id", h.GetSkill)
		skills.PUT("/:id", h.UpdateSkill)
		skills.DELETE("/:id", h.DeleteSkill)
	}
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req dto.SkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	skill, err := h.skillService.CreateSkill(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) GetAllSkills(c *gin.Context) {
	skills, err := h.skillService.GetAllSkills()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	skill, err := h.skillService.GetSkill(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	var req dto.SkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	skill, err := h.skillService.UpdateSkill(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	if err := h.skillService.DeleteSkill(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully."})
}
