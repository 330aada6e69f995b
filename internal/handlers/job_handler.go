package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillconnect/internal/services"
	"skillconnect/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("", h.ListJobs)
		jobs.GET("/active", h.ListActiveJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.PUT("/:id", h.UpdateJobProgress)
		jobs.PUT("/:id/update", h.UpdateJob)
		jobs.DELETE("/:id", h.DeleteJob)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	jobs, err := h.jobService.ListJobs(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListActiveJobs(c *gin.Context) {
	jobs, err := h.jobService.ListActiveJobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJobProgress changes only the job status and progress details, checking
// the status transition rules.
func (h *JobHandler) UpdateJobProgress(c *gin.Context) {
	var req dto.UpdateJobProgressRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJobProgress(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully."})
}
