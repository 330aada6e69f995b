package routes

import (
	"github.com/gin-gonic/gin"

	"skillconnect/internal/handlers"
)

// RegisterRoutes attaches every resource handler under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ProposalHandler.RegisterRoutes(api)
		appHandlers.SubmissionHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.EmailHandler.RegisterRoutes(api)
	}
}
