package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillconnect/database"
	"skillconnect/internal/config"
	"skillconnect/internal/email"
	"skillconnect/internal/handlers"
	"skillconnect/internal/logger"
	"skillconnect/internal/middleware"
	"skillconnect/internal/repositories"
	"skillconnect/internal/routes"
	"skillconnect/internal/services"
	"skillconnect/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}
	logger.Info("AutoMigrate completed")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailSender email.Sender
	if sender, err := email.NewSMTPSender(cfg); err != nil {
		logger.Warn("SMTP is not configured, outgoing mail is logged instead of sent", "error", err)
		emailSender = &MockEmailSender{}
	} else {
		emailSender = sender
	}

	userRepo := repositories.NewUserRepository()
	skillRepo := repositories.NewSkillRepository()
	jobRepo := repositories.NewJobRepository()
	proposalRepo := repositories.NewProposalRepository()
	submissionRepo := repositories.NewSubmissionRepository()
	reviewRepo := repositories.NewReviewRepository()

	return &services.ServiceContainer{
		UserService:       services.NewUserService(gormDB, userRepo, skillRepo),
		JobService:        services.NewJobService(gormDB, jobRepo, skillRepo, userRepo),
		ProposalService:   services.NewProposalService(gormDB, proposalRepo, jobRepo),
		SubmissionService: services.NewSubmissionService(gormDB, submissionRepo, jobRepo),
		ReviewService:     services.NewReviewService(gormDB, reviewRepo, userRepo),
		SkillService:      services.NewSkillService(gormDB, skillRepo),
		EmailService:      services.NewEmailService(emailSender),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		UserHandler:       handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		JobHandler:        handlers.NewJobHandler(baseHandler, serviceContainer.JobService),
		ProposalHandler:   handlers.NewProposalHandler(baseHandler, serviceContainer.ProposalService),
		SubmissionHandler: handlers.NewSubmissionHandler(baseHandler, serviceContainer.SubmissionService),
		ReviewHandler:     handlers.NewReviewHandler(baseHandler, serviceContainer.ReviewService),
		SkillHandler:      handlers.NewSkillHandler(baseHandler, serviceContainer.SkillService),
		EmailHandler:      handlers.NewEmailHandler(baseHandler, serviceContainer.EmailService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}
