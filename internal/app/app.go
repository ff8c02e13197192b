package app

import (
	"fmt"

	"cardlink_backend/database"
	"cardlink_backend/internal/config"
	"cardlink_backend/internal/handlers"
	"cardlink_backend/internal/logger"
	"cardlink_backend/internal/middleware"
	"cardlink_backend/internal/repositories"
	"cardlink_backend/internal/routes"
	"cardlink_backend/internal/services"
	"cardlink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT secret is not configured")
	}
	if len(cfg.AdminEmails) == 0 {
		logger.Warn("Admin email allow-list is empty; admin endpoints will reject everyone")
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
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
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and middleware into
// a ready gin engine. Tests call this directly against their own DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(cfg, serviceContainer, gormDB)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	cardRepo := repositories.NewCardRepository(gormDB)
	analyticsRepo := repositories.NewAnalyticsRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo, cfg),
		CardService:      services.NewCardService(cardRepo),
		AnalyticsService: services.NewAnalyticsService(analyticsRepo, cardRepo),
		AdminService:     services.NewAdminService(userRepo, cardRepo),
	}
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer, gormDB *gorm.DB) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, svc.AuthService),
		CardHandler:      handlers.NewCardHandler(baseHandler, svc.CardService, cfg.JWT.Secret),
		AnalyticsHandler: handlers.NewAnalyticsHandler(baseHandler, svc.AnalyticsService, cfg.JWT.Secret),
		AdminHandler:     handlers.NewAdminHandler(baseHandler, svc.AdminService, cfg.JWT.Secret, cfg.AdminEmailSet()),
		HealthHandler:    handlers.NewHealthHandler(gormDB),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" && cfg.Server.Env != "test" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
