package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/platewise/platewise-backend/config"
	"github.com/platewise/platewise-backend/internal/app/controller"
	"github.com/platewise/platewise-backend/internal/app/repository"
	"github.com/platewise/platewise-backend/internal/app/service"
	"github.com/platewise/platewise-backend/internal/db"
	"github.com/platewise/platewise-backend/internal/middleware"
	"github.com/platewise/platewise-backend/internal/router"
	"github.com/platewise/platewise-backend/internal/scheduler"
	"github.com/platewise/platewise-backend/internal/storage"
	"github.com/platewise/platewise-backend/pkg/logger"
	"github.com/platewise/platewise-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting PLATEWISE Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize redis; token revocation degrades to a no-op without it
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, token revocation disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close redis connection", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	registrationRepo := repository.NewRegistrationRepository(db.GetDB())
	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())
	subscriptionRepo := repository.NewSubscriptionRepository(db.GetDB())
	packageRepo := repository.NewPackageRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	registrationService := service.NewRegistrationService(registrationRepo, userRepo, db.GetDB())
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, packageRepo, restaurantRepo)
	restaurantService := service.NewRestaurantService(restaurantRepo)

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	registrationController := controller.NewRegistrationController(registrationService)
	adminController := controller.NewAdminController(registrationService)
	subscriptionController := controller.NewSubscriptionController(subscriptionService)
	restaurantController := controller.NewRestaurantController(restaurantService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	subscriptionMiddleware := middleware.NewSubscriptionMiddleware(subscriptionService)

	// Setup router
	r := router.NewRouter(
		authController,
		registrationController,
		adminController,
		subscriptionController,
		restaurantController,
		uploadController,
		authMiddleware,
		subscriptionMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the subscription expiry sweep
	subscriptionScheduler := scheduler.NewSubscriptionScheduler(subscriptionService)
	if err := subscriptionScheduler.Start(); err != nil {
		logger.Error("Failed to start subscription scheduler", err)
	}
	defer subscriptionScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
