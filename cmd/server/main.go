package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Circulx/Profile-management/config"
	"github.com/Circulx/Profile-management/internal/app/controller"
	"github.com/Circulx/Profile-management/internal/app/repository"
	"github.com/Circulx/Profile-management/internal/app/service"
	"github.com/Circulx/Profile-management/internal/db"
	"github.com/Circulx/Profile-management/internal/middleware"
	"github.com/Circulx/Profile-management/internal/router"
	"github.com/Circulx/Profile-management/internal/scheduler"
	"github.com/Circulx/Profile-management/internal/session"
	"github.com/Circulx/Profile-management/internal/storage"
	"github.com/Circulx/Profile-management/pkg/logger"
	"github.com/Circulx/Profile-management/pkg/redis"
)

func main() {
	// Load configuration; a missing store connection string is fatal
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

	logger.Info("Starting Profile Management Server", map[string]interface{}{
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

	// Initialize the wizard session store
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize session store", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close session store connection", err)
		}
	}()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db.GetDB())
	sectionRepo := repository.NewSectionRepository(db.GetDB())

	// Initialize services
	profileService := service.NewProfileService(profileRepo)
	sectionService := service.NewSectionService(profileRepo, sectionRepo, db.GetDB())
	exportService := service.NewExportService(profileRepo)

	// Initialize the wizard session manager
	sessionStore := session.NewRedisStore(redis.GetClient(), cfg.Session.StoreTTL)
	sessions := session.NewManager(sessionStore)

	// Initialize document storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	profileController := controller.NewProfileController(profileService, exportService, sessions)
	sectionController := controller.NewSectionController(sectionService, sessions)
	sessionController := controller.NewSessionController(sessions, cfg.Session.TokenSecret, cfg.Session.TokenExpiry)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Session.TokenSecret)

	// Start the stale draft reminder
	draftReminder := scheduler.NewDraftReminderScheduler(profileService)
	if err := draftReminder.Start(); err != nil {
		logger.Error("Failed to start draft reminder scheduler", err)
	}
	defer draftReminder.Stop()

	// Setup router
	r := router.NewRouter(
		profileController,
		sectionController,
		sessionController,
		uploadController,
		sessionMiddleware,
		cfg,
	)
	engine := r.Setup()

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
