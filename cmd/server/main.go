package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobportal-api/internal/api/routes"
	"jobportal-api/internal/config"
	"jobportal-api/internal/storage"
	"jobportal-api/internal/uploads"
	"jobportal-api/pkg/utils"
)

func main() {
	// Load configuration
	configPath := utils.GetStringOrDefault(os.Getenv("CONFIG_PATH"), "configs/config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger := utils.GetLogger()
	logger.Info("Starting Job Portal API")

	// Connect to the document store
	store := storage.NewClient(cfg)
	if err := store.Connect(context.Background()); err != nil {
		logger.WithError(err).Fatal("Failed to connect to document store")
	}

	if err := store.EnsureIndexes(context.Background()); err != nil {
		logger.WithError(err).Fatal("Failed to ensure store indexes")
	}
	logger.WithField("database", cfg.Database.Name).Info("Connected to document store")

	// Initialize the upload intake directory
	intake, err := uploads.New(cfg.Uploads.Dir)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize upload directory")
	}

	// Construct stores
	jobs := storage.NewJobStore(store)
	applications := storage.NewApplicationStore(store)
	subscribers := storage.NewSubscriberStore(store)
	resumes := storage.NewResumeStore(store)
	savedJobs := storage.NewSavedJobIndex(store, jobs)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	// Setup routes
	routes.SetupRoutes(e, cfg, store, jobs, applications, subscribers, resumes, savedJobs, intake)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Error shutting down server")
		}

		if err := store.Close(shutdownCtx); err != nil {
			logger.WithError(err).Error("Error closing store connection")
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("address", address).Info("Server starting")

	if err := e.Start(address); err != nil {
		logger.WithError(err).Info("Server stopped")
	}
}
