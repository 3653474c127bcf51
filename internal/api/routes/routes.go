package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobportal-api/internal/api/handlers"
	"jobportal-api/internal/api/middleware"
	"jobportal-api/internal/config"
	"jobportal-api/internal/storage"
	"jobportal-api/internal/uploads"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	store *storage.Client,
	jobs *storage.JobStore,
	applications *storage.ApplicationStore,
	subscribers *storage.SubscriberStore,
	resumes *storage.ResumeStore,
	savedJobs *storage.SavedJobIndex,
	intake *uploads.Intake,
) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Uploads.MaxBodySize))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/live", handlers.LivenessHandler)
		health.GET("/ready", handlers.ReadinessHandler(store))
	}

	// API routes
	api := e.Group("/api")
	{
		api.POST("/post-job", handlers.PostJobHandler(jobs))
		api.GET("/all-jobs", handlers.AllJobsHandler(jobs))
		api.GET("/all-jobs/:id", handlers.JobByIDHandler(jobs))
		api.GET("/myJobs/:email", handlers.MyJobsHandler(jobs))
		api.DELETE("/job/:id", handlers.DeleteJobHandler(jobs))
		api.PATCH("/update-job/:id", handlers.UpdateJobHandler(jobs))

		api.POST("/subscribe", handlers.SubscribeHandler(subscribers))
		api.POST("/upload-cv", handlers.UploadCVHandler(intake, resumes))
		api.POST("/apply", handlers.ApplyHandler(intake, applications))
		api.GET("/savedJobs/:userId", handlers.SavedJobsHandler(savedJobs))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Job Portal API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
