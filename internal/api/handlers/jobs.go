package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobportal-api/internal/storage"
	"jobportal-api/pkg/models"
	"jobportal-api/pkg/utils"
)

// JobStore is the job-posting data access consumed by the job handlers
type JobStore interface {
	Create(ctx context.Context, fields models.Job) (string, error)
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (models.Job, error)
	ListByPoster(ctx context.Context, email string) ([]models.Job, error)
	Update(ctx context.Context, id string, fields models.Job) error
	Delete(ctx context.Context, id string) (int64, error)
}

// PostJobHandler handles new job postings
func PostJobHandler(jobs JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := utils.LogWithRequestID(reqID)

		var fields models.Job
		if err := c.Bind(&fields); err != nil {
			logger.WithError(err).Error("Failed to bind job posting")
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		id, err := jobs.Create(c.Request().Context(), fields)
		if err != nil {
			logger.WithError(err).Error("Failed to insert job")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "insert_failed",
				Message:   "Cannot insert! Try again later.",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		logger.WithField("job_id", id).Info("Job posted")
		return c.JSON(http.StatusOK, models.InsertJobResponse{Acknowledged: true, InsertedID: id})
	}
}

// AllJobsHandler returns every job posting
func AllJobsHandler(jobs JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		list, err := jobs.List(c.Request().Context())
		if err != nil {
			utils.LogWithRequestID(reqID).WithError(err).Error("Failed to list jobs")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "list_failed",
				Message:   "Internal Server Error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, list)
	}
}

// JobByIDHandler returns a single job posting by identifier
func JobByIDHandler(jobs JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		id := c.Param("id")

		job, err := jobs.GetByID(c.Request().Context(), id)
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_id",
				Message:   "Invalid Job ID format",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case errors.Is(err, storage.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   "Cannot find job",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case err != nil:
			utils.LogWithRequestID(reqID).WithError(err).Error("Failed to fetch job")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "fetch_failed",
				Message:   "Internal Server Error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, job)
	}
}

// MyJobsHandler returns the jobs posted by one poster. Zero matches is a
// 404, not an empty 200; clients depend on that distinction.
func MyJobsHandler(jobs JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		email := c.Param("email")

		list, err := jobs.ListByPoster(c.Request().Context(), email)
		if err != nil {
			utils.LogWithRequestID(reqID).WithError(err).Error("Failed to list jobs by poster")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "list_failed",
				Message:   "Internal Server Error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		if len(list) == 0 {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   "No jobs found for this user",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.MyJobsResponse{Status: true, Jobs: list})
	}
}

// UpdateJobHandler applies a partial update to a job posting
func UpdateJobHandler(jobs JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := utils.LogWithRequestID(reqID)
		id := c.Param("id")

		var fields models.Job
		if err := c.Bind(&fields); err != nil {
			logger.WithError(err).Error("Failed to bind job update")
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		err := jobs.Update(c.Request().Context(), id, fields)
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_id",
				Message:   "Invalid Job ID format",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case errors.Is(err, storage.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   "Job not found",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case err != nil:
			logger.WithError(err).Error("Failed to update job")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "update_failed",
				Message:   "Failed to update job",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		logger.WithField("job_id", id).Info("Job updated")
		return c.JSON(http.StatusOK, models.UpdateJobResponse{
			Acknowledged: true,
			Message:      "Job updated successfully",
		})
	}
}

// DeleteJobHandler deletes a job posting unconditionally. Dependent
// applications and saved-job rows are left in place.
func DeleteJobHandler(jobs JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		id := c.Param("id")

		count, err := jobs.Delete(c.Request().Context(), id)
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_id",
				Message:   "Invalid Job ID format",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case err != nil:
			utils.LogWithRequestID(reqID).WithError(err).Error("Failed to delete job")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "delete_failed",
				Message:   "Internal Server Error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.DeleteJobResponse{Acknowledged: true, DeletedCount: count})
	}
}
