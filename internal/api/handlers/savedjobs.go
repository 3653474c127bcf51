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

// SavedJobResolver resolves a user's saved-job rows into job records
type SavedJobResolver interface {
	ListSavedJobs(ctx context.Context, userID string) ([]models.Job, error)
}

// SavedJobsHandler returns the resolved jobs a user saved. A user with no
// saved rows gets a 404, matching the empty-as-error policy of myJobs.
func SavedJobsHandler(index SavedJobResolver) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		userID := c.Param("userId")

		jobs, err := index.ListSavedJobs(c.Request().Context(), userID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   "No saved jobs found for this user",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case err != nil:
			utils.LogWithRequestID(reqID).WithError(err).Error("Failed to fetch saved jobs")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "fetch_failed",
				Message:   "Failed to fetch saved jobs",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		return c.JSON(http.StatusOK, models.SavedJobsResponse{Status: true, SavedJobs: jobs})
	}
}
