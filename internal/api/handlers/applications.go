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

// ApplicationStore is the application data access consumed by the apply handler
type ApplicationStore interface {
	Submit(ctx context.Context, application models.Application) error
}

// ApplyHandler accepts a job application: required applicant fields plus a
// CV file. The referenced job is not checked for existence.
func ApplyHandler(intake FileIntake, applications ApplicationStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := utils.LogWithRequestID(reqID)

		var req models.ApplyRequest
		if err := c.Bind(&req); err != nil {
			logger.WithError(err).Error("Failed to bind application")
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "invalid_request",
				Message:   "Invalid request format",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "validation_failed",
				Message:   err.Error(),
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		header, err := c.FormFile(cvField)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "missing_file",
				Message:   "CV file is required",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		src, err := header.Open()
		if err != nil {
			logger.WithError(err).Error("Failed to open uploaded CV")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "apply_failed",
				Message:   "Internal server error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}
		defer src.Close()

		handle, err := intake.Accept(cvField, src, header.Filename)
		if err != nil {
			logger.WithError(err).Error("Failed to persist uploaded CV")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "apply_failed",
				Message:   "Internal server error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		application := models.Application{
			JobID:            req.JobID,
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			CV:               handle.Path,
			Address:          req.Address,
			DescribeYourself: req.DescribeYourself,
		}

		err = applications.Submit(c.Request().Context(), application)
		switch {
		case errors.Is(err, storage.ErrMissingFile):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "missing_file",
				Message:   "CV file is required",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case err != nil:
			logger.WithError(err).Error("Failed to store application")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "apply_failed",
				Message:   "Internal server error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		logger.WithField("job_id", req.JobID).Info("Application submitted")
		return c.JSON(http.StatusCreated, models.MessageResponse{Message: "Application submitted successfully"})
	}
}
