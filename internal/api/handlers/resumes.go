package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobportal-api/pkg/models"
	"jobportal-api/pkg/utils"
)

// cvField is the multipart part name CV uploads arrive under
const cvField = "cv"

// FileIntake accepts one uploaded binary and returns its path handle
type FileIntake interface {
	Accept(fieldName string, src io.Reader, originalName string) (*models.FileHandle, error)
}

// ResumeStore is the resume-metadata data access consumed by the upload handler
type ResumeStore interface {
	Upload(ctx context.Context, resume models.Resume) error
}

// UploadCVHandler accepts a standalone CV upload and records its metadata
func UploadCVHandler(intake FileIntake, resumes ResumeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := utils.LogWithRequestID(reqID)

		header, err := c.FormFile(cvField)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "missing_file",
				Message:   "No file uploaded",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		src, err := header.Open()
		if err != nil {
			logger.WithError(err).Error("Failed to open uploaded CV")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "upload_failed",
				Message:   "Server error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}
		defer src.Close()

		handle, err := intake.Accept(cvField, src, header.Filename)
		if err != nil {
			logger.WithError(err).Error("Failed to persist uploaded CV")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "upload_failed",
				Message:   "Server error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		resume := models.Resume{
			Email:    c.FormValue("email"),
			FileName: handle.FileName,
			FilePath: handle.Path,
		}

		if err := resumes.Upload(c.Request().Context(), resume); err != nil {
			logger.WithError(err).Error("Failed to store resume metadata")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "upload_failed",
				Message:   "Server error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		logger.WithField("file", handle.FileName).Info("CV uploaded")
		return c.JSON(http.StatusOK, models.UploadCVResponse{
			Message: "CV uploaded successfully!",
			File:    handle,
		})
	}
}
