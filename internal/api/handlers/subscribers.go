package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobportal-api/internal/storage"
	"jobportal-api/pkg/models"
	"jobportal-api/pkg/utils"
)

var validate = validator.New()

// SubscriberStore is the subscriber data access consumed by the subscribe handler
type SubscriberStore interface {
	Subscribe(ctx context.Context, email string) error
}

// SubscribeHandler records a newsletter subscriber, deduplicated by email
func SubscribeHandler(subscribers SubscriberStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := utils.LogWithRequestID(reqID)

		var req models.SubscribeRequest
		if err := c.Bind(&req); err != nil {
			logger.WithError(err).Error("Failed to bind subscribe request")
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
				Message:   "Email is required",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		err := subscribers.Subscribe(c.Request().Context(), req.Email)
		switch {
		case errors.Is(err, storage.ErrDuplicateSubscriber):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     "duplicate_subscriber",
				Message:   "Email is already subscribed",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		case err != nil:
			logger.WithError(err).Error("Failed to store subscriber")
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "subscribe_failed",
				Message:   "Server error",
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}

		logger.WithField("email", req.Email).Info("Subscriber added")
		return c.JSON(http.StatusOK, models.MessageResponse{Message: "Subscribed successfully!"})
	}
}
