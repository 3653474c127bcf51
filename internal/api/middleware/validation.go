package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobportal-api/pkg/models"
	"jobportal-api/pkg/utils"
)

// RequestValidation middleware validates incoming requests
func RequestValidation(maxBodySize int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			// Content length validation for POST/PATCH requests. The cap is
			// sized for multipart CV uploads.
			if c.Request().Method == http.MethodPost || c.Request().Method == http.MethodPatch {
				if c.Request().ContentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
