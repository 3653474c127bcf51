package handlers

import (
	"github.com/labstack/echo/v4"

	"jobportal-api/pkg/utils"
)

// requestID returns the request ID assigned by the validation middleware,
// generating one when the handler is exercised without it (tests).
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
