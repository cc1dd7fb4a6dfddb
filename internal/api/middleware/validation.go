package middleware

import (
	"net/http"
	"time"

	"talentdeck-api/pkg/models"
	"talentdeck-api/pkg/utils"

	"github.com/labstack/echo/v4"
)

// RequestValidation middleware tags each request with an ID and rejects
// oversized bodies before they reach a handler
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			// Content length validation for mutating requests
			if utils.Contains([]string{http.MethodPost, http.MethodPatch}, c.Request().Method) {
				contentLength := c.Request().ContentLength
				if contentLength > 5*1024*1024 { // 5MB limit, import files included
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
