package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Message: "Internal Server Error",
					Error:   "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, detail string) {
	GetLogger().Warn(message, zap.String("detail", detail))
	c.JSON(status, ErrorResponse{Success: false, Message: message, Error: detail})
}

// JSONValidationError sends a 400 with the field-level validation messages.
func JSONValidationError(c *gin.Context, errors []string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Message: "Validation error",
		Errors:  errors,
	})
}
