package utils

import (
	"errors"
	"net/http"

	"clubbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

var statusByCode = map[string]int{
	models.CodeInvalidDate:       http.StatusBadRequest,
	models.CodeInvalidService:    http.StatusBadRequest,
	models.CodeInvalidSlotShape:  http.StatusBadRequest,
	models.CodeNotFound:          http.StatusNotFound,
	models.CodeForbidden:         http.StatusForbidden,
	models.CodeSlotAlreadyBooked: http.StatusConflict,
	models.CodeWindowNotOffered:  http.StatusConflict,
}

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	var de *models.DomainError
	if errors.As(err, &de) {
		if status, ok := statusByCode[de.Code]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// JSONErrorFrom reports err with the status of its domain code. Unknown errors
// are logged and hidden behind a generic message.
func JSONErrorFrom(c *gin.Context, message string, err error) {
	status := StatusFor(err)
	var de *models.DomainError
	if errors.As(err, &de) {
		GetLogger().Warn(message, zap.String("code", de.Code), zap.String("details", de.Message))
		c.JSON(status, ErrorResponse{Message: message, Code: de.Code, Details: de.Message})
		return
	}
	GetLogger().Error(message, zap.Error(err))
	c.JSON(status, ErrorResponse{Message: message, Details: "An unexpected error occurred. Please try again later."})
}
