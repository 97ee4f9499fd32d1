package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard failure response body
type ErrorResponse struct {
	Error   string `json:"error"`   // error code (see codes.go)
	Message string `json:"message"` // human-readable cause
	Status  int    `json:"status"`  // HTTP status, echoed for clients that drop headers
}

// RespondWithError writes a structured error response
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
		Status:  statusCode,
	})
}

// Shorthand responders for the common cases

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func Unauthorized(c *gin.Context, errorCode string, message string) {
	if message == "" {
		message = "A valid session token is required"
	}
	RespondWithError(c, http.StatusUnauthorized, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Something went wrong. Please try again later"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// FieldValidationError reports schema-level failures with per-field causes
type FieldValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func RespondWithValidationError(c *gin.Context, message string, fields map[string]string) {
	if message == "" {
		message = "Request payload failed validation"
	}
	c.JSON(http.StatusBadRequest, FieldValidationError{
		Error:   ValidationFailed,
		Message: message,
		Status:  http.StatusBadRequest,
		Fields:  fields,
	})
}
