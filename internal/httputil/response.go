// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	apperrors "github.com/allisson/authgate/internal/errors"
)

// ErrorResponse represents a structured error response. Error carries the human readable
// message clients display; Code is a stable machine readable identifier.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	// Specific domain errors first, then the base errors they wrap.
	switch {
	case apperrors.Is(err, authDomain.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{Error: "Invalid credentials", Code: "invalid_credentials"}

	case apperrors.Is(err, authDomain.ErrTokenExpired):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{Error: "Token expired", Code: "token_expired"}

	case apperrors.Is(err, authDomain.ErrTokenInvalid):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{Error: "Invalid token", Code: "token_invalid"}

	case apperrors.Is(err, cryptoDomain.ErrDecryptionFailed),
		apperrors.Is(err, cryptoDomain.ErrInvalidCiphertext):
		statusCode = http.StatusUnprocessableEntity
		errorResponse = ErrorResponse{Error: "Decryption failed", Code: "decryption_failed"}

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusUnprocessableEntity
		errorResponse = ErrorResponse{
			Error:   "Invalid input",
			Message: err.Error(),
			Code:    "invalid_input",
		}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{Error: "Authentication is required", Code: "unauthorized"}

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{Error: "An internal error occurred", Code: "internal_error"}
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Code),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "Bad request",
		Message: err.Error(),
		Code:    "bad_request",
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "Validation failed",
		Message: err.Error(),
		Code:    "validation_error",
	}

	c.JSON(http.StatusUnprocessableEntity, errorResponse)
}
