package dto

import (
	"time"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// SessionStatusValid is the status reported for a valid session token.
const SessionStatusValid = "valid"

// AuthenticateResponse contains an issued session token.
type AuthenticateResponse struct {
	Token     string    `json:"token"` //nolint:gosec // issued to the caller
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyResponse reports the user of a valid session token.
type VerifyResponse struct {
	User   string `json:"user"`
	Status string `json:"status"`
}

// MapAuthenticateOutputToResponse converts a login result to an API response.
func MapAuthenticateOutputToResponse(output *authDomain.AuthenticateOutput) AuthenticateResponse {
	return AuthenticateResponse{
		Token:     output.Token.Token,
		ExpiresAt: output.Token.ExpiresAt,
	}
}

// MapVerifySessionOutputToResponse converts a session check result to an API response.
func MapVerifySessionOutputToResponse(output *authDomain.VerifySessionOutput) VerifyResponse {
	return VerifyResponse{
		User:   output.Username,
		Status: SessionStatusValid,
	}
}
