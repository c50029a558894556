// Package usecase implements the auth gateway: credential checks, failure tracking,
// brute force signaling and session token issuance and verification.
package usecase

import (
	"context"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// CredentialRepository lists provisioned credential records.
type CredentialRepository interface {
	List(ctx context.Context) ([]*authDomain.Credential, error)
}

// AttemptTracker counts failed logins per source.
type AttemptTracker interface {
	// RecordFailure increments and returns the counter for sourceID.
	RecordFailure(sourceID string) uint64

	// ShouldAlert reports whether count is past the alert threshold.
	ShouldAlert(count uint64) bool
}

// SecurityEventEmitter records brute force signals.
type SecurityEventEmitter interface {
	Emit(ctx context.Context, sourceID string, count uint64) error
}

// GatewayUseCase is the entry point for logins and session checks.
type GatewayUseCase interface {
	// Authenticate verifies credentials and issues a session token. On any failure the
	// source's counter is incremented, a security event is emitted once the counter is past
	// the threshold, and ErrInvalidCredentials is returned.
	Authenticate(ctx context.Context, input *authDomain.AuthenticateInput) (*authDomain.AuthenticateOutput, error)

	// VerifySession validates a session token and returns its user. Fails with
	// ErrTokenExpired or ErrTokenInvalid.
	VerifySession(ctx context.Context, token string) (*authDomain.VerifySessionOutput, error)
}
