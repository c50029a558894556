// Package service provides the technical services behind authentication: password hashing,
// the in-memory credential store and signed session tokens.
package service

import (
	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// PasswordService hashes and compares passwords.
type PasswordService interface {
	// GeneratePassword creates a random password and its hash.
	GeneratePassword() (plainPassword string, hashedPassword string, err error)

	// HashPassword hashes a plain text password with Argon2id.
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// ComparePassword reports whether plainPassword matches hashedPassword. Argon2id PHC strings
	// and bcrypt hashes are both accepted. Malformed hashes never match.
	ComparePassword(plainPassword string, hashedPassword string) bool
}

// CredentialStore verifies usernames and passwords against the loaded credential records.
type CredentialStore interface {
	// Verify reports whether password is correct for username. Unknown users, empty input and
	// malformed stored hashes all yield false.
	Verify(username, password string) bool
}

// TokenService issues and verifies signed, expiring session tokens.
type TokenService interface {
	// Issue signs a token for username that expires after the configured TTL.
	Issue(username string) (*authDomain.IssuedToken, error)

	// Verify checks the signature and expiry of token and returns its claims. It fails with
	// ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (*authDomain.Claims, error)
}
