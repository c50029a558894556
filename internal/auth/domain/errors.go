package domain

import (
	"github.com/allisson/authgate/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials covers unknown users, wrong passwords and malformed login requests alike.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrTokenExpired indicates a token whose signature verifies but whose expiry has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrTokenInvalid indicates a token that is malformed or signed with another key or algorithm.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid token")
)

// Configuration errors.
var (
	// ErrUnsupportedSigningAlgorithm indicates a token signing algorithm other than HS256, HS384 or HS512.
	ErrUnsupportedSigningAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported signing algorithm")

	// ErrInvalidCredential indicates a credential record that cannot be loaded.
	ErrInvalidCredential = errors.Wrap(errors.ErrInvalidInput, "invalid credential record")
)
