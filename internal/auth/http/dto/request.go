// Package dto provides data transfer objects for the authentication endpoints.
package dto

import (
	validation "github.com/jellydator/validation"
)

// maxPasswordLength bounds the input fed to the password hash.
const maxPasswordLength = 1024

// AuthenticateRequest contains the login parameters. IP is accepted as an alias of SourceID.
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // login input
	LoginSource
}

// Validate bounds credential sizes. Empty fields are allowed here and rejected as invalid
// credentials. The embedded LoginSource is validated on its own.
func (r *AuthenticateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Length(0, 255)),
		validation.Field(&r.Password, validation.Length(0, maxPasswordLength)),
	)
}

// LoginSource is the attribution part of a login body. It is bound on its own so a
// failed login is still counted against the caller when the credentials are malformed.
type LoginSource struct {
	SourceID string `json:"source_id"`
	IP       string `json:"ip"`
}

// Validate bounds field sizes.
func (s *LoginSource) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.SourceID, validation.Length(0, 255)),
		validation.Field(&s.IP, validation.Length(0, 255)),
	)
}

// Source returns SourceID, falling back to IP.
func (s *LoginSource) Source() string {
	if s.SourceID != "" {
		return s.SourceID
	}
	return s.IP
}
