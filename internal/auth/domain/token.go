package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims carried by a session token. Subject holds the username and User
// repeats it for clients that read the "user" claim.
type Claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// Username returns the user the token was issued for.
func (c *Claims) Username() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.User
}

// IssuedToken is a signed token together with its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}
