package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// tokenService implements TokenService with HMAC-signed JWTs.
type tokenService struct {
	key    []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
	now    func() time.Time
}

// TokenServiceOption configures a TokenService.
type TokenServiceOption func(*tokenService)

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(t *tokenService) {
		t.now = now
	}
}

// Issue signs a token for username.
func (t *tokenService) Issue(username string) (*authDomain.IssuedToken, error) {
	now := t.now()
	claims := &authDomain.Claims{
		User: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(t.method, claims).SignedString(t.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &authDomain.IssuedToken{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify parses token, checking the signature before any claim.
func (t *tokenService) Verify(token string) (*authDomain.Claims, error) {
	claims := &authDomain.Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.key, nil },
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, authDomain.ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", authDomain.ErrTokenInvalid, err)
	}

	if !t.now().Before(claims.ExpiresAt.Time) {
		return nil, authDomain.ErrTokenExpired
	}
	if claims.Username() == "" {
		return nil, fmt.Errorf("%w: missing subject", authDomain.ErrTokenInvalid)
	}
	return claims, nil
}

// NewTokenService creates a TokenService signing with key under algorithm (HS256, HS384
// or HS512). Tokens expire ttl after issuance.
func NewTokenService(
	key []byte,
	algorithm string,
	ttl time.Duration,
	opts ...TokenServiceOption,
) (TokenService, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", authDomain.ErrUnsupportedSigningAlgorithm, algorithm)
	}
	if len(key) == 0 {
		return nil, errors.New("token signing key must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	t := &tokenService{
		key:    key,
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}
