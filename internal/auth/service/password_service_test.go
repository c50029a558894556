package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordService(t *testing.T) {
	service := NewPasswordService()
	assert.NotNil(t, service)
	assert.IsType(t, &passwordService{}, service)
}

func TestPasswordService_GeneratePassword(t *testing.T) {
	service := NewPasswordService()

	plain, hashed, err := service.GeneratePassword()
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(plain)
	require.NoError(t, err)
	assert.Len(t, decoded, 24)
	assert.Contains(t, hashed, "$argon2id$")
	assert.True(t, service.ComparePassword(plain, hashed))

	plain2, _, err := service.GeneratePassword()
	require.NoError(t, err)
	assert.NotEqual(t, plain, plain2)
}

func TestPasswordService_HashPassword(t *testing.T) {
	service := NewPasswordService()

	hash1, err := service.HashPassword("password123")
	require.NoError(t, err)
	hash2, err := service.HashPassword("password123")
	require.NoError(t, err)

	// Salted, so the same password never hashes the same way twice.
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, service.ComparePassword("password123", hash1))
	assert.True(t, service.ComparePassword("password123", hash2))
}

func TestPasswordService_ComparePassword(t *testing.T) {
	service := NewPasswordService()

	argonHash, err := service.HashPassword("password123")
	require.NoError(t, err)

	bcryptHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		expected bool
	}{
		{name: "argon2id match", password: "password123", hash: argonHash, expected: true},
		{name: "argon2id mismatch", password: "password124", hash: argonHash, expected: false},
		{name: "bcrypt match", password: "password123", hash: string(bcryptHash), expected: true},
		{name: "bcrypt mismatch", password: "wrong", hash: string(bcryptHash), expected: false},
		{name: "empty password", password: "", hash: argonHash, expected: false},
		{name: "malformed hash", password: "password123", hash: "not-a-hash", expected: false},
		{name: "empty hash", password: "password123", hash: "", expected: false},
		{name: "truncated bcrypt hash", password: "password123", hash: "$2b$04$abc", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ComparePassword(tt.password, tt.hash))
		})
	}
}
