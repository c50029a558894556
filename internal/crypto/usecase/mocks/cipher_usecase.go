// Package mocks provides mock implementations of the crypto use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCipherUseCase is a mock implementation of CipherUseCase.
type MockCipherUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of CipherUseCase.
func (m *MockCipherUseCase) Encrypt(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of CipherUseCase.
func (m *MockCipherUseCase) Decrypt(ctx context.Context, encryptedText string) (string, error) {
	args := m.Called(ctx, encryptedText)
	return args.String(0), args.Error(1)
}
