// Package mocks provides mock implementations of the auth gateway dependencies for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

// MockCredentialStore is a mock implementation of service.CredentialStore.
type MockCredentialStore struct {
	mock.Mock
}

// Verify mocks the Verify method.
func (m *MockCredentialStore) Verify(username, password string) bool {
	args := m.Called(username, password)
	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// Issue mocks the Issue method.
func (m *MockTokenService) Issue(username string) (*authDomain.IssuedToken, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.IssuedToken), args.Error(1)
}

// Verify mocks the Verify method.
func (m *MockTokenService) Verify(token string) (*authDomain.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}

// MockAttemptTracker is a mock implementation of AttemptTracker.
type MockAttemptTracker struct {
	mock.Mock
}

// RecordFailure mocks the RecordFailure method.
func (m *MockAttemptTracker) RecordFailure(sourceID string) uint64 {
	args := m.Called(sourceID)
	return args.Get(0).(uint64)
}

// ShouldAlert mocks the ShouldAlert method.
func (m *MockAttemptTracker) ShouldAlert(count uint64) bool {
	args := m.Called(count)
	return args.Bool(0)
}

// MockSecurityEventEmitter is a mock implementation of SecurityEventEmitter.
type MockSecurityEventEmitter struct {
	mock.Mock
}

// Emit mocks the Emit method.
func (m *MockSecurityEventEmitter) Emit(ctx context.Context, sourceID string, count uint64) error {
	args := m.Called(ctx, sourceID, count)
	return args.Error(0)
}

// MockCredentialRepository is a mock implementation of CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

// List mocks the List method.
func (m *MockCredentialRepository) List(ctx context.Context) ([]*authDomain.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.Credential), args.Error(1)
}

// MockGatewayUseCase is a mock implementation of GatewayUseCase.
type MockGatewayUseCase struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method.
func (m *MockGatewayUseCase) Authenticate(
	ctx context.Context,
	input *authDomain.AuthenticateInput,
) (*authDomain.AuthenticateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthenticateOutput), args.Error(1)
}

// VerifySession mocks the VerifySession method.
func (m *MockGatewayUseCase) VerifySession(ctx context.Context, token string) (*authDomain.VerifySessionOutput, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.VerifySessionOutput), args.Error(1)
}
