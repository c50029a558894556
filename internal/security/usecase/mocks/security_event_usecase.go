// Package mocks provides mock implementations of the security use cases for testing.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	securityDomain "github.com/allisson/authgate/internal/security/domain"
)

// MockSecurityEventUseCase is a mock implementation of SecurityEventUseCase.
type MockSecurityEventUseCase struct {
	mock.Mock
}

// Emit mocks the Emit method of SecurityEventUseCase.
func (m *MockSecurityEventUseCase) Emit(ctx context.Context, sourceID string, count uint64) error {
	args := m.Called(ctx, sourceID, count)
	return args.Error(0)
}

// ReadLogs mocks the ReadLogs method of SecurityEventUseCase.
func (m *MockSecurityEventUseCase) ReadLogs(ctx context.Context, offset, limit int) ([]string, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Purge mocks the Purge method of SecurityEventUseCase.
func (m *MockSecurityEventUseCase) Purge(ctx context.Context, days int, dryRun bool) (int64, error) {
	args := m.Called(ctx, days, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

// Create mocks the Create method of EventRepository.
func (m *MockEventRepository) Create(ctx context.Context, event *securityDomain.SecurityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// ListLines mocks the ListLines method of EventRepository.
func (m *MockEventRepository) ListLines(ctx context.Context, offset, limit int) ([]string, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// DeleteOlderThan mocks the DeleteOlderThan method of EventRepository.
func (m *MockEventRepository) DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error) {
	args := m.Called(ctx, olderThan, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
