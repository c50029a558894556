// Package usecase implements recording and reading of security events.
package usecase

import (
	"context"
	"time"

	securityDomain "github.com/allisson/authgate/internal/security/domain"
)

// EventRepository is an append-only sink of security events.
type EventRepository interface {
	// Create appends event to the sink.
	Create(ctx context.Context, event *securityDomain.SecurityEvent) error

	// ListLines returns recorded events as "timestamp - message" lines in append order.
	// A limit of zero means no limit.
	ListLines(ctx context.Context, offset, limit int) ([]string, error)

	// DeleteOlderThan removes events created before olderThan and returns how many were removed.
	// With dryRun it only counts them.
	DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// SecurityEventUseCase records brute force signals and exposes the recorded log.
type SecurityEventUseCase interface {
	// Emit records a brute force event for sourceID at its current failure count.
	Emit(ctx context.Context, sourceID string, count uint64) error

	// ReadLogs returns the recorded lines. An empty result means nothing has been recorded.
	ReadLogs(ctx context.Context, offset, limit int) ([]string, error)

	// Purge removes events older than days. With dryRun it only counts them.
	Purge(ctx context.Context, days int, dryRun bool) (int64, error)
}
