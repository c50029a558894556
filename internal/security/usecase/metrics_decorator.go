package usecase

import (
	"context"
	"time"

	"github.com/allisson/authgate/internal/metrics"
)

// securityEventUseCaseWithMetrics decorates SecurityEventUseCase with metrics instrumentation.
type securityEventUseCaseWithMetrics struct {
	next    SecurityEventUseCase
	metrics metrics.BusinessMetrics
}

// NewSecurityEventUseCaseWithMetrics wraps a SecurityEventUseCase with metrics recording.
func NewSecurityEventUseCaseWithMetrics(useCase SecurityEventUseCase, m metrics.BusinessMetrics) SecurityEventUseCase {
	return &securityEventUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Emit records metrics for event emission.
func (s *securityEventUseCaseWithMetrics) Emit(ctx context.Context, sourceID string, count uint64) error {
	start := time.Now()
	err := s.next.Emit(ctx, sourceID, count)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "security", "event_emit", status)
	s.metrics.RecordDuration(ctx, "security", "event_emit", time.Since(start), status)

	return err
}

// ReadLogs records metrics for log reads.
func (s *securityEventUseCaseWithMetrics) ReadLogs(ctx context.Context, offset, limit int) ([]string, error) {
	start := time.Now()
	lines, err := s.next.ReadLogs(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "security", "logs_read", status)
	s.metrics.RecordDuration(ctx, "security", "logs_read", time.Since(start), status)

	return lines, err
}

// Purge records metrics for retention purges.
func (s *securityEventUseCaseWithMetrics) Purge(ctx context.Context, days int, dryRun bool) (int64, error) {
	start := time.Now()
	count, err := s.next.Purge(ctx, days, dryRun)

	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, "security", "logs_purge", status)
	s.metrics.RecordDuration(ctx, "security", "logs_purge", time.Since(start), status)

	return count, err
}
