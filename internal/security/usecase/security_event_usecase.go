package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/allisson/authgate/internal/database"
	apperrors "github.com/allisson/authgate/internal/errors"
	securityDomain "github.com/allisson/authgate/internal/security/domain"
)

type securityEventUseCase struct {
	repo      EventRepository
	txManager database.TxManager
	now       func() time.Time
}

// Emit builds a brute force event and appends it to the sink.
func (s *securityEventUseCase) Emit(ctx context.Context, sourceID string, count uint64) error {
	event := securityDomain.NewBruteForceEvent(sourceID, count, s.now())
	return s.repo.Create(ctx, event)
}

// ReadLogs returns recorded lines from the sink.
func (s *securityEventUseCase) ReadLogs(ctx context.Context, offset, limit int) ([]string, error) {
	return s.repo.ListLines(ctx, offset, limit)
}

// Purge removes events created more than days ago, inside a transaction when the sink has one.
func (s *securityEventUseCase) Purge(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("days must not be negative, got %d", days))
	}

	olderThan := s.now().UTC().AddDate(0, 0, -days)

	if s.txManager == nil {
		return s.repo.DeleteOlderThan(ctx, olderThan, dryRun)
	}

	var count int64
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		count, err = s.repo.DeleteOlderThan(ctx, olderThan, dryRun)
		return err
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// NewSecurityEventUseCase creates a new SecurityEventUseCase backed by repo.
// txManager is nil for sinks without transactions.
func NewSecurityEventUseCase(repo EventRepository, txManager database.TxManager) SecurityEventUseCase {
	return &securityEventUseCase{
		repo:      repo,
		txManager: txManager,
		now:       time.Now,
	}
}
