package repository

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/allisson/authgate/internal/database"
	apperrors "github.com/allisson/authgate/internal/errors"
	securityDomain "github.com/allisson/authgate/internal/security/domain"
)

// MySQLEventRepository implements SecurityEvent persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLEventRepository struct {
	db *sql.DB
}

// Create inserts a new SecurityEvent using BINARY(16) for the id.
func (m *MySQLEventRepository) Create(ctx context.Context, event *securityDomain.SecurityEvent) error {
	querier := database.GetTx(ctx, m.db)

	id, err := event.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal security event id")
	}

	query := `INSERT INTO security_events (id, source_id, message, attempt_count, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		event.SourceID,
		event.Message,
		int64(event.Count),
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create security event")
	}

	return nil
}

// ListLines returns events as log lines, oldest first. A limit of zero means no limit.
func (m *MySQLEventRepository) ListLines(ctx context.Context, offset, limit int) ([]string, error) {
	querier := database.GetTx(ctx, m.db)

	// MySQL has no unbounded LIMIT with OFFSET.
	var limitArg int64 = math.MaxInt64
	if limit > 0 {
		limitArg = int64(limit)
	}

	query := `SELECT id, source_id, message, attempt_count, created_at
			  FROM security_events
			  ORDER BY created_at ASC, id ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limitArg, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list security events")
	}
	defer func() {
		_ = rows.Close()
	}()

	lines := make([]string, 0)
	for rows.Next() {
		var event securityDomain.SecurityEvent
		var idBinary []byte

		if err := rows.Scan(&idBinary, &event.SourceID, &event.Message, &event.Count, &event.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan security event")
		}

		if err := event.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal security event id")
		}

		lines = append(lines, sanitizeLine(event.Line()))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate security events")
	}

	return lines, nil
}

// DeleteOlderThan removes events created before olderThan. With dryRun it only counts them.
func (m *MySQLEventRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		var count int64
		query := `SELECT COUNT(*) FROM security_events WHERE created_at < ?`
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count security events")
		}
		return count, nil
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM security_events WHERE created_at < ?`, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete security events")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}

	return count, nil
}

// NewMySQLEventRepository creates a new MySQL SecurityEvent repository.
func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{db: db}
}
