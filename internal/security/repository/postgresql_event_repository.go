package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/authgate/internal/database"
	apperrors "github.com/allisson/authgate/internal/errors"
	securityDomain "github.com/allisson/authgate/internal/security/domain"
)

// PostgreSQLEventRepository implements SecurityEvent persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLEventRepository struct {
	db *sql.DB
}

// Create inserts a new SecurityEvent.
func (p *PostgreSQLEventRepository) Create(ctx context.Context, event *securityDomain.SecurityEvent) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO security_events (id, source_id, message, attempt_count, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		event.ID,
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
func (p *PostgreSQLEventRepository) ListLines(ctx context.Context, offset, limit int) ([]string, error) {
	querier := database.GetTx(ctx, p.db)

	// LIMIT NULL is unbounded in PostgreSQL.
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	query := `SELECT id, source_id, message, attempt_count, created_at
			  FROM security_events
			  ORDER BY created_at ASC, id ASC
			  LIMIT $1 OFFSET $2`

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
		var count int64

		if err := rows.Scan(&event.ID, &event.SourceID, &event.Message, &count, &event.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan security event")
		}
		event.Count = uint64(count)

		lines = append(lines, sanitizeLine(event.Line()))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate security events")
	}

	return lines, nil
}

// DeleteOlderThan removes events created before olderThan. With dryRun it only counts them.
func (p *PostgreSQLEventRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		var count int64
		query := `SELECT COUNT(*) FROM security_events WHERE created_at < $1`
		if err := querier.QueryRowContext(ctx, query, olderThan).Scan(&count); err != nil {
			return 0, apperrors.Wrap(err, "failed to count security events")
		}
		return count, nil
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM security_events WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete security events")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows count")
	}

	return count, nil
}

// NewPostgreSQLEventRepository creates a new PostgreSQL SecurityEvent repository.
func NewPostgreSQLEventRepository(db *sql.DB) *PostgreSQLEventRepository {
	return &PostgreSQLEventRepository{db: db}
}
