package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/authgate/internal/database"
	securityDomain "github.com/allisson/authgate/internal/security/domain"
	"github.com/allisson/authgate/internal/testutil"
)

type sqlEventRepository interface {
	Create(ctx context.Context, event *securityDomain.SecurityEvent) error
	ListLines(ctx context.Context, offset, limit int) ([]string, error)
	DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

func exerciseSQLRepository(t *testing.T, db *sql.DB, repo sqlEventRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		event := securityDomain.NewBruteForceEvent("10.0.0.9", uint64(4+i), base.AddDate(0, 0, i))
		require.NoError(t, repo.Create(ctx, event))
	}

	lines, err := repo.ListLines(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2026-03-01 10:00:00,000 - Potential Brute Force Attack from 10.0.0.9",
		"2026-03-02 10:00:00,000 - Potential Brute Force Attack from 10.0.0.9",
		"2026-03-03 10:00:00,000 - Potential Brute Force Attack from 10.0.0.9",
	}, lines)

	lines, err = repo.ListLines(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-02 10:00:00,000 - Potential Brute Force Attack from 10.0.0.9"}, lines)

	count, err := repo.DeleteOlderThan(ctx, base.AddDate(0, 0, 1), true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	err = database.NewTxManager(db).WithTx(ctx, func(ctx context.Context) error {
		count, err = repo.DeleteOlderThan(ctx, base.AddDate(0, 0, 1), false)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	lines, err = repo.ListLines(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestPostgreSQLEventRepository_Integration(t *testing.T) {
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	exerciseSQLRepository(t, db, NewPostgreSQLEventRepository(db))
}

func TestMySQLEventRepository_Integration(t *testing.T) {
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)

	exerciseSQLRepository(t, db, NewMySQLEventRepository(db))
}
