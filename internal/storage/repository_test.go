package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paisa/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func draft(desc string) core.Transaction {
	return core.Transaction{
		Type:        core.Expense,
		Amount:      core.Money{Cents: 25_000},
		Category:    "Food",
		Description: desc,
		Date:        core.NewDate(2024, 1, 15),
	}
}

func TestAddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.Add(ctx, draft("lunch"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	tx, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, tx.ID)
	assert.Equal(t, core.Expense, tx.Type)
	assert.Equal(t, int64(25_000), tx.Amount.Cents)
	assert.Equal(t, "Food", tx.Category)
	assert.Equal(t, "lunch", tx.Description)
	assert.Equal(t, "2024-01-15", tx.Date.String())
}

func TestGetUnknownID(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first, err := repo.Add(ctx, draft("first"))
	require.NoError(t, err)
	second, err := repo.Add(ctx, draft("second"))
	require.NoError(t, err)

	txs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, second, txs[0].ID)
	assert.Equal(t, first, txs[1].ID)
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.Add(ctx, draft("to remove"))
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, id))
	require.NoError(t, repo.Remove(ctx, id))

	txs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestReplaceResetsSyncStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.Add(ctx, draft("before"))
	require.NoError(t, err)
	require.NoError(t, repo.MarkSynced(ctx, id))

	pending, err := repo.PendingSync(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	updated := draft("after")
	updated.Amount = core.Money{Cents: 50_000}
	require.NoError(t, repo.Replace(ctx, id, updated))

	tx, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "after", tx.Description)
	assert.Equal(t, int64(50_000), tx.Amount.Cents)

	pending, err = repo.PendingSync(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, pending, "replace must queue the row for re-export")
}

func TestPendingSyncLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id1, err := repo.Add(ctx, draft("one"))
	require.NoError(t, err)
	id2, err := repo.Add(ctx, draft("two"))
	require.NoError(t, err)

	pending, err := repo.PendingSync(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{id1, id2}, pending, "oldest first")

	require.NoError(t, repo.MarkSynced(ctx, id1))
	require.NoError(t, repo.MarkSyncError(ctx, id2))

	pending, err = repo.PendingSync(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestPendingSyncRespectsLimit(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.Add(ctx, draft("tx"))
		require.NoError(t, err)
	}

	pending, err := repo.PendingSync(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
