package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paisa/internal/core"
)

func draft(desc string) core.Transaction {
	return core.Transaction{
		Type:        core.Expense,
		Amount:      core.Money{Cents: 10_000},
		Category:    "Food",
		Description: desc,
		Date:        core.NewDate(2024, 1, 15),
	}
}

func TestMemoryAddPrependsNewest(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.Add(ctx, draft("first"))
	require.NoError(t, err)
	second, err := m.Add(ctx, draft("second"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	txs, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "second", txs[0].Description)
	assert.Equal(t, "first", txs[1].Description)
	assert.Equal(t, second, txs[0].ID)
}

func TestMemoryAddIgnoresDraftID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	d := draft("with id")
	d.ID = "client-chosen"
	id, err := m.Add(ctx, d)
	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", id)
}

func TestMemoryRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.Add(ctx, draft("to remove"))
	require.NoError(t, err)

	require.NoError(t, m.Remove(ctx, id))
	txs, err := m.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	// Absent ids are a no-op.
	require.NoError(t, m.Remove(ctx, "missing"))
}

func TestMemoryReplace(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	id, err := m.Add(ctx, draft("before"))
	require.NoError(t, err)

	updated := draft("after")
	updated.Amount = core.Money{Cents: 20_000}
	require.NoError(t, m.Replace(ctx, id, updated))

	txs, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, id, txs[0].ID, "replace keeps the id")
	assert.Equal(t, "after", txs[0].Description)
	assert.Equal(t, int64(20_000), txs[0].Amount.Cents)

	// Absent ids are a no-op, nothing is created.
	require.NoError(t, m.Replace(ctx, "missing", draft("ghost")))
	txs, err = m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestMemoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Add(ctx, draft("original"))
	require.NoError(t, err)

	txs, err := m.List(ctx)
	require.NoError(t, err)
	txs[0].Description = "mutated"

	again, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Description)
}

func TestNewMemorySeeded(t *testing.T) {
	m := NewMemorySeeded()

	txs, err := m.List(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 6)
	for _, tx := range txs {
		assert.NoError(t, tx.Validate())
		assert.NotEmpty(t, tx.ID)
	}
}

func TestNewIDMonotonic(t *testing.T) {
	prev := NewID()
	for i := 0; i < 100; i++ {
		next := NewID()
		assert.Greater(t, next, prev)
		prev = next
	}
}
