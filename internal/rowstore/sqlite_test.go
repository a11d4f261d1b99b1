package rowstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_AppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	rows, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, store.AppendRow(ctx, []string{"a1", "2024-01-01", "2024-01-02", "1", "Other", "Eason"}))
	require.NoError(t, store.AppendRow(ctx, []string{"b2", "2024-02-01", "2024-02-02", "2", "DC Insiders", "James"}))

	rows, err = store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a1", rows[0][ColID])
	assert.Equal(t, "b2", rows[1][ColID])
	assert.Equal(t, "DC Insiders", rows[1][ColProject])
}

func TestSQLiteStore_UpdateCellByPosition(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	require.NoError(t, store.AppendRow(ctx, []string{"a1", "2024-01-01", "2024-01-02", "1", "Other", "Eason"}))
	require.NoError(t, store.AppendRow(ctx, []string{"b2", "2024-02-01", "2024-02-02", "2", "Other", "James"}))

	require.NoError(t, store.UpdateCell(ctx, 3, ColumnIndex(ColStartDate), "2024-02-10"))

	rows, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", rows[0][ColStartDate])
	assert.Equal(t, "2024-02-10", rows[1][ColStartDate])
}

func TestSQLiteStore_UpdateCellOutOfRange(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	require.NoError(t, store.AppendRow(ctx, []string{"a1"}))

	assert.ErrorIs(t, store.UpdateCell(ctx, 1, 1, "x"), ErrBadAddress)
	assert.ErrorIs(t, store.UpdateCell(ctx, 9, 1, "x"), ErrBadAddress)
	assert.ErrorIs(t, store.UpdateCell(ctx, 2, 0, "x"), ErrBadAddress)
}

func TestSQLiteStore_PadsShortRows(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	require.NoError(t, store.AppendRow(ctx, []string{"a1", "2024-01-01"}))

	rows, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0][ColEditor])
}
