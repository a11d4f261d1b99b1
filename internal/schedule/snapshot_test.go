package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eason-TWPlus/editor-calendar/internal/model"
	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
)

func TestLoadSnapshot(t *testing.T) {
	store := rowstore.NewMemStore(
		[]string{"a1", "2024-03-01", "2024-03-03", "5", "Correspondents", "Eason"},
		[]string{"b2", "2024-03-02", "2024-03-04", "12", "DC Insiders", "James"},
	)

	snap, err := LoadSnapshot(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 2)
	assert.Empty(t, snap.Invalid)

	got, ok := snap.Task("a1")
	require.True(t, ok)
	assert.Equal(t, model.ProjectCorrespondents, got.Project)
	assert.Equal(t, model.EditorEason, got.Editor)
	assert.Equal(t, "2024-03-01", got.Start.String())

	row, ok := snap.RowIndex("b2")
	require.True(t, ok)
	assert.Equal(t, 3, row) // header is row 1
}

func TestLoadSnapshot_InvalidDatesExcludedButReported(t *testing.T) {
	store := rowstore.NewMemStore(
		[]string{"ok1", "2024-03-01", "2024-03-03", "1", "Other", "Eason"},
		[]string{"bad1", "March 5", "2024-03-06", "2", "Other", "James"},
		[]string{"ok2", "2024-03-07", "2024-03-08", "3", "Other", "Dolphine"},
	)

	snap, err := LoadSnapshot(context.Background(), store)
	require.NoError(t, err)

	require.Len(t, snap.Tasks, 2)
	for _, task := range snap.Tasks {
		assert.NotEqual(t, model.TaskID("bad1"), task.ID)
	}

	require.Len(t, snap.Invalid, 1)
	assert.Equal(t, "bad1", snap.Invalid[0].ID)
	assert.Equal(t, "March 5", snap.Invalid[0].RawStart)

	// Invalid rows still occupy their sheet row: rows below them must
	// resolve to the right index.
	row, ok := snap.RowIndex("ok2")
	require.True(t, ok)
	assert.Equal(t, 4, row)

	// And the invalid row itself stays addressable.
	row, ok = snap.RowIndex("bad1")
	require.True(t, ok)
	assert.Equal(t, 3, row)
}

func TestLoadSnapshot_SchemaMissingAborts(t *testing.T) {
	store := partialSchemaStore{}

	snap, err := LoadSnapshot(context.Background(), store)
	require.ErrorIs(t, err, ErrSchemaMissing)
	assert.Contains(t, err.Error(), "EndDate")
	assert.Nil(t, snap)
}

func TestLoadSnapshot_EmptyStore(t *testing.T) {
	snap, err := LoadSnapshot(context.Background(), rowstore.NewMemStore())
	require.NoError(t, err)
	assert.Empty(t, snap.Tasks)
	assert.Empty(t, snap.Invalid)
}

// partialSchemaStore serves rows that are missing required columns.
type partialSchemaStore struct{}

func (partialSchemaStore) ReadAll(context.Context) ([]rowstore.Row, error) {
	return []rowstore.Row{{"ID": "a1", "StartDate": "2024-03-01"}}, nil
}

func (partialSchemaStore) UpdateCell(context.Context, int, int, string) error {
	return nil
}

func (partialSchemaStore) AppendRow(context.Context, []string) error {
	return nil
}
