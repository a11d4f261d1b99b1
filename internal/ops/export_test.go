package ops

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
)

func TestExportCSV(t *testing.T) {
	store := rowstore.NewMemStore(
		[]string{"a1", "2024-03-01", "2024-03-03", "5", "Correspondents", "Eason"},
		[]string{"b2", "2024-04-01", "2024-04-02", "7", "Other", "James"},
	)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(context.Background(), store, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, rowstore.Columns, records[0])
	assert.Equal(t, []string{"a1", "2024-03-01", "2024-03-03", "5", "Correspondents", "Eason"}, records[1])
	assert.Equal(t, "b2", records[2][0])
}

func TestExportCSV_EmptyStore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(context.Background(), rowstore.NewMemStore(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
