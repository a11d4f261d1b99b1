// Package rowstore abstracts the shared sheet that acts as the system of
// record. Rows are tasks, columns are fields. A store exposes exactly the
// three operations the app needs: read everything, write one cell, append
// one row.
//
// Row and column indices are 1-based, sheet style. Row 1 is the header, so
// the first data row is index 2. Writes address cells at the canonical
// column positions listed in Columns; the schema check in the schedule
// package guarantees those columns exist before any write is attempted.
//
// The sheet is shared external mutable state with no locking discipline:
// concurrent edits by two users are last-write-wins per cell, not per row.
// Known limitation, acceptable for a single small team.
package rowstore

import (
	"context"
	"errors"
)

// Canonical column order of the task sheet.
const (
	ColID        = "ID"
	ColStartDate = "StartDate"
	ColEndDate   = "EndDate"
	ColEpisode   = "Episode"
	ColProject   = "Project"
	ColEditor    = "Editor"
)

// Columns lists the sheet columns in canonical order.
var Columns = []string{ColID, ColStartDate, ColEndDate, ColEpisode, ColProject, ColEditor}

// HeaderRows is the fixed header offset: data row n is sheet row n+HeaderRows.
const HeaderRows = 1

// FirstDataRow is the 1-based sheet row of the first data row.
const FirstDataRow = HeaderRows + 1

// ErrBadAddress reports a write outside the sheet's addressable range.
var ErrBadAddress = errors.New("rowstore: cell address out of range")

// ColumnIndex returns the 1-based canonical index of a column name, or 0
// if the name is not a task column.
func ColumnIndex(name string) int {
	for i, c := range Columns {
		if c == name {
			return i + 1
		}
	}
	return 0
}

// Row is one data row keyed by column name. Values are raw cell strings;
// nothing is parsed at this layer.
type Row map[string]string

// Store is the row store contract. Calls are synchronous; there are no
// transactions, batching, or retries. A multi-cell operation that fails
// partway leaves the row in a mixed state.
type Store interface {
	// ReadAll returns every data row in sheet order.
	ReadAll(ctx context.Context) ([]Row, error)

	// UpdateCell overwrites a single cell. row includes the header offset
	// (first data row = 2); col is the canonical 1-based column index.
	UpdateCell(ctx context.Context, row, col int, value string) error

	// AppendRow appends one row; values must be in canonical column order.
	AppendRow(ctx context.Context, values []string) error
}
