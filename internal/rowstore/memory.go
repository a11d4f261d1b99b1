package rowstore

import (
	"context"
	"sync"
)

// MemStore is an in-process Store. It backs the demo mode and the tests.
type MemStore struct {
	mu   sync.RWMutex
	rows [][]string
}

// NewMemStore builds a store pre-seeded with rows in canonical column
// order. Short rows are padded to the full column count.
func NewMemStore(rows ...[]string) *MemStore {
	s := &MemStore{}
	for _, r := range rows {
		s.rows = append(s.rows, padRow(r))
	}
	return s
}

func padRow(r []string) []string {
	out := make([]string, len(Columns))
	copy(out, r)
	return out
}

func (s *MemStore) ReadAll(_ context.Context) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Row, 0, len(s.rows))
	for _, r := range s.rows {
		row := Row{}
		for i, col := range Columns {
			row[col] = r[i]
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *MemStore) UpdateCell(_ context.Context, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := row - FirstDataRow
	if i < 0 || i >= len(s.rows) || col < 1 || col > len(Columns) {
		return ErrBadAddress
	}
	s.rows[i][col-1] = value
	return nil
}

func (s *MemStore) AppendRow(_ context.Context, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, padRow(values))
	return nil
}
