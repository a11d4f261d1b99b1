// Package schedule is the reconciliation core: it loads the sheet into an
// immutable snapshot, projects task records to calendar events, and turns
// user interactions back into the minimal set of cell writes.
package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/Eason-TWPlus/editor-calendar/internal/model"
	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
)

// InvalidRecord is a row excluded from the calendar because one of its
// dates failed to parse. The row stays in the sheet; the user is warned.
type InvalidRecord struct {
	ID       string `json:"id"`
	RawStart string `json:"startDate"`
	RawEnd   string `json:"endDate"`
}

// Snapshot is one immutable read of the sheet. A fresh snapshot is loaded
// per interaction cycle; row indices are never carried across cycles,
// since rows can shift between loads.
type Snapshot struct {
	Tasks   []model.Task
	Invalid []InvalidRecord

	rowByID map[model.TaskID]int
}

// LoadSnapshot reads every row and normalizes it into task records.
// Missing required columns abort the whole load with ErrSchemaMissing.
// Rows with unparseable dates are reported in Invalid but still occupy
// their sheet row, so they stay addressable for writes.
func LoadSnapshot(ctx context.Context, store rowstore.Store) (*Snapshot, error) {
	rows, err := store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	snap := &Snapshot{rowByID: map[model.TaskID]int{}}
	if len(rows) == 0 {
		return snap, nil
	}

	var missing []string
	for _, col := range rowstore.Columns {
		if _, ok := rows[0][col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMissing, strings.Join(missing, ", "))
	}

	for i, row := range rows {
		sheetRow := i + rowstore.FirstDataRow

		id := model.TaskID(strings.TrimSpace(row[rowstore.ColID]))
		if id != "" {
			// First occurrence wins on duplicate ids.
			if _, seen := snap.rowByID[id]; !seen {
				snap.rowByID[id] = sheetRow
			}
		}

		start, startErr := model.ParseDate(strings.TrimSpace(row[rowstore.ColStartDate]))
		end, endErr := model.ParseDate(strings.TrimSpace(row[rowstore.ColEndDate]))
		if startErr != nil || endErr != nil {
			snap.Invalid = append(snap.Invalid, InvalidRecord{
				ID:       string(id),
				RawStart: row[rowstore.ColStartDate],
				RawEnd:   row[rowstore.ColEndDate],
			})
			continue
		}

		snap.Tasks = append(snap.Tasks, model.Task{
			ID:      id,
			Project: model.Project(row[rowstore.ColProject]),
			Episode: row[rowstore.ColEpisode],
			Editor:  model.Editor(row[rowstore.ColEditor]),
			Start:   start,
			End:     end,
		})
	}

	return snap, nil
}

// RowIndex resolves a task id to its current 1-based sheet row (header
// included). It covers every row with an id, including date-invalid ones.
func (s *Snapshot) RowIndex(id model.TaskID) (int, bool) {
	row, ok := s.rowByID[id]
	return row, ok
}

// Task returns the parsed record for id, if it produced one.
func (s *Snapshot) Task(id model.TaskID) (model.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
