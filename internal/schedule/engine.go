package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Eason-TWPlus/editor-calendar/internal/model"
	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
)

// EditSave replaces every editable field of an existing task.
type EditSave struct {
	ID      model.TaskID  `json:"id"`
	Project model.Project `json:"project"`
	Editor  model.Editor  `json:"editor"`
	Episode string        `json:"episode"`
	Start   model.Date    `json:"startDate"`
	End     model.Date    `json:"endDate"`
}

// DragDrop reschedules a task from a calendar drag. NewEnd is the
// widget's exclusive end date and may be absent for zero-duration moves.
type DragDrop struct {
	ID       model.TaskID `json:"id"`
	NewStart model.Date   `json:"newStart"`
	NewEnd   *model.Date  `json:"newEnd,omitempty"`
}

// Create appends a new task row. The id is generated here, client-side.
type Create struct {
	Project model.Project `json:"project"`
	Editor  model.Editor  `json:"editor"`
	Episode string        `json:"episode"`
	Start   model.Date    `json:"startDate"`
	End     model.Date    `json:"endDate"`
}

// CellWrite records one cell write issued against the store.
type CellWrite struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Result reports what a command actually did. On a partial failure Writes
// holds the cells written before the error; the row is then in a mixed
// state until corrected by hand. There is no rollback.
type Result struct {
	Writes  []CellWrite  `json:"writes,omitempty"`
	Created model.TaskID `json:"created,omitempty"`
}

// Engine applies interactions as cell writes against the row store.
//
// Each command resolves the target row from the snapshot it is given and
// never caches indices across interactions. The engine does not re-fetch
// or mutate in-memory state after a write: the displayed calendar stays
// stale until the user reloads. That trade-off is deliberate; do not add
// auto-refresh here.
type Engine struct {
	Store rowstore.Store
}

// NewTaskID generates an 8-character task id. Uniqueness against existing
// rows is not verified; collisions are negligible at this scale.
func NewTaskID() model.TaskID {
	return model.TaskID(uuid.NewString()[:8])
}

// Apply executes one command. Writes are fire-and-forget synchronous
// calls; a failure partway through returns the writes that did land.
func (e *Engine) Apply(ctx context.Context, snap *Snapshot, cmd any) (Result, error) {
	switch c := cmd.(type) {
	case EditSave:
		return e.applyEditSave(ctx, snap, c)
	case DragDrop:
		return e.applyDragDrop(ctx, snap, c)
	case Create:
		return e.applyCreate(ctx, c)
	default:
		return Result{}, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func (e *Engine) applyEditSave(ctx context.Context, snap *Snapshot, c EditSave) (Result, error) {
	row, ok := snap.RowIndex(c.ID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrRecordNotFound, c.ID)
	}

	// All five fields are written unconditionally; unchanged values are
	// harmless no-op writes.
	var res Result
	writes := []struct {
		column string
		value  string
	}{
		{rowstore.ColProject, string(c.Project)},
		{rowstore.ColEditor, string(c.Editor)},
		{rowstore.ColEpisode, c.Episode},
		{rowstore.ColStartDate, c.Start.String()},
		{rowstore.ColEndDate, c.End.String()},
	}
	for _, w := range writes {
		if err := e.writeCell(ctx, &res, row, w.column, w.value); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (e *Engine) applyDragDrop(ctx context.Context, snap *Snapshot, c DragDrop) (Result, error) {
	row, ok := snap.RowIndex(c.ID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrRecordNotFound, c.ID)
	}

	start, end := DropDates(c.NewStart, c.NewEnd)

	var res Result
	if err := e.writeCell(ctx, &res, row, rowstore.ColStartDate, start.String()); err != nil {
		return res, err
	}
	if err := e.writeCell(ctx, &res, row, rowstore.ColEndDate, end.String()); err != nil {
		return res, err
	}
	return res, nil
}

func (e *Engine) applyCreate(ctx context.Context, c Create) (Result, error) {
	id := NewTaskID()
	values := []string{
		string(id),
		c.Start.String(),
		c.End.String(),
		c.Episode,
		string(c.Project),
		string(c.Editor),
	}
	if err := e.Store.AppendRow(ctx, values); err != nil {
		return Result{}, fmt.Errorf("append row: %w", err)
	}
	return Result{Created: id}, nil
}

func (e *Engine) writeCell(ctx context.Context, res *Result, row int, column, value string) error {
	col := rowstore.ColumnIndex(column)
	if err := e.Store.UpdateCell(ctx, row, col, value); err != nil {
		return fmt.Errorf("write %s row %d: %w", column, row, err)
	}
	res.Writes = append(res.Writes, CellWrite{Row: row, Col: col, Column: column, Value: value})
	return nil
}
