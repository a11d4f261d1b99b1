package schedule

import "errors"

var (
	// ErrSchemaMissing means the sheet is missing one or more required
	// columns. Fatal for the whole session; nothing is displayed.
	ErrSchemaMissing = errors.New("sheet is missing required columns")

	// ErrRecordNotFound means an interaction referenced an id with no
	// matching row. The write is skipped entirely.
	ErrRecordNotFound = errors.New("task not found")

	// ErrUnknownCommand means the engine received a command type it does
	// not handle.
	ErrUnknownCommand = errors.New("unknown command")
)
