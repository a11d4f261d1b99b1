package rowstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore emulates the sheet in a local SQLite file so the app can be
// developed and demoed without Google credentials. Rows are addressed by
// their position among the ordered rows, mirroring sheet row numbers.
type SQLiteStore struct {
	db *sql.DB
}

// sqlColumns maps canonical sheet columns to table columns, index-aligned
// with Columns.
var sqlColumns = []string{"id", "start_date", "end_date", "episode", "project", "editor"}

// OpenSQLite opens (creating if needed) the task table in dataDir.
func OpenSQLite(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, "tasks.db"))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS task_rows (
		pos INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		episode TEXT NOT NULL DEFAULT '',
		project TEXT NOT NULL DEFAULT '',
		editor TEXT NOT NULL DEFAULT ''
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ReadAll(ctx context.Context) ([]Row, error) {
	query := `SELECT id, start_date, end_date, episode, project, editor FROM task_rows ORDER BY pos`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		vals := make([]string, len(Columns))
		dest := make([]any, len(vals))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := Row{}
		for i, col := range Columns {
			row[col] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateCell(ctx context.Context, row, col int, value string) error {
	if col < 1 || col > len(sqlColumns) || row < FirstDataRow {
		return ErrBadAddress
	}

	// Resolve the sheet row number to the underlying pos. Positions are
	// not contiguous after deletes, so offset into the ordered rows.
	var pos int64
	offset := row - FirstDataRow
	err := s.db.QueryRowContext(ctx,
		`SELECT pos FROM task_rows ORDER BY pos LIMIT 1 OFFSET ?`, offset).Scan(&pos)
	if err == sql.ErrNoRows {
		return ErrBadAddress
	}
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE task_rows SET %s = ? WHERE pos = ?`, sqlColumns[col-1])
	_, err = s.db.ExecContext(ctx, query, value, pos)
	return err
}

func (s *SQLiteStore) AppendRow(ctx context.Context, values []string) error {
	padded := make([]string, len(Columns))
	copy(padded, values)

	query := `INSERT INTO task_rows (id, start_date, end_date, episode, project, editor) VALUES (?, ?, ?, ?, ?, ?)`
	args := make([]any, len(padded))
	for i, v := range padded {
		args[i] = v
	}
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}
