// Package ops holds operational helpers that run out-of-band of the web
// server.
package ops

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
)

// ExportCSV dumps the whole row store as CSV in canonical column order,
// header included. Useful as a point-in-time backup of the sheet.
func ExportCSV(ctx context.Context, store rowstore.Store, w io.Writer) error {
	rows, err := store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rowstore.Columns); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(rowstore.Columns))
		for i, col := range rowstore.Columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSVFile writes the export to path, creating or truncating it.
func ExportCSVFile(ctx context.Context, store rowstore.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ExportCSV(ctx, store, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
