package rowstore

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsStore is the production backend: one worksheet of a Google
// spreadsheet, accessed with service-account credentials.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

// SheetsOptions configures the Google Sheets backend.
type SheetsOptions struct {
	SpreadsheetID   string
	Worksheet       string
	CredentialsFile string
}

// OpenSheets builds the Sheets client. It does not probe the spreadsheet;
// callers verify reachability with ReadAll before serving.
func OpenSheets(ctx context.Context, opts SheetsOptions) (*SheetsStore, error) {
	if opts.SpreadsheetID == "" {
		return nil, fmt.Errorf("rowstore: spreadsheet id is required")
	}
	if opts.Worksheet == "" {
		return nil, fmt.Errorf("rowstore: worksheet name is required")
	}

	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("rowstore: build sheets client: %w", err)
	}

	return &SheetsStore{
		svc:           svc,
		spreadsheetID: opts.SpreadsheetID,
		worksheet:     opts.Worksheet,
	}, nil
}

func (s *SheetsStore) ReadAll(ctx context.Context) ([]Row, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetRange()).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("rowstore: read %q: %w", s.worksheet, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, 0, len(resp.Values[0]))
	for _, v := range resp.Values[0] {
		header = append(header, cellString(v))
	}

	var out []Row
	for _, raw := range resp.Values[1:] {
		row := Row{}
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(raw) {
				row[name] = cellString(raw[i])
			} else {
				row[name] = ""
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *SheetsStore) UpdateCell(ctx context.Context, row, col int, value string) error {
	if row < 1 || col < 1 {
		return ErrBadAddress
	}
	a1 := fmt.Sprintf("'%s'!%s%d", s.worksheet, columnLetter(col), row)
	vr := &sheets.ValueRange{Values: [][]any{{value}}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, a1, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("rowstore: update %s: %w", a1, err)
	}
	return nil
}

func (s *SheetsStore) AppendRow(ctx context.Context, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]any{cells}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetRange(), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("rowstore: append to %q: %w", s.worksheet, err)
	}
	return nil
}

func (s *SheetsStore) sheetRange() string {
	return fmt.Sprintf("'%s'", s.worksheet)
}

func cellString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// columnLetter converts a 1-based column index to its A1 letter ("A",
// "B", ... "AA").
func columnLetter(col int) string {
	out := ""
	for col > 0 {
		col--
		out = string(rune('A'+col%26)) + out
		col /= 26
	}
	return out
}
