package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
	"github.com/Eason-TWPlus/editor-calendar/internal/schedule"
)

func seedStore() *rowstore.MemStore {
	return rowstore.NewMemStore(
		[]string{"abc123", "2024-03-01", "2024-03-03", "5", "Correspondents", "Eason"},
		[]string{"bad1", "soon", "2024-03-06", "2", "Other", "James"},
	)
}

func getEvents(t *testing.T, h *APIHandler) (int, EventsResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	h.Events(rec, req)

	var resp EventsResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode events response: %v", err)
		}
	}
	return rec.Code, resp
}

func postCmd(t *testing.T, h *APIHandler, cmd string, args any) (int, CommandResponse) {
	t.Helper()
	rawArgs, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	body, err := json.Marshal(CommandRequest{Cmd: cmd, Args: rawArgs})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/cmd", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Command(rec, req)

	var resp CommandResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode command response: %v", err)
	}
	return rec.Code, resp
}

func TestEvents_ReturnsEventsAndWarnings(t *testing.T) {
	h := NewAPIHandler(seedStore())

	code, resp := getEvents(t, h)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(resp.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(resp.Events))
	}
	ev := resp.Events[0]
	if ev.Title != "Correspondents (Ep. 5) - Eason" {
		t.Fatalf("unexpected title %q", ev.Title)
	}
	if ev.Start != "2024-03-01" || ev.End != "2024-03-04" {
		t.Fatalf("unexpected range %s..%s", ev.Start, ev.End)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].ID != "bad1" {
		t.Fatalf("expected warning for bad1, got %+v", resp.Warnings)
	}
}

func TestEvents_SchemaMissingIsFatal(t *testing.T) {
	h := NewAPIHandler(brokenSchemaStore{})

	code, resp := getEvents(t, h)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if len(resp.Events) != 0 {
		t.Fatalf("expected no events on schema error")
	}
}

func TestCommand_EditSave(t *testing.T) {
	store := seedStore()
	h := NewAPIHandler(store)

	code, resp := postCmd(t, h, "task.edit_save", map[string]any{
		"id":        "abc123",
		"project":   "Other",
		"editor":    "James",
		"episode":   "6",
		"startDate": "2024-03-02",
		"endDate":   "2024-03-05",
	})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, resp.Error)
	}
	if !resp.OK || resp.Result == nil || len(resp.Result.Writes) != 5 {
		t.Fatalf("expected 5 writes, got %+v", resp.Result)
	}
	if resp.Note == "" {
		t.Fatalf("expected a reload note")
	}

	snap, err := schedule.LoadSnapshot(context.Background(), store)
	if err != nil {
		t.Fatalf("reload snapshot: %v", err)
	}
	got, ok := snap.Task("abc123")
	if !ok || string(got.Project) != "Other" || got.End.String() != "2024-03-05" {
		t.Fatalf("edit not applied: %+v", got)
	}
}

func TestCommand_DragDrop(t *testing.T) {
	store := seedStore()
	h := NewAPIHandler(store)

	code, resp := postCmd(t, h, "task.drag_drop", map[string]any{
		"id":       "abc123",
		"newStart": "2024-03-10",
		"newEnd":   "2024-03-12",
	})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, resp.Error)
	}

	snap, err := schedule.LoadSnapshot(context.Background(), store)
	if err != nil {
		t.Fatalf("reload snapshot: %v", err)
	}
	got, _ := snap.Task("abc123")
	if got.Start.String() != "2024-03-10" || got.End.String() != "2024-03-11" {
		t.Fatalf("unexpected dates %s..%s", got.Start, got.End)
	}
}

func TestCommand_RecordNotFound(t *testing.T) {
	store := seedStore()
	h := NewAPIHandler(store)

	before, _ := store.ReadAll(context.Background())

	code, resp := postCmd(t, h, "task.edit_save", map[string]any{
		"id":        "missing",
		"project":   "Other",
		"editor":    "James",
		"episode":   "6",
		"startDate": "2024-03-02",
		"endDate":   "2024-03-05",
	})
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if resp.OK || resp.Result != nil {
		t.Fatalf("expected no writes, got %+v", resp.Result)
	}

	after, _ := store.ReadAll(context.Background())
	if len(before) != len(after) {
		t.Fatalf("store changed on not-found")
	}
}

func TestCommand_Create(t *testing.T) {
	store := seedStore()
	h := NewAPIHandler(store)

	code, resp := postCmd(t, h, "task.create", map[string]any{
		"project":   "Zoom In Zoom Out",
		"editor":    "Dolphine",
		"episode":   "1",
		"startDate": "2024-07-01",
		"endDate":   "2024-07-01",
	})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, resp.Error)
	}
	if resp.Result == nil || len(resp.Result.Created) != 8 {
		t.Fatalf("expected an 8-char id, got %+v", resp.Result)
	}

	rows, _ := store.ReadAll(context.Background())
	if len(rows) != 3 {
		t.Fatalf("expected appended row, got %d rows", len(rows))
	}
}

func TestCommand_UnknownCmd(t *testing.T) {
	h := NewAPIHandler(seedStore())

	code, resp := postCmd(t, h, "task.nuke", map[string]any{})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if resp.OK {
		t.Fatalf("expected failure response")
	}
}

func TestCommand_MissingFields(t *testing.T) {
	h := NewAPIHandler(seedStore())

	code, _ := postCmd(t, h, "task.edit_save", map[string]any{"id": "abc123"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing dates, got %d", code)
	}

	code, _ = postCmd(t, h, "task.drag_drop", map[string]any{"newStart": "2024-03-10"})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", code)
	}
}

func TestCommand_MethodNotAllowed(t *testing.T) {
	h := NewAPIHandler(seedStore())

	req := httptest.NewRequest(http.MethodGet, "/api/cmd", nil)
	rec := httptest.NewRecorder()
	h.Command(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

// brokenSchemaStore serves rows missing required columns.
type brokenSchemaStore struct{}

func (brokenSchemaStore) ReadAll(context.Context) ([]rowstore.Row, error) {
	return []rowstore.Row{{"ID": "a1"}}, nil
}

func (brokenSchemaStore) UpdateCell(context.Context, int, int, string) error { return nil }

func (brokenSchemaStore) AppendRow(context.Context, []string) error { return nil }
