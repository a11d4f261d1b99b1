package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
	"github.com/Eason-TWPlus/editor-calendar/internal/schedule"
)

// APIHandler serves the events feed and the command endpoint. Every
// request loads a fresh snapshot of the sheet; nothing is cached across
// interactions.
type APIHandler struct {
	store  rowstore.Store
	engine *schedule.Engine
}

func NewAPIHandler(store rowstore.Store) *APIHandler {
	return &APIHandler{
		store:  store,
		engine: &schedule.Engine{Store: store},
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// EventsResponse is the payload for GET /api/events. Warnings list the
// rows excluded from the calendar because their dates did not parse.
type EventsResponse struct {
	Events   []schedule.Event         `json:"events"`
	Warnings []schedule.InvalidRecord `json:"warnings,omitempty"`
}

// GET /api/events
func (h *APIHandler) Events(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap, err := schedule.LoadSnapshot(r.Context(), h.store)
	if err != nil {
		if errors.Is(err, schedule.ErrSchemaMissing) {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeErr(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, EventsResponse{
		Events:   snap.Events(),
		Warnings: snap.Invalid,
	})
}

// CommandRequest is the body for POST /api/cmd.
type CommandRequest struct {
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args"`
}

// CommandResponse reports a command outcome. Note carries the reload hint:
// the server never refreshes state after a write, the user does.
type CommandResponse struct {
	OK     bool             `json:"ok"`
	Result *schedule.Result `json:"result,omitempty"`
	Note   string           `json:"note,omitempty"`
	Error  string           `json:"error,omitempty"`
}

const reloadNote = "saved; reload the page to see the updated calendar"

// POST /api/cmd
func (h *APIHandler) Command(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	cmd, err := h.buildCommand(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, CommandResponse{OK: false, Error: err.Error()})
		return
	}

	// Row indices can shift between loads, so the target row is resolved
	// from a snapshot taken just before the write, every time.
	snap, err := schedule.LoadSnapshot(r.Context(), h.store)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, schedule.ErrSchemaMissing) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, CommandResponse{OK: false, Error: err.Error()})
		return
	}

	res, err := h.engine.Apply(r.Context(), snap, cmd)
	if err != nil {
		status := http.StatusBadGateway
		msg := err.Error()
		switch {
		case errors.Is(err, schedule.ErrRecordNotFound):
			status = http.StatusNotFound
		case errors.Is(err, schedule.ErrUnknownCommand):
			status = http.StatusBadRequest
		default:
			if len(res.Writes) > 0 {
				msg += "; the row may be partially updated, check the sheet"
			}
		}
		writeJSON(w, status, CommandResponse{OK: false, Result: resultOrNil(res), Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, CommandResponse{OK: true, Result: resultOrNil(res), Note: reloadNote})
}

func (h *APIHandler) buildCommand(req CommandRequest) (any, error) {
	switch req.Cmd {
	case "task.edit_save":
		var c schedule.EditSave
		if err := json.Unmarshal(req.Args, &c); err != nil {
			return nil, err
		}
		if c.ID == "" {
			return nil, errors.New("id is required")
		}
		if c.Start.IsZero() || c.End.IsZero() {
			return nil, errors.New("startDate and endDate are required")
		}
		return c, nil

	case "task.drag_drop":
		var c schedule.DragDrop
		if err := json.Unmarshal(req.Args, &c); err != nil {
			return nil, err
		}
		if c.ID == "" {
			return nil, errors.New("id is required")
		}
		if c.NewStart.IsZero() {
			return nil, errors.New("newStart is required")
		}
		return c, nil

	case "task.create":
		var c schedule.Create
		if err := json.Unmarshal(req.Args, &c); err != nil {
			return nil, err
		}
		if c.Start.IsZero() || c.End.IsZero() {
			return nil, errors.New("startDate and endDate are required")
		}
		return c, nil

	default:
		return nil, errors.New("unknown command: " + req.Cmd)
	}
}

func resultOrNil(res schedule.Result) *schedule.Result {
	if len(res.Writes) == 0 && res.Created == "" {
		return nil
	}
	return &res
}
