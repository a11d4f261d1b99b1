// Package web wires the HTTP surface: the calendar page, embedded static
// assets, the events/command API, and health probes.
package web

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/Eason-TWPlus/editor-calendar/internal/config"
	"github.com/Eason-TWPlus/editor-calendar/internal/httpmw"
	"github.com/Eason-TWPlus/editor-calendar/internal/rowstore"
	"github.com/Eason-TWPlus/editor-calendar/internal/schedule"
	staticfiles "github.com/Eason-TWPlus/editor-calendar/static"
	"github.com/Eason-TWPlus/editor-calendar/ui/page"
)

type Options struct {
	Config        *config.Config
	Store         rowstore.Store
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "editorcal",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := NewAPIHandler(opts.Store)
	mux.HandleFunc("/api/events", api.Events)
	mux.HandleFunc("/api/cmd", api.Command)

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := opts.Store.ReadAll(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "row store unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "editorcal",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("/{$}", templ.Handler(page.CalendarPage(page.CalendarData{
		Title:  opts.Config.UI.Title,
		Legend: schedule.Legend(),
	})))

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("EDITORCAL_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
