// Package page holds the templ components for the server-rendered pages.
// The components are written directly against the templ runtime API.
package page

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/Eason-TWPlus/editor-calendar/internal/model"
	"github.com/Eason-TWPlus/editor-calendar/internal/schedule"
)

// CalendarData parameterizes the calendar page.
type CalendarData struct {
	Title  string
	Legend []schedule.LegendEntry
}

// CalendarPage renders the scheduling board: month calendar, editor color
// legend, and the side panel with the edit and add-task forms. All data
// loading happens client-side through /api/events and /api/cmd.
func CalendarPage(data CalendarData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := html.EscapeString(data.Title)

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="zh-Hant">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s</title>
<link rel="stylesheet" href="/static/css/app.css"/>
<script src="https://cdn.jsdelivr.net/npm/fullcalendar@6.1.15/index.global.min.js"></script>
<script src="/static/js/app.js" defer></script>
</head>
<body>
<main>
<h1>%s</h1>
`, title, title); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div class="legend">`); err != nil {
			return err
		}
		for _, entry := range data.Legend {
			if _, err := fmt.Fprintf(w,
				`<span class="legend-item"><span class="swatch" style="background-color:%s"></span>%s</span>`,
				html.EscapeString(entry.Color), html.EscapeString(string(entry.Editor))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>
<div class="layout">
<div id="calendar"></div>
<aside class="panel">
<div id="messages"></div>
<section id="edit-panel" hidden>
<h2>✏️ 編輯任務</h2>
<form id="edit-form">
<input type="hidden" name="id"/>
<label>節目名稱`); err != nil {
			return err
		}
		if err := writeSelect(w, "project", projectOptions()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</label>
<label>剪輯師`); err != nil {
			return err
		}
		if err := writeSelect(w, "editor", editorOptions()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</label>
<label>集數<input type="text" name="episode"/></label>
<label>開始日期<input type="date" name="startDate" required/></label>
<label>結束日期<input type="date" name="endDate" required/></label>
<button type="submit">💾 儲存變更</button>
</form>
</section>
<section id="add-panel">
<h2>🆕 新增任務</h2>
<form id="add-form">
<label>節目名稱`); err != nil {
			return err
		}
		if err := writeSelect(w, "project", projectOptions()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</label>
<label>剪輯師`); err != nil {
			return err
		}
		if err := writeSelect(w, "editor", editorOptions()); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</label>
<label>集數<input type="text" name="episode" value="1"/></label>
<label>開始日期<input type="date" name="startDate" required/></label>
<label>結束日期<input type="date" name="endDate" required/></label>
<button type="submit">➕ 新增</button>
</form>
</section>
</aside>
</div>
</main>
</body>
</html>
`)
		return err
	})
}

func writeSelect(w io.Writer, name string, options []string) error {
	if _, err := fmt.Fprintf(w, `<select name="%s">`, name); err != nil {
		return err
	}
	for _, opt := range options {
		if _, err := fmt.Fprintf(w, `<option>%s</option>`, html.EscapeString(opt)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>`)
	return err
}

func projectOptions() []string {
	out := make([]string, 0, len(model.Projects()))
	for _, p := range model.Projects() {
		out = append(out, string(p))
	}
	return out
}

func editorOptions() []string {
	out := make([]string, 0, len(model.Editors()))
	for _, e := range model.Editors() {
		out = append(out, string(e))
	}
	return out
}
