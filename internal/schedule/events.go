package schedule

import (
	"fmt"

	"github.com/Eason-TWPlus/editor-calendar/internal/model"
)

// Event is the calendar-widget-facing projection of a task. Start is
// inclusive and End is exclusive: the widget treats the end date as the
// first day not included, while the sheet stores an inclusive end. The
// one-day shift must be applied consistently in both directions.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

const defaultColor = "#DBD7D7"

var editorColors = map[model.Editor]string{
	model.EditorDolphine: "#91D4C2",
	model.EditorEason:    "#FED880",
	model.EditorJames:    "#85B8CB",
	model.EditorUnknown:  defaultColor,
}

// ColorFor returns the palette color for an editor; unrecognized values
// get the Unknown color.
func ColorFor(e model.Editor) string {
	if c, ok := editorColors[e.Canonical()]; ok {
		return c
	}
	return defaultColor
}

// LegendEntry is a palette swatch for the page legend.
type LegendEntry struct {
	Editor model.Editor
	Color  string
}

// Legend lists the editor palette in form order.
func Legend() []LegendEntry {
	out := make([]LegendEntry, 0, len(model.Editors()))
	for _, e := range model.Editors() {
		out = append(out, LegendEntry{Editor: e, Color: ColorFor(e)})
	}
	return out
}

// EventFromTask projects a task record to its display event.
func EventFromTask(t model.Task) Event {
	return Event{
		ID:    string(t.ID),
		Title: fmt.Sprintf("%s (Ep. %s) - %s", t.Project, t.Episode, t.Editor),
		Start: t.Start.String(),
		End:   t.End.AddDays(1).String(),
		Color: ColorFor(t.Editor),
	}
}

// Events projects every valid task in the snapshot.
func (s *Snapshot) Events() []Event {
	out := make([]Event, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		out = append(out, EventFromTask(t))
	}
	return out
}

// DropDates recovers the domain date range from a drag-drop payload.
// newEnd is the widget's exclusive end; a nil newEnd means a zero-duration
// move, where the widget omits the end entirely.
func DropDates(newStart model.Date, newEnd *model.Date) (start, end model.Date) {
	e := newStart
	if newEnd != nil {
		e = *newEnd
	}
	return newStart, e.AddDays(-1)
}
