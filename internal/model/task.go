// Package model holds the task record types shared across the app.
//
// A task is one row in the shared sheet. The sheet is the system of
// record; nothing here is persisted in-process.
package model

import "slices"

type TaskID string

// Project is the show a task belongs to. The set is closed; values read
// from the sheet are preserved verbatim even when unrecognized.
type Project string

const (
	ProjectCorrespondents Project = "Correspondents"
	ProjectDCInsiders     Project = "DC Insiders"
	ProjectFindingFormosa Project = "Finding Formosa"
	ProjectICYMI          Project = "In Case You Missed It"
	ProjectZIZO           Project = "Zoom In Zoom Out"
	ProjectOther          Project = "Other"
)

// Projects lists the selectable projects in form order.
func Projects() []Project {
	return []Project{
		ProjectCorrespondents,
		ProjectDCInsiders,
		ProjectFindingFormosa,
		ProjectICYMI,
		ProjectZIZO,
		ProjectOther,
	}
}

func (p Project) Known() bool {
	return slices.Contains(Projects(), p)
}

// Editor is the person assigned to the task.
type Editor string

const (
	EditorDolphine Editor = "Dolphine"
	EditorEason    Editor = "Eason"
	EditorJames    Editor = "James"
	EditorUnknown  Editor = "Unknown"
)

// Editors lists the selectable editors in form order.
func Editors() []Editor {
	return []Editor{EditorDolphine, EditorEason, EditorJames, EditorUnknown}
}

func (e Editor) Known() bool {
	return slices.Contains(Editors(), e)
}

// Canonical maps unrecognized editor values to EditorUnknown for color and
// grouping purposes. The stored value is never rewritten.
func (e Editor) Canonical() Editor {
	if e.Known() {
		return e
	}
	return EditorUnknown
}

// Task is one row of the sheet with its dates parsed.
// Start and End are an inclusive range; Start <= End is expected from the
// forms but not enforced here.
type Task struct {
	ID      TaskID  `json:"id"`
	Project Project `json:"project"`
	Episode string  `json:"episode"`
	Editor  Editor  `json:"editor"`
	Start   Date    `json:"startDate"`
	End     Date    `json:"endDate"`
}
