package models

// NoteView represents a note for template rendering
type NoteView struct {
	ID          int64
	Title       string
	Subject     string
	Helper      string
	Description string
	Grade       string
	Image       string
}

// DetailView is the note shown in the detail overlay, with its
// description already rendered to HTML
type DetailView struct {
	Note            NoteView
	DescriptionHTML string
}

// FormView is the share form with the values entered so far and the
// per-field error messages of the last failed submission
type FormView struct {
	Title       string
	Subject     string
	Helper      string
	Description string
	Grade       string
	Grades      []string
	Errors      map[string]string
}

// Tab identifies the active navigation entry
type Tab string

const (
	TabBrowse Tab = "browse"
	TabShare  Tab = "share"
)
