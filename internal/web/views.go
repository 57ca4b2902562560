package web

import (
	"studyshare/internal/notes"
	"studyshare/views/models"
)

// --- View model converters ---

func noteToView(n notes.Note) models.NoteView {
	return models.NoteView{
		ID:          n.ID,
		Title:       n.Title,
		Subject:     n.Subject,
		Helper:      n.Helper,
		Description: n.Description,
		Grade:       string(n.Grade),
		Image:       n.Image,
	}
}

func notesToViews(list []notes.Note) []models.NoteView {
	views := make([]models.NoteView, len(list))
	for i, n := range list {
		views[i] = noteToView(n)
	}
	return views
}

func formView(d notes.Draft, errs *notes.ValidationError) models.FormView {
	grades := make([]string, len(notes.Grades))
	for i, g := range notes.Grades {
		grades[i] = string(g)
	}

	f := models.FormView{
		Title:       d.Title,
		Subject:     d.Subject,
		Helper:      d.Helper,
		Description: d.Description,
		Grade:       string(d.Grade),
		Grades:      grades,
	}
	if errs != nil {
		f.Errors = errs.Messages
	}
	return f
}
