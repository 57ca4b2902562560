package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyshare/views/models"
)

var calculus = models.NoteView{
	ID:          1,
	Title:       "Calculus I - Complete Notes",
	Subject:     "Mathematics",
	Helper:      "Sarah Chen",
	Description: "Comprehensive notes",
	Grade:       "University",
	Image:       "📐",
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestGolden(t *testing.T) {
	tests := []struct {
		name      string
		component templ.Component
	}{
		{name: "note_card", component: NoteCard(calculus)},
		{name: "empty_grid", component: NoteGrid(nil, "a<b")},
		{name: "nav_share", component: Nav(models.TabShare)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(render(t, tt.component)))
		})
	}
}

func TestNoteGrid(t *testing.T) {
	out := render(t, NoteGrid([]models.NoteView{calculus, {ID: 2, Title: "Biology"}}, ""))
	assert.Contains(t, out, `hx-post="/select/1"`)
	assert.Contains(t, out, `hx-post="/select/2"`)
	assert.NotContains(t, out, "empty")

	out = render(t, NoteGrid(nil, ""))
	assert.Contains(t, out, "No notes have been shared yet.")
}

func TestNoteCard_EscapesText(t *testing.T) {
	n := calculus
	n.Title = `<script>alert("x")</script>`
	out := render(t, NoteCard(n))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestDetailOverlay(t *testing.T) {
	assert.Empty(t, render(t, DetailOverlay(nil)))

	out := render(t, DetailOverlay(&models.DetailView{Note: calculus, DescriptionHTML: "<p><strong>limits</strong></p>"}))
	assert.Contains(t, out, `hx-trigger="click target:#overlay-backdrop"`)
	assert.Contains(t, out, `hx-post="/overlay/dismiss?source=outside"`)
	assert.Contains(t, out, `hx-post="/overlay/dismiss?source=close"`)
	assert.Contains(t, out, "<p><strong>limits</strong></p>")
	assert.Contains(t, out, "Shared by Sarah Chen")
}

func TestShareForm(t *testing.T) {
	out := render(t, ShareForm(models.FormView{
		Title:  `Organic "Chem"`,
		Grade:  "University",
		Grades: []string{"High School", "University", "Middle School"},
		Errors: map[string]string{"helper": "helper is required"},
	}))

	assert.Contains(t, out, `value="Organic &#34;Chem&#34;"`)
	assert.Contains(t, out, `<option value="University" selected>University</option>`)
	assert.Contains(t, out, `<option value="High School">High School</option>`)
	assert.Contains(t, out, `<div class="field invalid"><label for="helper">`)
	assert.Contains(t, out, `<span class="error">helper is required</span>`)
	assert.Contains(t, out, "Please fix the highlighted fields.")
	assert.NotContains(t, render(t, ShareForm(models.FormView{})), "form-error")
}
