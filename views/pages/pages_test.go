package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyshare/views/models"
)

func TestBrowsePage(t *testing.T) {
	var buf bytes.Buffer
	notes := []models.NoteView{{ID: 4, Title: "Physics - Mechanics Notes", Helper: "David Lee"}}
	require.NoError(t, BrowsePage("phys", notes, nil).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "<title>Browse Notes · StudyShare</title>")
	assert.Contains(t, out, `<a href="/" class="tab active">`)
	assert.Contains(t, out, `value="phys"`)
	assert.Contains(t, out, `hx-post="/select/4"`)
	assert.Contains(t, out, `<div id="overlay"></div>`)
}

func TestBrowsePage_WithSelection(t *testing.T) {
	var buf bytes.Buffer
	detail := &models.DetailView{Note: models.NoteView{ID: 2, Title: "Biology"}}
	require.NoError(t, BrowsePage("", nil, detail).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), `<div id="overlay"><div id="overlay-backdrop"`)
}

func TestSharePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SharePage(models.FormView{}).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `<a href="/share" class="tab active">`)
	assert.Contains(t, out, `<form class="share-form" method="post" action="/share">`)
}

func TestLayout_WrapsChildren(t *testing.T) {
	var buf bytes.Buffer
	body := templ.Raw(`<p id="body">hi</p>`)
	ctx := templ.WithChildren(context.Background(), body)
	require.NoError(t, Layout("A<B", models.TabBrowse).Render(ctx, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>A&lt;B · StudyShare</title>")
	assert.Contains(t, out, `<main><p id="body">hi</p></main>`)
}

func TestBrowsePage_EscapesQuery(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BrowsePage(`"><script>`, nil, nil).Render(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, `value="&#34;&gt;&lt;script&gt;"`)
	assert.NotContains(t, out, "<script>")
}
