package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyshare/internal/notes"
)

func newService(t *testing.T) *notes.Service {
	t.Helper()
	svc, err := notes.Open("")
	require.NoError(t, err)
	return svc
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	result, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestNewServer(t *testing.T) {
	s := NewServer(newService(t))
	require.NotNil(t, s)
}

func TestSearchNotes(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		args    map[string]any
		wantIDs []int64
		wantErr bool
	}{
		{name: "helper", args: map[string]any{"query": "sarah"}, wantIDs: []int64{1}},
		{name: "title", args: map[string]any{"query": "NOTES"}, wantIDs: []int64{1, 4}},
		{name: "no query", args: map[string]any{}, wantIDs: []int64{1, 2, 3, 4}},
		{name: "grade", args: map[string]any{"grade": "High School"}, wantIDs: []int64{2, 3}},
		{name: "limit", args: map[string]any{"limit": float64(1)}, wantIDs: []int64{1}},
		{name: "bad grade", args: map[string]any{"grade": "Preschool"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, handleSearchNotes(svc), tt.args)
			if tt.wantErr {
				assert.True(t, result.IsError)
				return
			}
			require.False(t, result.IsError)

			var got []NoteResult
			require.NoError(t, json.Unmarshal([]byte(text(t, result)), &got))
			gotIDs := make([]int64, len(got))
			for i, n := range got {
				gotIDs[i] = n.ID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestGetNote(t *testing.T) {
	svc := newService(t)

	result := call(t, handleGetNote(svc), map[string]any{"id": float64(3)})
	require.False(t, result.IsError)
	var got NoteResult
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &got))
	assert.Equal(t, "English Literature Essay Guide", got.Title)

	assert.True(t, call(t, handleGetNote(svc), map[string]any{"id": float64(99)}).IsError)
	assert.True(t, call(t, handleGetNote(svc), map[string]any{}).IsError)
}

func TestShareNote(t *testing.T) {
	svc := newService(t)

	result := call(t, handleShareNote(svc), map[string]any{
		"title":   "Organic Chemistry",
		"subject": "Chemistry",
		"helper":  "Alex",
		"grade":   "University",
	})
	require.False(t, result.IsError)
	var got NoteResult
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &got))
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, got.ID, svc.All()[0].ID)

	result = call(t, handleShareNote(svc), map[string]any{
		"title":   "Organic Chemistry",
		"subject": "Chemistry",
		"grade":   "University",
	})
	assert.True(t, result.IsError)
	assert.Contains(t, text(t, result), "helper is required")
	assert.Equal(t, 5, svc.Count(""))
}

func TestListSubjectsAndRecent(t *testing.T) {
	svc := newService(t)

	var subjects []SubjectResult
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, handleListSubjects(svc), nil))), &subjects))
	assert.Len(t, subjects, 4)
	assert.Equal(t, SubjectResult{Name: "Mathematics", Count: 1}, subjects[0])

	var recent []NoteResult
	require.NoError(t, json.Unmarshal([]byte(text(t, call(t, handleGetRecentNotes(svc), map[string]any{"limit": float64(2)}))), &recent))
	assert.Len(t, recent, 2)
}
