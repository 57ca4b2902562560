package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"studyshare/internal/notes"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for browsing and sharing notes
func NewServer(svc *notes.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"StudyShare",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: list_subjects - List all subjects with counts
	s.AddTool(
		mcp.NewTool("list_subjects",
			mcp.WithDescription("List every subject that has shared notes, with the number of notes per subject. Use this to understand what topics are covered."),
		),
		handleListSubjects(svc),
	)

	// Tool: search_notes - Substring search over title, subject and helper
	s.AddTool(
		mcp.NewTool("search_notes",
			mcp.WithDescription("Search shared notes. The query is matched case-insensitively as a substring of the note title, subject or helper name. An empty query returns every note."),
			mcp.WithString("query",
				mcp.Description("Search text, e.g. 'calculus' or 'Sarah'"),
			),
			mcp.WithString("subject",
				mcp.Description("Optional: only return notes with this subject"),
			),
			mcp.WithString("grade",
				mcp.Description("Optional: only return notes for this grade level"),
				mcp.Enum(gradeNames()...),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of notes to return (default: 50, max: 200)"),
			),
			mcp.WithNumber("offset",
				mcp.Description("Number of notes to skip for pagination (default: 0)"),
			),
		),
		handleSearchNotes(svc),
	)

	// Tool: get_recent_notes - Most recently shared notes
	s.AddTool(
		mcp.NewTool("get_recent_notes",
			mcp.WithDescription("Get the most recently shared notes, newest first."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of notes to return (default: 20, max: 100)"),
			),
		),
		handleGetRecentNotes(svc),
	)

	// Tool: get_note - Get a specific note by ID
	s.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a specific note by its ID, including its full description."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("The numeric note ID"),
			),
		),
		handleGetNote(svc),
	)

	// Tool: share_note - Submit a new note
	s.AddTool(
		mcp.NewTool("share_note",
			mcp.WithDescription("Share a new study note. Title, subject, helper and grade are required; the note is added to the front of the catalog."),
			mcp.WithString("title", mcp.Required(), mcp.Description("Note title, e.g. 'Chemistry Chapter 3 Notes'")),
			mcp.WithString("subject", mcp.Required(), mcp.Description("Subject, e.g. 'Chemistry'")),
			mcp.WithString("helper", mcp.Required(), mcp.Description("Name of the person sharing the notes")),
			mcp.WithString("grade", mcp.Required(), mcp.Description("Grade level"), mcp.Enum(gradeNames()...)),
			mcp.WithString("description", mcp.Description("What the notes cover (markdown)")),
		),
		handleShareNote(svc),
	)

	return s
}

// SubjectResult represents a subject with its note count
type SubjectResult struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NoteResult represents a note in tool responses
type NoteResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Helper      string `json:"helper"`
	Description string `json:"description,omitempty"`
	Grade       string `json:"grade"`
}

func handleListSubjects(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		subjects := svc.Subjects()

		results := make([]SubjectResult, len(subjects))
		for i, sub := range subjects {
			results[i] = SubjectResult{Name: sub.Name, Count: sub.Count}
		}

		return jsonResult(results), nil
	}
}

func handleSearchNotes(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := notes.SearchQuery{
			Query:   req.GetString("query", ""),
			Subject: req.GetString("subject", ""),
			Grade:   notes.Grade(req.GetString("grade", "")),
			Limit:   req.GetInt("limit", 50),
			Offset:  req.GetInt("offset", 0),
		}
		if q.Grade != "" && !q.Grade.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown grade %q: expected one of %s", q.Grade, strings.Join(gradeNames(), ", "))), nil
		}

		return jsonResult(notesToResults(svc.Search(q))), nil
	}
}

func handleGetRecentNotes(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(notesToResults(svc.Recent(req.GetInt("limit", 20)))), nil
	}
}

func handleGetNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		note, ok := svc.Lookup(int64(id))
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get note: %v", notes.ErrNoteNotFound)), nil
		}

		return jsonResult(noteToResult(note)), nil
	}
}

func handleShareNote(svc *notes.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		draft := notes.Draft{
			Title:       req.GetString("title", ""),
			Subject:     req.GetString("subject", ""),
			Helper:      req.GetString("helper", ""),
			Description: req.GetString("description", ""),
			Grade:       notes.Grade(req.GetString("grade", "")),
		}

		note, err := svc.Submit(draft)
		var verr *notes.ValidationError
		if errors.As(err, &verr) {
			return mcp.NewToolResultError(verr.Error()), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to share note: %v", err)), nil
		}

		return jsonResult(noteToResult(note)), nil
	}
}

// Helper functions

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(data))
}

func noteToResult(n notes.Note) NoteResult {
	return NoteResult{
		ID:          n.ID,
		Title:       n.Title,
		Subject:     n.Subject,
		Helper:      n.Helper,
		Description: n.Description,
		Grade:       string(n.Grade),
	}
}

func notesToResults(noteList []notes.Note) []NoteResult {
	results := make([]NoteResult, len(noteList))
	for i, n := range noteList {
		results[i] = noteToResult(n)
	}
	return results
}

func gradeNames() []string {
	names := make([]string, len(notes.Grades))
	for i, g := range notes.Grades {
		names[i] = string(g)
	}
	return names
}
