package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedFile = filepath.Join("testdata", "seed.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--seed", seedFile))
	err := cmd.Execute()
	return out.String(), err
}

func decode(t *testing.T, raw string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	return resp
}

func TestSearch_Text(t *testing.T) {
	out, err := execute(t, "search", "sarah")
	require.NoError(t, err)

	assert.Contains(t, out, "Calculus I - Complete Notes")
	assert.Contains(t, out, "by Sarah Chen")
	assert.NotContains(t, out, "Biology")
}

func TestSearch_JoinsArgs(t *testing.T) {
	out, err := execute(t, "search", "algebra", "basics")
	require.NoError(t, err)
	assert.Contains(t, out, "Algebra Basics")
}

func TestSearch_NoMatch(t *testing.T) {
	out, err := execute(t, "search", "quantum")
	require.NoError(t, err)
	assert.Contains(t, out, `No notes found matching "quantum".`)
}

func TestSearch_Filters(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIDs []float64
	}{
		{name: "all", args: nil, wantIDs: []float64{1, 2, 3}},
		{name: "subject", args: []string{"--subject", "mathematics"}, wantIDs: []float64{1, 2}},
		{name: "grade", args: []string{"--grade", "Middle School"}, wantIDs: []float64{2}},
		{name: "limit", args: []string{"-n", "1"}, wantIDs: []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"search", "--format", "json"}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)

			resp := decode(t, out)
			assert.Equal(t, "ok", resp.Status)
			items, ok := resp.Data.([]any)
			require.True(t, ok)
			var ids []float64
			for _, item := range items {
				ids = append(ids, item.(map[string]any)["id"].(float64))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearch_UnknownGrade(t *testing.T) {
	out, err := execute(t, "search", "--grade", "Kindergarten", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decode(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidArg, resp.Error.Code)
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "🧬 Biology Chapter 1-5 Summary")
	assert.Contains(t, out, "Biology · High School")
	assert.Contains(t, out, "Shared by John Smith")
}

func TestShow_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantCode string
		wantExit int
	}{
		{name: "not found", id: "99", wantCode: ErrCodeNotFound, wantExit: ExitFailure},
		{name: "not a number", id: "abc", wantCode: ErrCodeInvalidArg, wantExit: ExitCommandError},
		{name: "zero", id: "0", wantCode: ErrCodeInvalidArg, wantExit: ExitCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "show", tt.id, "--format", "json")
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, GetExitCode(err))

			resp := decode(t, out)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestSubjects(t *testing.T) {
	out, err := execute(t, "subjects", "--format", "json")
	require.NoError(t, err)

	resp := decode(t, out)
	items, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "Mathematics", first["name"])
	assert.Equal(t, float64(2), first["count"])
	assert.Equal(t, float64(2), first["newestId"])
}

func TestMissingSeedFile(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"subjects", "--seed", filepath.Join("testdata", "missing.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out.String(), "Error [E003]")
}

func TestInteractiveCommands_ReportErrorsOnce(t *testing.T) {
	for _, name := range []string{"tui", "mcp"} {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := NewRootCommand()
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs([]string{name, "--seed", filepath.Join("testdata", "missing.yaml")})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Empty(t, stdout.String())
			assert.Equal(t, 1, strings.Count(stderr.String(), "Error [E003]"))
			assert.NotContains(t, stderr.String(), "Error: ")
		})
	}
}

func TestSubcommandsSilenceErrors(t *testing.T) {
	for _, sub := range NewRootCommand().Commands() {
		assert.True(t, sub.SilenceErrors, sub.Name())
	}
}
