package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown formats a note description for the terminal, falling
// back to the raw text when rendering fails
func renderMarkdown(md string, width int) string {
	if width < 40 {
		width = 40
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-8),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
