package tui

import (
	"fmt"
	"strings"

	"studyshare/internal/notes"
	"studyshare/internal/session"
)

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("StudyShare"))
	s.WriteString(helpStyle.Render("  Share Knowledge, Help Each Other"))
	s.WriteString("\n\n")

	browse, share := activeTab, tabStyle
	if m.ctrl.State() == session.Authoring {
		browse, share = tabStyle, activeTab
	}
	s.WriteString(browse.Render("Browse Notes"))
	s.WriteString(share.Render("Share Your Notes"))
	s.WriteString("\n\n")

	if note, ok := m.ctrl.Selection(); ok {
		s.WriteString(m.overlayView(note))
	} else if m.ctrl.State() == session.Authoring {
		s.WriteString(m.formView())
	} else {
		s.WriteString(m.browseView())
	}

	if m.lastError != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(m.lastError))
	} else if m.status != "" {
		s.WriteString("\n")
		s.WriteString(successStyle.Render(m.status))
	}
	return s.String()
}

func (m Model) browseView() string {
	var s strings.Builder
	s.WriteString(m.search.View())
	s.WriteString("\n\n")

	if len(m.results) == 0 {
		if q := m.search.Value(); q != "" {
			s.WriteString(helpStyle.Render(fmt.Sprintf("No notes found matching %q.", q)))
		} else {
			s.WriteString(helpStyle.Render("No notes have been shared yet."))
		}
		s.WriteString("\n")
	}
	for i, n := range m.results {
		prefix := "  "
		line := fmt.Sprintf("%s %s", n.Image, n.Title)
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		s.WriteString(prefix)
		s.WriteString(line)
		s.WriteString("  ")
		s.WriteString(tagStyle.Render(fmt.Sprintf("[%s · %s]", n.Subject, n.Grade)))
		s.WriteString(helpStyle.Render(" by " + n.Helper))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: move  enter: open  tab: share notes  esc: clear/quit"))
	return s.String()
}

func (m Model) formView() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Share Your Study Notes"))
	s.WriteString("\n\n")

	for i, label := range fieldLabels {
		marker := "  "
		if i == m.focus {
			marker = cursorStyle.Render("> ")
		}
		s.WriteString(marker)
		s.WriteString(label)
		s.WriteString("\n  ")
		if i == fieldGrade {
			s.WriteString(m.gradeView())
		} else {
			s.WriteString(m.inputs[i].View())
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("tab/↓: next  shift+tab/↑: previous  ←/→: grade  ctrl+s: share  esc: browse"))
	return s.String()
}

func (m Model) gradeView() string {
	parts := make([]string, len(notes.Grades))
	for i, g := range notes.Grades {
		if i == m.grade {
			parts[i] = cursorStyle.Render("(•) " + string(g))
		} else {
			parts[i] = "( ) " + string(g)
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) overlayView(n notes.Note) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(n.Image + " " + n.Title))
	s.WriteString("\n")
	s.WriteString(tagStyle.Render(fmt.Sprintf("%s · %s", n.Subject, n.Grade)))
	s.WriteString("\n\n")
	if n.Description != "" {
		s.WriteString(renderMarkdown(n.Description, m.width))
		s.WriteString("\n\n")
	}
	s.WriteString("Shared by " + n.Helper)
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("esc/x: close"))
	style := overlayStyle
	if m.width > 8 {
		style = style.Width(m.width - 4)
	}
	return style.Render(s.String())
}
