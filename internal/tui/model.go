package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"studyshare/internal/notes"
	"studyshare/internal/session"
)

// form field order; the grade selector follows the text inputs
const (
	fieldHelper = iota
	fieldTitle
	fieldSubject
	fieldDescription
	fieldGrade
)

var fieldLabels = []string{"Your Name", "Note Title", "Subject", "Description", "Grade Level"}

type Model struct {
	svc  *notes.Service
	ctrl *session.Controller

	search  textinput.Model
	results []notes.Note
	cursor  int

	inputs []textinput.Model
	grade  int // index into notes.Grades, -1 when unset
	focus  int

	status    string
	lastError string

	width int
}

func New(svc *notes.Service) Model {
	si := textinput.New()
	si.Placeholder = "Search by subject, title, or helper name..."
	si.CharLimit = 80
	si.Width = 50
	si.Focus()

	placeholders := []string{"Enter your name", "e.g., Chemistry Chapter 3 Notes", "e.g., Chemistry, Mathematics", "Describe what your notes cover..."}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 200
		ti.Width = 50
		inputs[i] = ti
	}

	m := Model{
		svc:    svc,
		ctrl:   session.NewController(svc),
		search: si,
		inputs: inputs,
		grade:  -1,
	}
	m.refresh()
	return m
}

// Controller exposes the session state driving the model
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if _, ok := m.ctrl.Selection(); ok {
			return m.updateOverlay(msg)
		}
		switch m.ctrl.State() {
		case session.Authoring:
			return m.updateAuthoring(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}
	return m, nil
}

// updateOverlay routes keys while the detail overlay is open. Only the
// close keys dismiss it; every other key counts as interaction inside.
func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "x":
		m.ctrl.Dismiss(session.SourceCloseButton)
	default:
		m.ctrl.Dismiss(session.SourceInside)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if err := m.ctrl.Fire(session.ShareNotes); err != nil {
			m.setError(err)
			return m, nil
		}
		m.status, m.lastError = "", ""
		m.search.Blur()
		return m, m.focusField(fieldHelper)
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.results) > 0 {
			m.ctrl.Select(m.results[m.cursor])
		}
		return m, nil
	case "esc":
		if m.search.Value() == "" {
			return m, tea.Quit
		}
		m.search.SetValue("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateAuthoring(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.SetDraft(m.draft())
		if err := m.ctrl.Fire(session.BrowseNotes); err != nil {
			m.setError(err)
			return m, nil
		}
		m.blurFields()
		return m, m.search.Focus()
	case "tab", "down":
		return m, m.focusField((m.focus + 1) % len(fieldLabels))
	case "shift+tab", "up":
		return m, m.focusField((m.focus + len(fieldLabels) - 1) % len(fieldLabels))
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus == fieldGrade {
			return m.submit()
		}
		return m, m.focusField(m.focus + 1)
	}

	if m.focus == fieldGrade {
		switch msg.String() {
		case "left":
			m.grade = (m.grade + len(notes.Grades) - 1) % len(notes.Grades)
		case "right", " ":
			m.grade = (m.grade + 1) % len(notes.Grades)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.ctrl.SetDraft(m.draft())
	note, err := m.ctrl.Submit(m.svc)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.grade = -1
	m.blurFields()
	m.status = fmt.Sprintf("Shared %q", note.Title)
	m.lastError = ""
	m.cursor = 0
	m.refresh()
	return m, m.search.Focus()
}

func (m *Model) draft() notes.Draft {
	d := notes.Draft{
		Helper:      m.inputs[fieldHelper].Value(),
		Title:       m.inputs[fieldTitle].Value(),
		Subject:     m.inputs[fieldSubject].Value(),
		Description: m.inputs[fieldDescription].Value(),
	}
	if m.grade >= 0 {
		d.Grade = notes.Grades[m.grade]
	}
	return d
}

func (m *Model) focusField(i int) tea.Cmd {
	m.blurFields()
	m.focus = i
	if i < len(m.inputs) {
		return m.inputs[i].Focus()
	}
	return nil
}

func (m *Model) blurFields() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) refresh() {
	query := m.search.Value()
	m.ctrl.SetQuery(query)
	m.results = notes.Search(m.svc.All(), query)
	if m.cursor >= len(m.results) {
		m.cursor = max(len(m.results)-1, 0)
	}
}

func (m *Model) setError(err error) {
	var verr *notes.ValidationError
	if errors.As(err, &verr) {
		msgs := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			msgs = append(msgs, verr.Messages[f])
		}
		err = errors.New(strings.Join(msgs, "; "))
	}
	m.lastError = err.Error()
	m.status = ""
}
