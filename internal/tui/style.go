package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tabStyle     = lipgloss.NewStyle().Padding(0, 2).Faint(true)
	activeTab    = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true).Foreground(lipgloss.Color("12"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
)
