// Package form provides reusable form field components for the wizard TUI.
package form

import tea "github.com/charmbracelet/bubbletea"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/textarea/select, []string for multi-select
	Label() string // Display label for the field
}
