package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rekanban/rekanban/internal/core/styles"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/tui/components/form"
)

// contextView drives the Context step: a single textarea synced into the
// wizard on every keystroke.
type contextView struct {
	wiz   *wizard.Wizard
	input *form.TextAreaField
}

func newContextView(wiz *wizard.Wizard) *contextView {
	v := &contextView{
		wiz: wiz,
		input: form.NewTextAreaField(
			"Project context",
			"Who is it for, what exists already, what does the demo look like?",
			wiz.Context(),
		),
	}
	v.input.Focus()
	return v
}

func (v *contextView) Refresh() {
	if current, _ := v.input.Value().(string); current != v.wiz.Context() {
		v.input.SetValue(v.wiz.Context())
	}
}

func (v *contextView) Update(msg tea.Msg) tea.Cmd {
	_, cmd := v.input.Update(msg)
	if text, ok := v.input.Value().(string); ok {
		v.wiz.SetContext(text)
	}
	return cmd
}

func (v *contextView) View() string {
	got := wizard.TrimmedContextLen(v.wiz.Context())

	counter := styles.TextMutedStyle.Render(
		fmt.Sprintf("%d characters (minimum %d)", got, wizard.ContextMinLength))
	if got >= wizard.ContextMinLength {
		counter = styles.TextSuccessStyle.Render(
			fmt.Sprintf("%d characters", got))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.input.View(),
		"",
		counter,
	)
}
