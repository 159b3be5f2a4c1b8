package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rekanban/rekanban/internal/core/styles"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/tui/components/form"
)

type goalsMode int

const (
	goalsBrowsing goalsMode = iota
	goalsEditing
)

// goalsView drives the Goals step: a browsable list of collected goals
// plus an inline form for adding or editing one.
type goalsView struct {
	wiz       *wizard.Wizard
	mode      goalsMode
	cursor    int
	editingID string // empty while adding
	fields    []form.Field
	focus     int
	formErr   string
}

func newGoalsView(wiz *wizard.Wizard) *goalsView {
	return &goalsView{wiz: wiz}
}

func (v *goalsView) Refresh() {
	goals := v.wiz.Goals()
	if v.cursor >= len(goals) {
		v.cursor = max(len(goals)-1, 0)
	}
}

func (v *goalsView) openForm(g wizard.Goal) tea.Cmd {
	v.mode = goalsEditing
	v.editingID = g.ID
	v.focus = 0
	v.formErr = ""
	v.fields = []form.Field{
		form.NewTextField("Title", "What do you want to achieve?", g.Title),
		form.NewTextField("Success criteria", "How do you know it worked?", g.SuccessCriteria),
		form.NewTextField("Notes (optional)", "Anything else worth capturing", g.Notes),
	}
	return v.fields[0].Focus()
}

func (v *goalsView) submitForm() {
	title, _ := v.fields[0].Value().(string)
	success, _ := v.fields[1].Value().(string)
	notes, _ := v.fields[2].Value().(string)

	if v.editingID == "" {
		// An untouched form is a cancel, not an add attempt.
		if strings.TrimSpace(title) == "" && strings.TrimSpace(success) == "" {
			v.closeForm()
			return
		}

		g := wizard.Goal{Title: title, SuccessCriteria: success, Notes: notes}
		if !g.Valid() {
			v.formErr = "A goal needs both a title and success criteria."
			return
		}
		v.wiz.AddGoal(g)
	} else {
		v.wiz.UpdateGoal(v.editingID, func(g wizard.Goal) wizard.Goal {
			g.Title = title
			g.SuccessCriteria = success
			g.Notes = notes
			return g
		})
	}
	v.closeForm()
}

func (v *goalsView) closeForm() {
	v.mode = goalsBrowsing
	v.fields = nil
	v.editingID = ""
	v.formErr = ""
	v.Refresh()
}

func (v *goalsView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if v.mode == goalsEditing {
		return v.updateForm(keyMsg)
	}
	return v.updateBrowse(keyMsg)
}

func (v *goalsView) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	goals := v.wiz.Goals()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(goals)-1 {
			v.cursor++
		}
	case "a":
		return v.openForm(wizard.Goal{})
	case "enter", "e":
		if v.cursor < len(goals) {
			return v.openForm(goals[v.cursor])
		}
	case "d":
		if v.cursor < len(goals) {
			v.wiz.RemoveGoal(goals[v.cursor].ID)
			v.Refresh()
		}
	}
	return nil
}

func (v *goalsView) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.closeForm()
		return nil
	case "tab", "down":
		return v.moveFocus(1)
	case "shift+tab", "up":
		return v.moveFocus(-1)
	case "enter":
		if v.focus == len(v.fields)-1 {
			v.submitForm()
			return nil
		}
		return v.moveFocus(1)
	case "ctrl+s":
		v.submitForm()
		return nil
	}

	// Typing clears the refusal message; the next save re-checks.
	v.formErr = ""

	var cmd tea.Cmd
	v.fields[v.focus], cmd = v.fields[v.focus].Update(msg)
	return cmd
}

func (v *goalsView) moveFocus(delta int) tea.Cmd {
	v.fields[v.focus].Blur()
	v.focus = (v.focus + delta + len(v.fields)) % len(v.fields)
	return v.fields[v.focus].Focus()
}

func (v *goalsView) View() string {
	if v.mode == goalsEditing {
		parts := make([]string, 0, len(v.fields)+2)
		for _, f := range v.fields {
			parts = append(parts, f.View())
		}
		if v.formErr != "" {
			parts = append(parts, styles.FormErrorStyle.Render(v.formErr))
		}
		parts = append(parts, styles.FormHelpStyle.Render("enter: next/save • ctrl+s: save • esc: cancel"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	goals := v.wiz.Goals()
	if len(goals) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.TextMutedStyle.Render("No goals yet. Every project needs at least one"),
			styles.TextMutedStyle.Render("goal with a title and success criteria."),
			"",
			styles.FormHelpStyle.Render("a: add goal"),
		)
	}

	var b strings.Builder
	for i, g := range goals {
		cursor := "  "
		style := styles.TextForegroundStyle
		if i == v.cursor {
			cursor = "> "
			style = styles.SelectFieldItemSelectedStyle
		}

		line := g.Title
		if g.SuccessCriteria != "" {
			line = fmt.Sprintf("%s — %s", g.Title, g.SuccessCriteria)
		}
		if !g.Valid() {
			line += styles.TextErrorStyle.Render("  (needs title and success criteria)")
		}
		b.WriteString(cursor + style.Render(line) + "\n")
	}
	b.WriteString("\n" + styles.FormHelpStyle.Render("a: add • enter: edit • d: delete"))
	return b.String()
}
