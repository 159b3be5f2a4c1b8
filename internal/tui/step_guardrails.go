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

// guardrailsView drives the Guardrails step: one multi-select per
// category plus the free-text "other" field.
type guardrailsView struct {
	wiz    *wizard.Wizard
	groups []*form.MultiSelectField
	cats   []wizard.Category
	other  *form.TextField
	focus  int // 0..len(groups)-1 for groups, len(groups) for other
}

func newGuardrailsView(wiz *wizard.Wizard) *guardrailsView {
	v := &guardrailsView{wiz: wiz}

	for _, group := range wizard.GuardrailGroups {
		cat := group.Category
		field := form.NewMultiSelectFormField(group.Label, group.Options)
		field.OnToggle(func(option string, checked bool) bool {
			wiz.ToggleGuardrail(cat, option)
			return wiz.GuardrailSelected(cat, option)
		})
		v.groups = append(v.groups, field)
		v.cats = append(v.cats, cat)
	}

	v.other = form.NewTextField("Other", "Anything else the agent must respect", wiz.Guardrails().Other)

	v.groups[0].Focus()
	v.Refresh()
	return v
}

func (v *guardrailsView) Refresh() {
	for i, group := range wizard.GuardrailGroups {
		for _, option := range group.Options {
			v.groups[i].SetChecked(option, v.wiz.GuardrailSelected(v.cats[i], option))
		}
	}
}

func (v *guardrailsView) fieldCount() int { return len(v.groups) + 1 }

func (v *guardrailsView) setFocus(idx int) tea.Cmd {
	for _, g := range v.groups {
		g.Blur()
	}
	v.other.Blur()

	v.focus = (idx + v.fieldCount()) % v.fieldCount()
	if v.focus < len(v.groups) {
		return v.groups[v.focus].Focus()
	}
	return v.other.Focus()
}

func (v *guardrailsView) filtering() bool {
	return v.focus < len(v.groups) && v.groups[v.focus].IsFiltering()
}

func (v *guardrailsView) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !v.filtering() {
		switch keyMsg.String() {
		case "tab":
			return v.setFocus(v.focus + 1)
		case "shift+tab":
			return v.setFocus(v.focus - 1)
		case "ctrl+r":
			v.wiz.SelectRecommendedGuardrails()
			v.Refresh()
			return nil
		}
	}

	if v.focus < len(v.groups) {
		_, cmd := v.groups[v.focus].Update(msg)
		return cmd
	}

	_, cmd := v.other.Update(msg)
	if text, ok := v.other.Value().(string); ok {
		v.wiz.SetGuardrailOther(text)
	}
	return cmd
}

func (v *guardrailsView) View() string {
	var parts []string
	for _, g := range v.groups {
		parts = append(parts, g.View(), "")
	}
	parts = append(parts, v.other.View())

	selections := v.wiz.Guardrails()
	if other := selections.Other; other != "" {
		if got := len(strings.TrimSpace(other)); got > 0 && got < wizard.OtherMinLength {
			parts = append(parts, styles.FormErrorStyle.Render(
				fmt.Sprintf("Other needs at least %d characters to count (has %d)", wizard.OtherMinLength, got)))
		}
	}

	parts = append(parts, "", styles.FormHelpStyle.Render("space: toggle • tab: next group • ctrl+r: recommended set"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
