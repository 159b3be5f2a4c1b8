package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rekanban/rekanban/internal/core/styles"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/tui/components/form"
)

const (
	constraintZonePresets = iota
	constraintZoneInput
	constraintZoneCustom
	constraintZoneCount
)

// constraintsView drives the Constraints step: preset toggles backed by
// the wizard store plus a free-text input for custom constraints.
type constraintsView struct {
	wiz     *wizard.Wizard
	presets *form.MultiSelectField
	input   *form.TextField
	zone    int
	cursor  int // cursor within the custom constraint list
}

func newConstraintsView(wiz *wizard.Wizard) *constraintsView {
	v := &constraintsView{
		wiz:     wiz,
		presets: form.NewMultiSelectFormField("Common constraints", wizard.PresetConstraints),
		input:   form.NewTextField("Custom constraint", "e.g. Ship by Sunday 5pm", ""),
	}

	v.presets.OnToggle(func(option string, checked bool) bool {
		if checked {
			_, added := wiz.AddConstraint(option)
			return added || v.hasConstraint(option)
		}
		v.removeConstraint(option)
		return false
	})

	v.presets.Focus()
	v.Refresh()
	return v
}

func (v *constraintsView) hasConstraint(text string) bool {
	want := strings.ToLower(strings.TrimSpace(text))
	for _, c := range v.wiz.Constraints() {
		if strings.ToLower(strings.TrimSpace(c.Text)) == want {
			return true
		}
	}
	return false
}

func (v *constraintsView) removeConstraint(text string) {
	want := strings.ToLower(strings.TrimSpace(text))
	for _, c := range v.wiz.Constraints() {
		if strings.ToLower(strings.TrimSpace(c.Text)) == want {
			v.wiz.RemoveConstraint(c.ID)
			return
		}
	}
}

func (v *constraintsView) isPreset(text string) bool {
	want := strings.ToLower(strings.TrimSpace(text))
	for _, p := range wizard.PresetConstraints {
		if strings.ToLower(p) == want {
			return true
		}
	}
	return false
}

// customConstraints returns stored constraints that are not presets.
func (v *constraintsView) customConstraints() []wizard.Constraint {
	var out []wizard.Constraint
	for _, c := range v.wiz.Constraints() {
		if !v.isPreset(c.Text) {
			out = append(out, c)
		}
	}
	return out
}

func (v *constraintsView) Refresh() {
	for _, p := range wizard.PresetConstraints {
		v.presets.SetChecked(p, v.hasConstraint(p))
	}
	if n := len(v.customConstraints()); v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
}

func (v *constraintsView) setZone(zone int) tea.Cmd {
	v.presets.Blur()
	v.input.Blur()
	v.zone = zone

	switch zone {
	case constraintZonePresets:
		return v.presets.Focus()
	case constraintZoneInput:
		return v.input.Focus()
	}
	return nil
}

func (v *constraintsView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && !v.presets.IsFiltering() {
		switch keyMsg.String() {
		case "tab":
			next := (v.zone + 1) % constraintZoneCount
			if next == constraintZoneCustom && len(v.customConstraints()) == 0 {
				next = constraintZonePresets
			}
			return v.setZone(next)
		case "shift+tab":
			prev := (v.zone + constraintZoneCount - 1) % constraintZoneCount
			if prev == constraintZoneCustom && len(v.customConstraints()) == 0 {
				prev = constraintZoneInput
			}
			return v.setZone(prev)
		}
	}

	switch v.zone {
	case constraintZonePresets:
		_, cmd := v.presets.Update(msg)
		return cmd

	case constraintZoneInput:
		if isKey && keyMsg.String() == "enter" {
			text, _ := v.input.Value().(string)
			if strings.TrimSpace(text) != "" {
				v.wiz.AddConstraint(text)
				v.input.SetValue("")
				v.Refresh()
			}
			return nil
		}
		_, cmd := v.input.Update(msg)
		return cmd

	case constraintZoneCustom:
		if !isKey {
			return nil
		}
		customs := v.customConstraints()
		switch keyMsg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(customs)-1 {
				v.cursor++
			}
		case "d":
			if v.cursor < len(customs) {
				v.wiz.RemoveConstraint(customs[v.cursor].ID)
				v.Refresh()
				if len(v.customConstraints()) == 0 {
					return v.setZone(constraintZoneInput)
				}
			}
		}
	}
	return nil
}

func (v *constraintsView) View() string {
	parts := []string{
		v.presets.View(),
		"",
		v.input.View(),
	}

	if customs := v.customConstraints(); len(customs) > 0 {
		title := styles.TextMutedStyle
		if v.zone == constraintZoneCustom {
			title = styles.FormTitleStyle
		}
		parts = append(parts, "", title.Render("Custom"))
		for i, c := range customs {
			cursor := "  "
			style := styles.TextForegroundStyle
			if v.zone == constraintZoneCustom && i == v.cursor {
				cursor = "> "
				style = styles.SelectFieldItemSelectedStyle
			}
			parts = append(parts, cursor+style.Render(c.Text))
		}
	}

	parts = append(parts, "", styles.FormHelpStyle.Render("space: toggle preset • enter: add custom • tab: switch section • d: delete"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
