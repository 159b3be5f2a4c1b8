package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rekanban/rekanban/internal/core/styles"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/relay"
)

const sidebarWidth = 20

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGenerating:
		return m.overlay(m.spinner.View() + " Generating issues…")

	case stateSucceeded:
		result, _ := m.app.Generation.Result()
		parts := []string{
			styles.BannerSuccessStyle.Render("Issues created"),
			"",
		}
		if detail := resultDetail(result); detail != "" {
			parts = append(parts, styles.TextMutedStyle.Render(detail))
		}
		parts = append(parts,
			styles.TextForegroundStyle.Render(result.IssuesLink),
			styles.ModalHelpStyle.Render("enter: back to wizard"),
		)
		return m.overlay(lipgloss.JoinVertical(lipgloss.Left, parts...))

	case stateFailed:
		content := lipgloss.JoinVertical(lipgloss.Left,
			styles.BannerErrorStyle.Render("Generation failed"),
			"",
			styles.TextForegroundStyle.Render(m.app.Generation.ErrMessage()),
			styles.ModalHelpStyle.Render("enter: dismiss"),
		)
		return m.overlay(content)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar(),
		"  ",
		m.activeView().View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		"",
		body,
		"",
		m.actionBar(),
	)
}

// resultDetail summarizes a generation result. Empty when the relay did
// not report a count or the target repository is unknown.
func resultDetail(result relay.Result) string {
	if result.CreatedIssueCount == 0 || result.Owner == "" || result.Repo == "" {
		return ""
	}
	return fmt.Sprintf("Created %d issues in %s/%s", result.CreatedIssueCount, result.Owner, result.Repo)
}

func (m *Model) header() string {
	title := m.app.Wizard.Title()
	if title == "" {
		title = "New project"
	}
	return styles.FormTitleStyle.Render(title)
}

// sidebar renders the step list with derived status markers.
func (m *Model) sidebar() string {
	var b strings.Builder
	for _, step := range m.app.Wizard.Steps() {
		b.WriteString(renderStepLine(step) + "\n")
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Render(b.String())
}

func renderStepLine(step wizard.Step) string {
	switch step.Status {
	case wizard.StatusActive:
		return styles.StepActiveStyle.Render("● " + step.Name)
	case wizard.StatusComplete:
		return styles.StepCompleteStyle.Render("✓ " + step.Name)
	default:
		return styles.StepIncompleteStyle.Render("○ " + step.Name)
	}
}

func (m *Model) actionBar() string {
	if m.notice != "" {
		return styles.BannerErrorStyle.Render(m.notice)
	}

	hints := []string{
		m.keys.PrevStep.Help().Key + ": back",
		m.keys.NextStep.Help().Key + ": next",
		m.keys.JumpStep.Help().Key + ": jump",
	}

	if m.app.Wizard.CanGenerate() {
		hints = append(hints, styles.TextSuccessStyle.Render(m.keys.Generate.Help().Key+": generate"))
	} else {
		hints = append(hints, m.keys.Generate.Help().Key+": generate (complete all steps)")
	}
	hints = append(hints, m.keys.Quit.Help().Key+": quit")

	return styles.FormHelpStyle.Render(strings.Join(hints, " • "))
}

// overlay centers content in a modal box over the full window.
func (m *Model) overlay(content string) string {
	boxed := styles.ModalStyle.Render(content)
	if m.width == 0 || m.height == 0 {
		return boxed
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxed)
}
