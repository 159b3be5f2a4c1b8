package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rekanban/rekanban/internal/core/styles"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/tui/components/form"
)

// repositoryView drives the Repository step: owner and repository
// selects built from the options the relay installed on the wizard.
type repositoryView struct {
	wiz     *wizard.Wizard
	reload  func() tea.Cmd
	owners  *form.SelectFormField
	repos   *form.SelectFormField
	focus   int // 0 owners, 1 repos
	loading bool
	loadErr string
}

func newRepositoryView(wiz *wizard.Wizard, reload func() tea.Cmd) *repositoryView {
	v := &repositoryView{wiz: wiz, reload: reload}
	v.rebuild()
	return v
}

// rebuild reconstructs both selects from current wizard state.
func (v *repositoryView) rebuild() {
	options := v.wiz.RepositoryOptions()
	selection := v.wiz.Repository()

	owners := make([]string, 0, len(options))
	var repos []string
	for _, o := range options {
		owners = append(owners, o.Owner)
		if o.Owner == selection.Owner {
			repos = o.Repos
		}
	}

	v.owners = form.NewSelectFormField("Owner", owners, selection.Owner)
	v.repos = form.NewSelectFormField("Repository", repos, selection.Repo)

	if v.focus == 0 {
		v.owners.Focus()
	} else {
		v.repos.Focus()
	}
}

func (v *repositoryView) Refresh() {
	v.rebuild()
}

// loaded is called when a repository fetch settles.
func (v *repositoryView) loaded(errMsg string) {
	v.loading = false
	v.loadErr = errMsg
	v.rebuild()
}

func (v *repositoryView) setFocus(idx int) tea.Cmd {
	v.owners.Blur()
	v.repos.Blur()
	v.focus = (idx + 2) % 2
	if v.focus == 0 {
		return v.owners.Focus()
	}
	return v.repos.Focus()
}

func (v *repositoryView) filtering() bool {
	return v.owners.IsFiltering() || v.repos.IsFiltering()
}

func (v *repositoryView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && !v.filtering() {
		switch keyMsg.String() {
		case "tab":
			return v.setFocus(v.focus + 1)
		case "shift+tab":
			return v.setFocus(v.focus - 1)
		case "ctrl+r":
			if v.reload != nil && !v.loading {
				v.loading = true
				v.loadErr = ""
				return v.reload()
			}
			return nil
		case "enter":
			if v.focus == 0 {
				if owner, _ := v.owners.Value().(string); owner != "" {
					v.wiz.SelectOwner(owner)
					v.rebuild()
					return v.setFocus(1)
				}
				return nil
			}
			if repo, _ := v.repos.Value().(string); repo != "" {
				v.wiz.SelectRepo(repo)
			}
			return nil
		}
	}

	if v.focus == 0 {
		_, cmd := v.owners.Update(msg)
		return cmd
	}
	_, cmd := v.repos.Update(msg)
	return cmd
}

func (v *repositoryView) View() string {
	if v.loading {
		return styles.TextMutedStyle.Render("Loading repositories…")
	}

	var parts []string

	if v.loadErr != "" {
		parts = append(parts, styles.FormErrorStyle.Render(v.loadErr), "")
	}

	if len(v.wiz.RepositoryOptions()) == 0 {
		parts = append(parts,
			styles.TextMutedStyle.Render("No repositories available."),
			"",
			styles.FormHelpStyle.Render("ctrl+r: load repositories"),
		)
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, v.owners.View(), "", v.repos.View())

	if sel := v.wiz.Repository(); sel.Complete() {
		parts = append(parts, "",
			styles.TextSuccessStyle.Render("Target: "+sel.Owner+"/"+sel.Repo))
	}

	parts = append(parts, "", styles.FormHelpStyle.Render("enter: select • tab: switch • ctrl+r: reload"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
