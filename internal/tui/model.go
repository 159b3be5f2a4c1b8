// Package tui implements the Bubble Tea intake wizard for rekanban.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rekanban/rekanban/internal/core/generate"
	"github.com/rekanban/rekanban/internal/core/styles"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/relay"
	"github.com/rekanban/rekanban/internal/rekanban"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateEditing UIState = iota
	stateGenerating
	stateSucceeded
	stateFailed
)

// stepView is the per-step sub-model contract.
type stepView interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	Refresh()
}

// Messages.
type (
	reposLoadedMsg struct{ err error }

	generationDoneMsg struct{ state generate.State }
)

// Model is the main Bubble Tea model for the intake wizard.
type Model struct {
	app   *rekanban.App
	log   zerolog.Logger
	keys  keyMap
	views map[wizard.StepID]stepView

	state   UIState
	spinner spinner.Model
	width   int
	height  int

	// Transient notice shown in the action bar, cleared on next input.
	notice   string
	quitting bool
}

// NewModel builds the wizard model around an App.
func NewModel(app *rekanban.App, log zerolog.Logger) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.TextPrimaryStyle

	m := &Model{
		app:     app,
		log:     log,
		keys:    defaultKeyMap(),
		spinner: sp,
		state:   stateEditing,
	}

	wiz := app.Wizard
	m.views = map[wizard.StepID]stepView{
		wizard.StepGoals:       newGoalsView(wiz),
		wizard.StepConstraints: newConstraintsView(wiz),
		wizard.StepContext:     newContextView(wiz),
		wizard.StepGuardrails:  newGuardrailsView(wiz),
		wizard.StepRepository:  newRepositoryView(wiz, m.loadReposCmd),
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadReposCmd())
}

// loadReposCmd fetches repositories off the UI goroutine.
func (m *Model) loadReposCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.app.Service.LoadRepositories(context.Background())
		return reposLoadedMsg{err: err}
	}
}

// waitForGeneration delivers the terminal state of an accepted attempt.
func waitForGeneration(done <-chan generate.State) tea.Cmd {
	return func() tea.Msg {
		return generationDoneMsg{state: <-done}
	}
}

func (m *Model) activeView() stepView {
	return m.views[m.app.Wizard.ActiveStep()]
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reposLoadedMsg:
		m.handleReposLoaded(msg.err)
		return m, nil

	case generationDoneMsg:
		switch msg.state {
		case generate.StateSucceeded:
			m.state = stateSucceeded
		case generate.StateFailed:
			m.state = stateFailed
		default:
			m.state = stateEditing
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleReposLoaded(err error) {
	view, ok := m.views[wizard.StepRepository].(*repositoryView)
	if !ok {
		return
	}
	if err != nil {
		m.log.Warn().Err(err).Msg("repository load failed")
		view.loaded(relayMessage(err))
		return
	}
	view.loaded("")
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.app.Close()
		return m, tea.Quit
	}

	m.notice = ""

	switch m.state {
	case stateGenerating:
		// Input is ignored while an attempt is in flight; the controller
		// treats re-triggers as no-ops anyway.
		return m, nil

	case stateSucceeded, stateFailed:
		switch msg.String() {
		case "enter", "esc":
			m.app.Generation.Dismiss()
			m.state = stateEditing
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextStep):
		m.app.Wizard.Next()
		m.activeView().Refresh()
		return m, nil

	case key.Matches(msg, m.keys.PrevStep):
		m.app.Wizard.Back()
		m.activeView().Refresh()
		return m, nil

	case key.Matches(msg, m.keys.JumpStep):
		m.jumpToStep(msg)
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		return m, m.startGeneration()
	}

	return m, m.activeView().Update(msg)
}

// jumpToStep maps an alt+<digit> chord onto a direct step selection. The
// sequencer allows free jumps in both directions.
func (m *Model) jumpToStep(msg tea.KeyMsg) {
	s := msg.String()
	if len(s) == 0 {
		return
	}
	m.app.Wizard.SelectStep(wizard.StepID(s[len(s)-1] - '0'))
	m.activeView().Refresh()
}

// startGeneration asks the service for an attempt and transitions into
// the generating state when one is accepted.
func (m *Model) startGeneration() tea.Cmd {
	done, err := m.app.Service.Generate(context.Background())
	if err != nil {
		if errors.Is(err, rekanban.ErrIncomplete) {
			m.notice = "Complete all steps before generating."
			return nil
		}
		m.notice = err.Error()
		return nil
	}
	if done == nil {
		return nil
	}

	m.state = stateGenerating
	return tea.Batch(m.spinner.Tick, waitForGeneration(done))
}

// relayMessage converts relay errors into user-facing text.
func relayMessage(err error) string {
	var remote *relay.RemoteError
	switch {
	case errors.Is(err, relay.ErrNotConfigured):
		return "Backend is not configured. Set api.base_url in the config file."
	case errors.Is(err, relay.ErrNotConnected):
		return "Not connected to GitHub. Run `rekanban connect` first."
	case errors.As(err, &remote):
		return remote.Message
	default:
		return err.Error()
	}
}
