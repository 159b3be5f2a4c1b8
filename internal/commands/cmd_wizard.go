package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rekanban/rekanban/internal/core/logging"
	"github.com/rekanban/rekanban/internal/rekanban"
	"github.com/rekanban/rekanban/internal/tui"
)

type WizardCmd struct {
	flags *Flags
	app   *rekanban.App
}

// NewWizardCmd creates a new wizard command
func NewWizardCmd(flags *Flags, app *rekanban.App) *WizardCmd {
	return &WizardCmd{flags: flags, app: app}
}

// Register adds the wizard command to the application
func (cmd *WizardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "wizard",
		Usage:     "Open the interactive intake wizard",
		UsageText: "rekanban wizard",
		Description: `Walks through the five intake steps (goals, constraints, context,
guardrails, repository) and generates GitHub issues from the result.

This is also the default command when rekanban runs with no arguments.`,
		Action: cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as the default command.
func (cmd *WizardCmd) Run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the wizard needs a terminal; use 'rekanban generate --file' for scripted runs")
	}

	model := tui.NewModel(cmd.app, logging.Component("tui"))

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}
	return nil
}
