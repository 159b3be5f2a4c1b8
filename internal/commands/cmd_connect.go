package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/rekanban/rekanban/internal/rekanban"
)

type ConnectCmd struct {
	flags *Flags
	app   *rekanban.App

	// flags
	printOnly bool
}

// NewConnectCmd creates a new connect command
func NewConnectCmd(flags *Flags, app *rekanban.App) *ConnectCmd {
	return &ConnectCmd{flags: flags, app: app}
}

// Register adds the connect command to the application
func (cmd *ConnectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "connect",
		Usage:     "Start the GitHub App connect flow",
		UsageText: "rekanban connect [--print]",
		Description: `Prints the URL that begins the GitHub App installation flow and offers
to open it in a browser. After installing the app, put the installation
id in the config file under github.installation_id.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "print",
				Usage:       "print the URL without offering to open a browser",
				Destination: &cmd.printOnly,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ConnectCmd) run(_ context.Context, _ *cli.Command) error {
	url, err := cmd.app.Service.ConnectStartURL()
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	fmt.Println(url)

	if cmd.printOnly {
		return nil
	}

	var open bool
	err = huh.NewConfirm().
		Title("Open in browser?").
		Value(&open).
		Run()
	if err != nil {
		// Non-interactive environments land here; the URL is already printed.
		return nil
	}
	if !open {
		return nil
	}

	if err := openBrowser(url); err != nil {
		log.Warn().Err(err).Msg("could not open browser")
		fmt.Println("Open the URL above manually.")
	}
	return nil
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
