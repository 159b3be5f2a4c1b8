package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/rekanban/rekanban/internal/commands"
	"github.com/rekanban/rekanban/internal/core/config"
	"github.com/rekanban/rekanban/internal/core/logging"
	"github.com/rekanban/rekanban/internal/rekanban"
	"github.com/rekanban/rekanban/internal/relay"
	"github.com/rekanban/rekanban/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		appState  = &rekanban.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "rekanban",
		Usage:     "Turn a project idea into a scoped GitHub issue backlog",
		UsageText: "rekanban [global options] command [command options]",
		Description: `Rekanban walks a hackathon team through a short intake (goals,
constraints, context, guardrails, and a target repository) and turns
the result into GitHub issues via an agent backend.

Run 'rekanban' with no arguments to open the interactive wizard.
Run 'rekanban generate --file intake.yaml' for scripted runs.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("REKANBAN_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/rekanban.log)",
				Sources:     cli.EnvVars("REKANBAN_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REKANBAN_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("REKANBAN_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; the TUI owns stdout.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "rekanban.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			client := relay.New(relay.Config{
				BaseURL:        cfg.API.BaseURL,
				InstallationID: cfg.GitHub.InstallationID,
				Timeout:        cfg.API.Timeout,
			}, logging.Component("relay"))

			// Populate the pre-allocated App struct (commands already
			// hold a pointer to it).
			*appState = *rekanban.NewApp(cfg, client, log.Logger)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			appState.Close()

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	wizardCmd := commands.NewWizardCmd(flags, appState)

	app = wizardCmd.Register(app)
	app = commands.NewGenerateCmd(flags, appState).Register(app)
	app = commands.NewReposCmd(flags, appState).Register(app)
	app = commands.NewConnectCmd(flags, appState).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Open the wizard when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'rekanban --help' for usage", c.Args().First())
		}
		return wizardCmd.Run(ctx, c)
	}

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
