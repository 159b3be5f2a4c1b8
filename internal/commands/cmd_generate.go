package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/rekanban/rekanban/internal/core/generate"
	"github.com/rekanban/rekanban/internal/core/styles"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/rekanban"
)

type GenerateCmd struct {
	flags *Flags
	app   *rekanban.App

	// flags
	file   string
	dryRun bool
}

// NewGenerateCmd creates a new generate command
func NewGenerateCmd(flags *Flags, app *rekanban.App) *GenerateCmd {
	return &GenerateCmd{flags: flags, app: app}
}

// Register adds the generate command to the application
func (cmd *GenerateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "generate",
		Usage:     "Generate issues from an intake file without the TUI",
		UsageText: "rekanban generate --file intake.yaml [--dry-run]",
		Description: `Loads the intake from a YAML file, checks the same step predicates the
wizard enforces, and submits the assembled request to the backend.

With --dry-run the assembled request is rendered as markdown instead of
being submitted.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the intake YAML file",
				Required:    true,
				Destination: &cmd.file,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "print the assembled request instead of submitting it",
				Destination: &cmd.dryRun,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *GenerateCmd) run(ctx context.Context, _ *cli.Command) error {
	intake, err := rekanban.LoadIntake(cmd.file)
	if err != nil {
		return fmt.Errorf("load intake: %w", err)
	}
	if err := intake.Validate(); err != nil {
		return fmt.Errorf("validate intake: %w", err)
	}
	// The repository selection in the intake file only sticks when the
	// wizard has matching options installed. Dry runs stay offline and
	// trust the file; real runs fetch the live listing first.
	if cmd.dryRun {
		if intake.Repository.Owner != "" {
			cmd.app.Wizard.SetRepositoryOptions([]wizard.OwnerRepos{
				{Owner: intake.Repository.Owner, Repos: []string{intake.Repository.Repo}},
			})
		}
		if err := cmd.app.Service.ApplyIntake(intake); err != nil {
			return fmt.Errorf("apply intake: %w", err)
		}
		return cmd.preview()
	}

	if _, err := cmd.app.Service.LoadRepositories(ctx); err != nil {
		return fmt.Errorf("load repositories: %w", err)
	}
	if err := cmd.app.Service.ApplyIntake(intake); err != nil {
		return fmt.Errorf("apply intake: %w", err)
	}

	done, err := cmd.app.Service.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if done == nil {
		return fmt.Errorf("generate: an attempt is already pending")
	}

	state := <-done
	if state == generate.StateFailed {
		return fmt.Errorf("generate: %s", cmd.app.Generation.ErrMessage())
	}

	result, ok := cmd.app.Generation.Result()
	if !ok {
		return fmt.Errorf("generate: no result available")
	}

	log.Info().
		Str("issues", result.IssuesLink).
		Int("count", result.CreatedIssueCount).
		Str("repo", result.Owner+"/"+result.Repo).
		Msg("issues created")

	fmt.Printf("Created %d issues in %s/%s\n", result.CreatedIssueCount, result.Owner, result.Repo)
	fmt.Println(result.IssuesLink)
	return nil
}

func (cmd *GenerateCmd) preview() error {
	md := rekanban.RequestMarkdown(wizard.AssembleRequest(cmd.app.Wizard.Snapshot()))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("build renderer: %w", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	fmt.Print(rendered)
	return nil
}
