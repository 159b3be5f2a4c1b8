package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/rekanban/rekanban/internal/rekanban"
	"github.com/rekanban/rekanban/pkg/iojson"
)

type ReposCmd struct {
	flags *Flags
	app   *rekanban.App

	// flags
	jsonOutput bool
}

// NewReposCmd creates a new repos command
func NewReposCmd(flags *Flags, app *rekanban.App) *ReposCmd {
	return &ReposCmd{flags: flags, app: app}
}

// Register adds the repos command to the application
func (cmd *ReposCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "repos",
		Usage:     "List repositories visible to the GitHub connection",
		UsageText: "rekanban repos [--json]",
		Description: `Fetches the repositories the GitHub App installation can reach, applies
the configured include patterns, and prints them grouped by owner.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return app
}

type reposOutput struct {
	Owner string   `json:"owner"`
	Repos []string `json:"repos"`
}

func (cmd *ReposCmd) run(ctx context.Context, _ *cli.Command) error {
	grouped, err := cmd.app.Service.LoadRepositories(ctx)
	if err != nil {
		return fmt.Errorf("list repositories: %w", err)
	}

	if cmd.jsonOutput {
		out := make([]reposOutput, 0, len(grouped))
		for _, g := range grouped {
			out = append(out, reposOutput{Owner: g.Owner, Repos: g.Repos})
		}
		return iojson.Write(out)
	}

	if len(grouped) == 0 {
		fmt.Fprintln(os.Stderr, "No repositories found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OWNER\tREPOSITORY")
	for _, g := range grouped {
		for _, repo := range g.Repos {
			fmt.Fprintf(w, "%s\t%s\n", g.Owner, repo)
		}
	}
	return w.Flush()
}
