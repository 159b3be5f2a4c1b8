package rekanban

import (
	"github.com/rs/zerolog"

	"github.com/rekanban/rekanban/internal/core/config"
	"github.com/rekanban/rekanban/internal/core/generate"
	"github.com/rekanban/rekanban/internal/core/wizard"
)

// App is the central entry point for rekanban operations. Commands and
// the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Wizard     *wizard.Wizard
	Service    *Service
	Generation *generate.Controller
	Config     *config.Config
}

// NewApp constructs an App from explicit dependencies. The generation
// controller is built around the same relay client the service uses, so
// there is exactly one outbound collaborator.
func NewApp(cfg *config.Config, client RelayClient, log zerolog.Logger) *App {
	wiz := wizard.New()
	wiz.SetTitle(cfg.Project.Title)

	ctrl := generate.NewController(client, cfg.API.Timeout, log.With().Str("cmp", "generate").Logger())
	svc := NewService(wiz, client, ctrl, cfg.GitHub.Include, log.With().Str("cmp", "service").Logger())

	return &App{
		Wizard:     wiz,
		Service:    svc,
		Generation: ctrl,
		Config:     cfg,
	}
}

// Close cancels any in-flight generation attempt.
func (a *App) Close() {
	if a.Generation != nil {
		a.Generation.Close()
	}
}
