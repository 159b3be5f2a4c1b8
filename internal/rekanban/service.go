// Package rekanban wires the intake wizard, the relay client, and the
// generation lifecycle into the operations the commands and TUI consume.
package rekanban

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/rekanban/rekanban/internal/core/generate"
	"github.com/rekanban/rekanban/internal/core/wizard"
	"github.com/rekanban/rekanban/internal/relay"
)

// ErrIncomplete is returned when generation is requested while any step
// is still incomplete. Callers surface it as a disabled affordance, not
// a failure banner.
var ErrIncomplete = errors.New("rekanban: intake is incomplete")

// RelayClient is the remote collaborator surface the service needs.
type RelayClient interface {
	Repositories(ctx context.Context) ([]relay.Repo, error)
	Generate(ctx context.Context, req wizard.Request) (relay.Result, error)
	ConnectStartURL() (string, error)
}

// Service orchestrates intake and generation for one wizard instance.
type Service struct {
	wiz     *wizard.Wizard
	client  RelayClient
	ctrl    *generate.Controller
	include []string
	log     zerolog.Logger
}

// NewService creates a service around an existing wizard. The include
// patterns filter repository full names when listing.
func NewService(wiz *wizard.Wizard, client RelayClient, ctrl *generate.Controller, include []string, log zerolog.Logger) *Service {
	return &Service{
		wiz:     wiz,
		client:  client,
		ctrl:    ctrl,
		include: include,
		log:     log,
	}
}

// Wizard returns the wizard instance the service orchestrates.
func (s *Service) Wizard() *wizard.Wizard { return s.wiz }

// Generation returns the generation lifecycle controller.
func (s *Service) Generation() *generate.Controller { return s.ctrl }

// ConnectStartURL returns the URL that begins the GitHub App connect flow.
func (s *Service) ConnectStartURL() (string, error) {
	return s.client.ConnectStartURL()
}

// LoadRepositories fetches the repositories visible to the installation,
// filters them by the configured include patterns, groups them by owner,
// and installs the result as the wizard's repository options.
func (s *Service) LoadRepositories(ctx context.Context) ([]wizard.OwnerRepos, error) {
	repos, err := s.client.Repositories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}

	grouped := groupRepositories(repos, s.include)
	s.wiz.SetRepositoryOptions(grouped)

	s.log.Debug().Int("owners", len(grouped)).Msg("installed repository options")
	return grouped, nil
}

// Generate assembles the request and starts a generation attempt.
// Returns ErrIncomplete while any step predicate fails, and (nil, nil)
// when an attempt is already pending — the re-trigger is a no-op.
// Assembly happens exactly once per accepted attempt.
func (s *Service) Generate(ctx context.Context) (<-chan generate.State, error) {
	if !s.wiz.CanGenerate() {
		return nil, ErrIncomplete
	}

	req := wizard.AssembleRequest(s.wiz.Snapshot())

	done, ok := s.ctrl.Trigger(ctx, req)
	if !ok {
		return nil, nil
	}
	return done, nil
}

// groupRepositories turns the relay's flat {id, full_name} list into the
// owner → repos mapping the Repository step consumes. Owners come out
// sorted; repositories keep the relay's listing order. Full names that
// match none of the include patterns are dropped (an empty pattern list
// includes everything).
func groupRepositories(repos []relay.Repo, include []string) []wizard.OwnerRepos {
	byOwner := make(map[string][]string)
	for _, r := range repos {
		owner, name, ok := strings.Cut(r.FullName, "/")
		if !ok || owner == "" || name == "" {
			continue
		}
		if !matchesInclude(include, r.FullName) {
			continue
		}
		byOwner[owner] = append(byOwner[owner], name)
	}

	owners := make([]string, 0, len(byOwner))
	for owner := range byOwner {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	grouped := make([]wizard.OwnerRepos, 0, len(owners))
	for _, owner := range owners {
		grouped = append(grouped, wizard.OwnerRepos{Owner: owner, Repos: byOwner[owner]})
	}
	return grouped
}

func matchesInclude(include []string, fullName string) bool {
	if len(include) == 0 {
		return true
	}
	for _, pattern := range include {
		// Patterns are validated at config load; an error here means
		// the pattern cannot match.
		if ok, err := doublestar.Match(pattern, fullName); err == nil && ok {
			return true
		}
	}
	return false
}
