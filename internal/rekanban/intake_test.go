package rekanban

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rekanban/rekanban/internal/core/wizard"
)

const validIntakeYAML = `
title: Hackathon Board
goals:
  - title: Launch MVP
    success_criteria: Ship demo
    notes: internal only
constraints:
  - No PII
  - no pii
  - Free services only
context: 2 devs, 1 week, React+Node
guardrails:
  security:
    - No secrets in frontend
    - No secrets in frontend
  other: keep everything local
repository:
  owner: acme
  repo: hack
`

func writeIntake(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIntake(t *testing.T) {
	t.Run("parses the full shape", func(t *testing.T) {
		in, err := LoadIntake(writeIntake(t, validIntakeYAML))
		require.NoError(t, err)

		assert.Equal(t, "Hackathon Board", in.Title)
		require.Len(t, in.Goals, 1)
		assert.Equal(t, "Launch MVP", in.Goals[0].Title)
		assert.Equal(t, "Ship demo", in.Goals[0].SuccessCriteria)
		assert.Equal(t, wizard.RepoSelection{Owner: "acme", Repo: "hack"}, in.Repository)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadIntake(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestIntake_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mut     func(*Intake)
		wantErr bool
	}{
		{"valid", func(*Intake) {}, false},
		{"no goals", func(in *Intake) { in.Goals = nil }, true},
		{"goal missing success criteria", func(in *Intake) { in.Goals[0].SuccessCriteria = "  " }, true},
		{"no constraints", func(in *Intake) { in.Constraints = nil }, true},
		{"blank constraint", func(in *Intake) { in.Constraints = []string{"   "} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Intake{
				Goals:       []wizard.Goal{{Title: "Launch", SuccessCriteria: "Shipped"}},
				Constraints: []string{"No PII"},
			}
			tt.mut(&in)

			err := in.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ApplyIntake(t *testing.T) {
	t.Run("funnels through wizard semantics", func(t *testing.T) {
		in, err := LoadIntake(writeIntake(t, validIntakeYAML))
		require.NoError(t, err)

		svc := newTestService(&mockRelay{})
		require.NoError(t, svc.ApplyIntake(in))

		wiz := svc.Wizard()
		assert.Equal(t, "Hackathon Board", wiz.Title())

		// Duplicate constraint text is suppressed, not stored twice.
		assert.Len(t, wiz.Constraints(), 2)

		// Duplicate guardrail values do not toggle back off.
		assert.Equal(t, []string{"No secrets in frontend"}, wiz.Guardrails().Security)

		assert.Equal(t, wizard.RepoSelection{Owner: "acme", Repo: "hack"}, wiz.Repository())
		assert.True(t, wiz.CanGenerate())
	})

	t.Run("invalid intake is rejected before any mutation matters", func(t *testing.T) {
		svc := newTestService(&mockRelay{})

		err := svc.ApplyIntake(Intake{})
		assert.Error(t, err)
		assert.False(t, svc.Wizard().CanGenerate())
	})
}
