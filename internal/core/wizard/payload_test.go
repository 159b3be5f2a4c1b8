package wizard

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleRequest(t *testing.T) {
	t.Run("reference assembly", func(t *testing.T) {
		snap := Snapshot{
			Goals:       []Goal{{ID: "g1", Title: "Launch MVP", SuccessCriteria: "Ship demo"}},
			Constraints: []Constraint{{ID: "c1", Text: "No PII"}},
			Context:     "2 devs, 1 week, React+Node",
			Guardrails:  Selections{Security: []string{"No secrets in frontend"}},
		}

		req := AssembleRequest(snap)

		assert.Equal(t, []RequestGoal{{Title: "Launch MVP", Success: "Ship demo"}}, req.Goals)
		assert.Equal(t, []string{"No PII"}, req.Constraints)
		assert.Equal(t, "2 devs, 1 week, React+Node", req.Context)
		assert.Equal(t, []string{"No secrets in frontend"}, req.Guardrails.Security)
		assert.Equal(t, []string{}, req.Guardrails.ProductPrinciples)
		assert.Equal(t, "", req.Guardrails.Other)
	})

	t.Run("renames product to product_principles on the wire", func(t *testing.T) {
		snap := Snapshot{
			Guardrails: Selections{Product: []string{"Prefer safe defaults"}},
		}

		data, err := json.Marshal(AssembleRequest(snap))
		require.NoError(t, err)

		assert.Contains(t, string(data), `"product_principles":["Prefer safe defaults"]`)
		assert.NotContains(t, string(data), `"product":`)
	})

	t.Run("filters empty constraints and trims fields", func(t *testing.T) {
		snap := Snapshot{
			Title: "  Demo  ",
			Constraints: []Constraint{
				{ID: "a", Text: "  keep scope tight  "},
				{ID: "b", Text: "   "},
			},
			Context: "  context padded  ",
		}

		req := AssembleRequest(snap)

		assert.Equal(t, "Demo", req.ProjectTitle)
		assert.Equal(t, []string{"keep scope tight"}, req.Constraints)
		assert.Equal(t, "context padded", req.Context)
	})

	t.Run("empty collections marshal as arrays, not null", func(t *testing.T) {
		data, err := json.Marshal(AssembleRequest(Snapshot{}))
		require.NoError(t, err)

		assert.Contains(t, string(data), `"goals":[]`)
		assert.Contains(t, string(data), `"constraints":[]`)
		assert.Contains(t, string(data), `"security":[]`)
	})

	t.Run("does not mutate the snapshot", func(t *testing.T) {
		snap := Snapshot{
			Goals:      []Goal{{ID: "g1", Title: "  padded  ", SuccessCriteria: "s"}},
			Guardrails: Selections{Security: []string{"  padded rail  "}},
		}

		_ = AssembleRequest(snap)

		assert.Equal(t, "  padded  ", snap.Goals[0].Title)
		assert.Equal(t, "  padded rail  ", snap.Guardrails.Security[0])
	})
}

func TestAssembleRequest_Golden(t *testing.T) {
	snap := Snapshot{
		Title: "Hackathon Board",
		Goals: []Goal{
			{ID: "g1", Title: "Launch MVP", SuccessCriteria: "Ship demo", Notes: "internal only", Deadline: "2026-03-01"},
			{ID: "g2", Title: "Onboard testers", SuccessCriteria: "5 signups"},
		},
		Constraints: []Constraint{
			{ID: "c1", Text: "No PII"},
			{ID: "c2", Text: "Free services only"},
		},
		Context: "2 devs, 1 week, React+Node",
		Guardrails: Selections{
			Security: []string{"No secrets in frontend"},
			Ethics:   []string{"Disclose AI-generated output"},
			Product:  []string{"Prefer safe defaults"},
			Other:    "keep everything local",
		},
		Repository: RepoSelection{Owner: "acme", Repo: "hack"},
	}

	data, err := json.MarshalIndent(AssembleRequest(snap), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "generation_request", data)
}
