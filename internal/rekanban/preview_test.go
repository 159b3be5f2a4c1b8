package rekanban

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rekanban/rekanban/internal/core/wizard"
)

func TestRequestMarkdown(t *testing.T) {
	t.Parallel()

	req := wizard.Request{
		ProjectTitle: "rekanban",
		Goals: []wizard.RequestGoal{
			{Title: "Ship MVP", Success: "Demo runs end to end"},
		},
		Constraints: []string{"Must use existing tech stack"},
		Context:     "Weekend hackathon, two engineers.",
		Guardrails: wizard.RequestGuardrails{
			Security:          []string{"No secrets in code"},
			Standards:         []string{},
			Ethics:            []string{},
			ProductPrinciples: []string{"Keep the UI simple"},
			Other:             "Stay under the free tier.",
		},
		GitHub: wizard.RequestRepo{Owner: "acme", Repo: "rekanban"},
	}

	md := RequestMarkdown(req)

	assert.Contains(t, md, "# rekanban")
	assert.Contains(t, md, "- **Ship MVP** — Demo runs end to end")
	assert.Contains(t, md, "- Must use existing tech stack")
	assert.Contains(t, md, "Weekend hackathon, two engineers.")
	assert.Contains(t, md, "**Product principles**")
	assert.Contains(t, md, "- Keep the UI simple")
	assert.Contains(t, md, "**Other**: Stay under the free tier.")
	assert.Contains(t, md, "`acme/rekanban`")
	assert.NotContains(t, md, "**Standards**")
}

func TestRequestMarkdownEmpty(t *testing.T) {
	t.Parallel()

	md := RequestMarkdown(wizard.Request{})

	assert.Contains(t, md, "# Untitled project")
	assert.Contains(t, md, "_none_")
	assert.NotContains(t, md, "## Target repository")
}
