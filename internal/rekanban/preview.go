package rekanban

import (
	"fmt"
	"strings"

	"github.com/rekanban/rekanban/internal/core/wizard"
)

// RequestMarkdown renders the assembled request as a markdown document.
// Used by the dry-run path to show exactly what would be submitted.
func RequestMarkdown(req wizard.Request) string {
	var b strings.Builder

	title := req.ProjectTitle
	if title == "" {
		title = "Untitled project"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("## Goals\n\n")
	if len(req.Goals) == 0 {
		b.WriteString("_none_\n")
	}
	for _, g := range req.Goals {
		fmt.Fprintf(&b, "- **%s** — %s\n", g.Title, g.Success)
	}

	b.WriteString("\n## Constraints\n\n")
	if len(req.Constraints) == 0 {
		b.WriteString("_none_\n")
	}
	for _, c := range req.Constraints {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	b.WriteString("\n## Context\n\n")
	if req.Context == "" {
		b.WriteString("_none_\n")
	} else {
		b.WriteString(req.Context + "\n")
	}

	b.WriteString("\n## Guardrails\n\n")
	writeGuardrailSection(&b, "Security", req.Guardrails.Security)
	writeGuardrailSection(&b, "Standards", req.Guardrails.Standards)
	writeGuardrailSection(&b, "Ethics", req.Guardrails.Ethics)
	writeGuardrailSection(&b, "Product principles", req.Guardrails.ProductPrinciples)
	if other := req.Guardrails.Other; other != "" {
		fmt.Fprintf(&b, "**Other**: %s\n", other)
	}

	if req.GitHub.Owner != "" && req.GitHub.Repo != "" {
		fmt.Fprintf(&b, "\n## Target repository\n\n`%s/%s`\n", req.GitHub.Owner, req.GitHub.Repo)
	}

	return b.String()
}

func writeGuardrailSection(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", label)
	for _, v := range values {
		fmt.Fprintf(b, "- %s\n", v)
	}
	b.WriteString("\n")
}
