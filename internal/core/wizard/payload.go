package wizard

import "strings"

// Request is the canonical generation request consumed by the backend.
// Field names are the wire contract; in particular the internal "product"
// category is exposed as "product_principles" here and nowhere else.
type Request struct {
	ProjectTitle string            `json:"projectTitle"`
	Goals        []RequestGoal     `json:"goals"`
	Constraints  []string          `json:"constraints"`
	Context      string            `json:"context"`
	Guardrails   RequestGuardrails `json:"guardrails"`
	GitHub       RequestRepo       `json:"github"`
}

// RequestGoal is the wire form of a goal.
type RequestGoal struct {
	Title   string `json:"title"`
	Success string `json:"success"`
}

// RequestGuardrails is the wire form of the guardrail selections.
type RequestGuardrails struct {
	Security          []string `json:"security"`
	Standards         []string `json:"standards"`
	Ethics            []string `json:"ethics"`
	ProductPrinciples []string `json:"product_principles"`
	Other             string   `json:"other"`
}

// RequestRepo is the wire form of the repository selection.
type RequestRepo struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// AssembleRequest builds the request from a snapshot. Pure: the snapshot
// is read, never mutated, and the result shares no slices with it. Slices
// are always non-nil so empty collections marshal as [] rather than null.
func AssembleRequest(snap Snapshot) Request {
	goals := make([]RequestGoal, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		goals = append(goals, RequestGoal{
			Title:   strings.TrimSpace(g.Title),
			Success: strings.TrimSpace(g.SuccessCriteria),
		})
	}

	constraints := make([]string, 0, len(snap.Constraints))
	for _, c := range snap.Constraints {
		text := strings.TrimSpace(c.Text)
		if text == "" {
			continue
		}
		constraints = append(constraints, text)
	}

	return Request{
		ProjectTitle: strings.TrimSpace(snap.Title),
		Goals:        goals,
		Constraints:  constraints,
		Context:      strings.TrimSpace(snap.Context),
		Guardrails: RequestGuardrails{
			Security:          trimmedCopy(snap.Guardrails.Security),
			Standards:         trimmedCopy(snap.Guardrails.Standards),
			Ethics:            trimmedCopy(snap.Guardrails.Ethics),
			ProductPrinciples: trimmedCopy(snap.Guardrails.Product),
			Other:             strings.TrimSpace(snap.Guardrails.Other),
		},
		GitHub: RequestRepo{
			Owner: snap.Repository.Owner,
			Repo:  snap.Repository.Repo,
		},
	}
}

func trimmedCopy(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
