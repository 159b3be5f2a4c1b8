// Package wizard implements the project intake wizard: the item stores,
// the step sequencer, and the generation request assembler.
package wizard

import "strings"

// Goal is a single project outcome collected during the Goals step.
type Goal struct {
	ID              string `yaml:"-"`
	Title           string `yaml:"title"`
	SuccessCriteria string `yaml:"success_criteria"`
	Notes           string `yaml:"notes,omitempty"`
	Deadline        string `yaml:"deadline,omitempty"`
}

func (g Goal) id() string { return g.ID }

func (g Goal) withID(id string) Goal {
	g.ID = id
	return g
}

func (g Goal) normalize() Goal {
	g.Title = strings.TrimSpace(g.Title)
	g.SuccessCriteria = strings.TrimSpace(g.SuccessCriteria)
	g.Notes = strings.TrimSpace(g.Notes)
	return g
}

// Valid reports whether the goal satisfies the Goals step predicate:
// a non-empty title and non-empty success criteria after trimming.
func (g Goal) Valid() bool {
	return strings.TrimSpace(g.Title) != "" && strings.TrimSpace(g.SuccessCriteria) != ""
}

// Constraint is a single limit or requirement collected during the
// Constraints step.
type Constraint struct {
	ID   string `yaml:"-"`
	Text string `yaml:"text"`
}

func (c Constraint) id() string { return c.ID }

func (c Constraint) withID(id string) Constraint {
	c.ID = id
	return c
}

func (c Constraint) normalize() Constraint {
	c.Text = strings.TrimSpace(c.Text)
	return c
}

// Valid reports whether the constraint has non-empty text after trimming.
func (c Constraint) Valid() bool {
	return strings.TrimSpace(c.Text) != ""
}

// foldText is the normalized-equality form used for duplicate checks:
// surrounding whitespace stripped, case folded.
func foldText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
