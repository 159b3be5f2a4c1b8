package wizard

import "strings"

// StepID is the stable 1-based ordinal of a wizard step.
type StepID int

// The fixed step sequence. Immutable configuration, not runtime state.
const (
	StepGoals StepID = iota + 1
	StepConstraints
	StepContext
	StepGuardrails
	StepRepository
)

// StepCount is the number of steps in the sequence.
const StepCount = 5

// ContextMinLength is the minimum trimmed context length for the Context
// step to count as complete.
const ContextMinLength = 20

// Status is the derived display status of a step. Exactly one step is
// active at a time; status is never stored independently.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusActive     Status = "active"
	StatusIncomplete Status = "incomplete"
)

// Step is one stage of the intake sequence with its derived status.
type Step struct {
	ID     StepID
	Name   string
	Status Status
}

var stepNames = map[StepID]string{
	StepGoals:       "Goals",
	StepConstraints: "Constraints",
	StepContext:     "Context",
	StepGuardrails:  "Guardrails",
	StepRepository:  "Repository",
}

// RepoSelection is the target repository for generated issues.
type RepoSelection struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
}

// Complete reports whether both owner and repository are selected.
func (r RepoSelection) Complete() bool {
	return r.Owner != "" && r.Repo != ""
}

// OwnerRepos maps one owner to its selectable repository names.
type OwnerRepos struct {
	Owner string
	Repos []string
}

// Snapshot is the full collected state read by the step evaluator and the
// payload assembler. It is a value copy; holding one never observes later
// mutations.
type Snapshot struct {
	Title       string
	Goals       []Goal
	Constraints []Constraint
	Context     string
	Guardrails  Selections
	Repository  RepoSelection
}

// EvaluateSteps computes the completion table for the snapshot. Pure and
// idempotent: the same snapshot always yields the same table.
func EvaluateSteps(snap Snapshot) map[StepID]bool {
	return map[StepID]bool{
		StepGoals:       anyValidGoal(snap.Goals),
		StepConstraints: anyValidConstraint(snap.Constraints),
		StepContext:     len(strings.TrimSpace(snap.Context)) >= ContextMinLength,
		StepGuardrails:  snap.Guardrails.Complete(),
		StepRepository:  snap.Repository.Complete(),
	}
}

func anyValidGoal(goals []Goal) bool {
	for _, g := range goals {
		if g.Valid() {
			return true
		}
	}
	return false
}

func anyValidConstraint(constraints []Constraint) bool {
	for _, c := range constraints {
		if c.Valid() {
			return true
		}
	}
	return false
}
