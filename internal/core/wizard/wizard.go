package wizard

import (
	"slices"
	"strings"
)

// Wizard owns the collected intake state and the active step pointer.
// It is single-writer: all mutations happen synchronously on the caller's
// goroutine, and every derived read (Steps, CanGenerate) recomputes from
// the current state rather than caching.
type Wizard struct {
	title       string
	goals       *ItemStore[Goal]
	constraints *ItemStore[Constraint]
	contextText string
	guardrails  Selections
	repo        RepoSelection

	// repoOptions is the externally supplied owner → repositories mapping.
	// Read-only here; the connect flow owns it.
	repoOptions []OwnerRepos

	active StepID
}

// New creates a wizard at step 1 with all steps incomplete.
func New() *Wizard {
	return &Wizard{
		goals:       NewItemStore[Goal](),
		constraints: NewItemStore[Constraint](),
		active:      StepGoals,
	}
}

// SetTitle replaces the project title wholesale.
func (w *Wizard) SetTitle(title string) { w.title = title }

// Title returns the project title.
func (w *Wizard) Title() string { return w.title }

// AddGoal stores a new goal and returns the stored copy. Callers are
// expected to gate on Goal.Valid at the form layer; the store itself
// accepts anything.
func (w *Wizard) AddGoal(g Goal) Goal {
	return w.goals.Add(g)
}

// UpdateGoal merges changes into the goal matching id. No-op on unknown id.
func (w *Wizard) UpdateGoal(id string, fn func(Goal) Goal) {
	w.goals.Update(id, fn)
}

// RemoveGoal deletes the goal matching id. No-op on unknown id.
func (w *Wizard) RemoveGoal(id string) {
	w.goals.Remove(id)
}

// Goals returns the goals in insertion order.
func (w *Wizard) Goals() []Goal {
	return w.goals.Items()
}

// AddConstraint stores a new constraint unless its trimmed,
// case-insensitive text matches an existing one, in which case the add is
// silently dropped. Returns the stored constraint and whether it was added.
func (w *Wizard) AddConstraint(text string) (Constraint, bool) {
	folded := foldText(text)
	for _, existing := range w.constraints.Items() {
		if foldText(existing.Text) == folded {
			return Constraint{}, false
		}
	}
	return w.constraints.Add(Constraint{Text: text}), true
}

// UpdateConstraint replaces the text of the constraint matching id.
// No-op on unknown id.
func (w *Wizard) UpdateConstraint(id, text string) {
	w.constraints.Update(id, func(c Constraint) Constraint {
		c.Text = text
		return c
	})
}

// RemoveConstraint deletes the constraint matching id. No-op on unknown id.
func (w *Wizard) RemoveConstraint(id string) {
	w.constraints.Remove(id)
}

// Constraints returns the constraints in insertion order.
func (w *Wizard) Constraints() []Constraint {
	return w.constraints.Items()
}

// SetContext replaces the free-form context wholesale.
func (w *Wizard) SetContext(text string) { w.contextText = text }

// Context returns the free-form context.
func (w *Wizard) Context() string { return w.contextText }

// ToggleGuardrail toggles a guardrail selection. Unrecognized categories
// are a no-op.
func (w *Wizard) ToggleGuardrail(cat Category, value string) {
	w.guardrails.Toggle(cat, value)
}

// SetGuardrailOther replaces the free-text guardrail field.
func (w *Wizard) SetGuardrailOther(text string) {
	w.guardrails.SetOther(text)
}

// GuardrailSelected reports whether value is currently selected in the
// category.
func (w *Wizard) GuardrailSelected(cat Category, value string) bool {
	return w.guardrails.Has(cat, value)
}

// Guardrails returns a copy of the current selections.
func (w *Wizard) Guardrails() Selections {
	return copySelections(w.guardrails)
}

// SelectRecommendedGuardrails toggles on the curated starter set,
// skipping values that are already selected.
func (w *Wizard) SelectRecommendedGuardrails() {
	for _, rec := range recommendedGuardrails {
		if !w.guardrails.Has(rec.category, rec.value) {
			w.guardrails.Toggle(rec.category, rec.value)
		}
	}
}

// SetRepositoryOptions installs the owner → repositories mapping supplied
// by the connect flow. If the current selection is no longer offered, it
// is cleared.
func (w *Wizard) SetRepositoryOptions(options []OwnerRepos) {
	w.repoOptions = options
	if w.repo.Owner != "" && !slices.Contains(w.reposForOwner(w.repo.Owner), w.repo.Repo) {
		w.repo.Repo = ""
	}
	if w.repo.Owner != "" && len(w.reposForOwner(w.repo.Owner)) == 0 {
		w.repo = RepoSelection{}
	}
}

// RepositoryOptions returns the installed mapping.
func (w *Wizard) RepositoryOptions() []OwnerRepos {
	return w.repoOptions
}

// SelectOwner sets the owner half of the repository selection. If the new
// owner's repository list does not contain the currently selected
// repository, the repository half is cleared.
func (w *Wizard) SelectOwner(owner string) {
	w.repo.Owner = owner
	if !slices.Contains(w.reposForOwner(owner), w.repo.Repo) {
		w.repo.Repo = ""
	}
}

// SelectRepo sets the repository half of the selection.
func (w *Wizard) SelectRepo(repo string) {
	w.repo.Repo = repo
}

// Repository returns the current selection.
func (w *Wizard) Repository() RepoSelection {
	return w.repo
}

func (w *Wizard) reposForOwner(owner string) []string {
	for _, entry := range w.repoOptions {
		if entry.Owner == owner {
			return entry.Repos
		}
	}
	return nil
}

// Snapshot returns a value copy of the collected state.
func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{
		Title:       w.title,
		Goals:       w.goals.Items(),
		Constraints: w.constraints.Items(),
		Context:     w.contextText,
		Guardrails:  copySelections(w.guardrails),
		Repository:  w.repo,
	}
}

// ActiveStep returns the id of the active step.
func (w *Wizard) ActiveStep() StepID { return w.active }

// Steps returns the fixed sequence with derived statuses: complete if the
// step's predicate holds, else active if it is the current step, else
// incomplete.
func (w *Wizard) Steps() []Step {
	complete := EvaluateSteps(w.Snapshot())

	steps := make([]Step, 0, StepCount)
	for id := StepID(1); id <= StepCount; id++ {
		status := StatusIncomplete
		switch {
		case complete[id]:
			status = StatusComplete
		case id == w.active:
			status = StatusActive
		}
		steps = append(steps, Step{ID: id, Name: stepNames[id], Status: status})
	}
	return steps
}

// SelectStep jumps directly to id. Free navigation in both directions is
// always permitted; ids outside the sequence are a no-op.
func (w *Wizard) SelectStep(id StepID) {
	if id < 1 || id > StepCount {
		return
	}
	w.active = id
}

// Next advances to the following step. No-op if the active step is the
// last, or if the active step's predicate does not currently hold.
func (w *Wizard) Next() {
	if w.active >= StepCount {
		return
	}
	if !EvaluateSteps(w.Snapshot())[w.active] {
		return
	}
	w.active++
}

// Back returns to the previous step. No-op at the first step.
func (w *Wizard) Back() {
	if w.active <= 1 {
		return
	}
	w.active--
}

// CanGenerate reports whether every step's predicate holds. Re-evaluated
// on every call, never latched: state becoming incomplete again disables
// generation immediately.
func (w *Wizard) CanGenerate() bool {
	for _, done := range EvaluateSteps(w.Snapshot()) {
		if !done {
			return false
		}
	}
	return true
}

func copySelections(s Selections) Selections {
	return Selections{
		Security:  slices.Clone(s.Security),
		Standards: slices.Clone(s.Standards),
		Ethics:    slices.Clone(s.Ethics),
		Product:   slices.Clone(s.Product),
		Other:     s.Other,
	}
}

// TrimmedContextLen returns the trimmed context length, used by views to
// show progress toward ContextMinLength.
func TrimmedContextLen(text string) int {
	return len(strings.TrimSpace(text))
}
