package rekanban

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/rekanban/rekanban/internal/core/wizard"
)

// Intake is the YAML project file consumed by the non-interactive
// generate path. It carries the same state the TUI wizard collects.
type Intake struct {
	Title       string               `yaml:"title"`
	Goals       []wizard.Goal        `yaml:"goals"`
	Constraints []string             `yaml:"constraints"`
	Context     string               `yaml:"context"`
	Guardrails  wizard.Selections    `yaml:"guardrails"`
	Repository  wizard.RepoSelection `yaml:"repository"`
}

// LoadIntake reads and parses a project intake file.
func LoadIntake(path string) (Intake, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Intake{}, fmt.Errorf("read intake file: %w", err)
	}

	var in Intake
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Intake{}, fmt.Errorf("parse intake file: %w", err)
	}

	return in, nil
}

// Validate checks the intake field by field, mirroring the inline
// validation the TUI forms apply before storing.
func (in Intake) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if len(in.Goals) == 0 {
		errs = errs.Append("goals", fmt.Errorf("at least one entry is required"))
	}
	if len(in.Constraints) == 0 {
		errs = errs.Append("constraints", fmt.Errorf("at least one entry is required"))
	}

	fieldErrs := make([]error, 0, 2*len(in.Goals)+len(in.Constraints)+1)
	fieldErrs = append(fieldErrs, errs.ToError())
	for i, g := range in.Goals {
		fieldErrs = append(fieldErrs,
			criterio.Run(fmt.Sprintf("goals[%d].title", i), g.Title, nonEmpty),
			criterio.Run(fmt.Sprintf("goals[%d].success_criteria", i), g.SuccessCriteria, nonEmpty),
		)
	}
	for i, c := range in.Constraints {
		fieldErrs = append(fieldErrs, criterio.Run(fmt.Sprintf("constraints[%d]", i), c, nonEmpty))
	}

	return criterio.ValidateStruct(fieldErrs...)
}

// Apply funnels the intake through the wizard's own operations, so the
// same normalization, duplicate suppression, and completion evaluation
// apply as in the interactive path.
func (s *Service) ApplyIntake(in Intake) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("invalid intake: %w", err)
	}

	if in.Title != "" {
		s.wiz.SetTitle(in.Title)
	}
	for _, g := range in.Goals {
		s.wiz.AddGoal(g)
	}
	for _, c := range in.Constraints {
		s.wiz.AddConstraint(c)
	}
	s.wiz.SetContext(in.Context)

	for _, group := range wizard.GuardrailGroups {
		for _, value := range in.Guardrails.ValuesFor(group.Category) {
			// Skip already-present values so a duplicate in the file
			// cannot toggle a selection back off.
			if !s.wiz.GuardrailSelected(group.Category, value) {
				s.wiz.ToggleGuardrail(group.Category, value)
			}
		}
	}
	s.wiz.SetGuardrailOther(in.Guardrails.Other)

	if in.Repository.Owner != "" {
		s.wiz.SelectOwner(in.Repository.Owner)
		s.wiz.SelectRepo(in.Repository.Repo)
	}

	return nil
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("is required")
	}
	return nil
}
