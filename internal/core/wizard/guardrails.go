package wizard

import "strings"

// Category identifies one of the recognized guardrail groups.
type Category string

// Recognized guardrail categories. These are the internal names; the wire
// contract renames "product" during payload assembly.
const (
	CategorySecurity  Category = "security"
	CategoryStandards Category = "standards"
	CategoryEthics    Category = "ethics"
	CategoryProduct   Category = "product"
)

// OtherMinLength is the minimum trimmed length of the free-text guardrail
// field for it to count toward step completion on its own.
const OtherMinLength = 10

// Selections holds the guardrail choices for all categories plus the
// free-text fallback. Category slices hold unique values (by trimmed,
// case-insensitive comparison) in first-added order.
type Selections struct {
	Security  []string `yaml:"security"`
	Standards []string `yaml:"standards"`
	Ethics    []string `yaml:"ethics"`
	Product   []string `yaml:"product"`
	Other     string   `yaml:"other"`
}

func (s *Selections) category(cat Category) *[]string {
	switch cat {
	case CategorySecurity:
		return &s.Security
	case CategoryStandards:
		return &s.Standards
	case CategoryEthics:
		return &s.Ethics
	case CategoryProduct:
		return &s.Product
	default:
		return nil
	}
}

// Toggle inserts value into the category if absent, or removes it if
// present, comparing by trimmed case-insensitive equality. Unrecognized
// categories are a silent no-op. Removal preserves the order of the
// remaining entries.
func (s *Selections) Toggle(cat Category, value string) {
	items := s.category(cat)
	if items == nil {
		return
	}

	folded := foldText(value)
	for i, existing := range *items {
		if foldText(existing) == folded {
			*items = append((*items)[:i], (*items)[i+1:]...)
			return
		}
	}

	*items = append(*items, strings.TrimSpace(value))
}

// Has reports whether value is selected in the category, by normalized
// comparison.
func (s *Selections) Has(cat Category, value string) bool {
	items := s.category(cat)
	if items == nil {
		return false
	}

	folded := foldText(value)
	for _, existing := range *items {
		if foldText(existing) == folded {
			return true
		}
	}
	return false
}

// ValuesFor returns the selections for the category, nil for an
// unrecognized one.
func (s Selections) ValuesFor(cat Category) []string {
	switch cat {
	case CategorySecurity:
		return s.Security
	case CategoryStandards:
		return s.Standards
	case CategoryEthics:
		return s.Ethics
	case CategoryProduct:
		return s.Product
	default:
		return nil
	}
}

// SetOther replaces the free-text field wholesale. Normalization happens
// at read time, not here.
func (s *Selections) SetOther(text string) {
	s.Other = text
}

// Count returns the total number of category selections.
func (s Selections) Count() int {
	return len(s.Security) + len(s.Standards) + len(s.Ethics) + len(s.Product)
}

// Complete reports whether the Guardrails step predicate holds: at least
// one category selection, or a free-text entry of OtherMinLength or more
// characters after trimming.
func (s Selections) Complete() bool {
	return s.Count() > 0 || len(strings.TrimSpace(s.Other)) >= OtherMinLength
}
