package wizard

// PresetConstraints are the quick-add constraint suggestions offered by
// the Constraints step.
var PresetConstraints = []string{
	"MVP only",
	"Must be demoable",
	"React frontend",
	"Backend separate service",
	"No PII",
	"No secrets in frontend",
	"Free services only",
}

// GuardrailGroup describes the preset options for one guardrail category.
type GuardrailGroup struct {
	Category    Category
	Label       string
	Options     []string
	Placeholder string
}

// GuardrailGroups lists the four recognized categories with their preset
// options, in display order.
var GuardrailGroups = []GuardrailGroup{
	{
		Category: CategorySecurity,
		Label:    "Security",
		Options: []string{
			"No secrets in frontend",
			"No PII in prompts or storage",
			"Validate inputs",
			"Avoid logging sensitive content",
		},
		Placeholder: "Never expose keys or sensitive logs",
	},
	{
		Category: CategoryStandards,
		Label:    "Standards",
		Options: []string{
			"Include loading + error states",
			"Accessible forms (labels, focus states)",
			"Consistent data schema",
			"Demo-ready definition of done",
		},
		Placeholder: "Every flow should include clear error handling",
	},
	{
		Category: CategoryEthics,
		Label:    "Ethics",
		Options: []string{
			"User stays in control (AI suggests, user approves)",
			"Disclose AI-generated output",
			"Avoid biased or harmful content",
		},
		Placeholder: "Make AI suggestions transparent to users",
	},
	{
		Category: CategoryProduct,
		Label:    "Product Principles",
		Options: []string{
			"Keep UX simple and minimal steps",
			"Prioritize clarity over complexity",
			"Prefer safe defaults",
			"Make assumptions explicit",
		},
		Placeholder: "Optimize for clarity before adding complexity",
	},
}

// recommendedGuardrail pairs a category with one of its preset values.
type recommendedGuardrail struct {
	category Category
	value    string
}

// recommendedGuardrails is the curated starter set applied by
// SelectRecommendedGuardrails.
var recommendedGuardrails = []recommendedGuardrail{
	{CategorySecurity, "No secrets in frontend"},
	{CategorySecurity, "No PII in prompts or storage"},
	{CategoryStandards, "Include loading + error states"},
	{CategoryEthics, "Disclose AI-generated output"},
	{CategoryEthics, "User stays in control (AI suggests, user approves)"},
}
