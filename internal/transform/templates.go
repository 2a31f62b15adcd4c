package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/itrgo/internal/domain"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []InputTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates builds the "claim the full limit" templates. The
// 80D targets follow the age bands of profile.
func CreateBuiltInTemplates(rules domain.OldRegimeRules, profile domain.UserProfile) *TemplateRegistry {
	registry := NewTemplateRegistry()
	limits := rules.Limits

	selfHealth := limits.Section80DSelf
	if rules.IsSenior(profile.Age) {
		selfHealth = limits.Section80DSelfSenior
	}
	parentsHealth := limits.Section80DParents
	if profile.ParentsSeniorCitizen {
		parentsHealth = limits.Section80DParentsSenior
	}

	max80C := &FillDeduction{Section: "80c", Target: limits.Section80C}
	maxNPS := &FillDeduction{Section: "80ccd1b", Target: limits.Section80CCD1B}
	maxHealth := []InputTransform{
		&FillDeduction{Section: "80d_self", Target: selfHealth},
		&FillDeduction{Section: "80d_parents", Target: parentsHealth},
	}

	registry.Register(Template{
		Name:        "max_80c",
		Description: fmt.Sprintf("Invest the full %s section 80C limit", domain.FormatINR(limits.Section80C)),
		Transforms:  []InputTransform{max80C},
	})
	registry.Register(Template{
		Name:        "max_nps",
		Description: fmt.Sprintf("Put %s extra into NPS under section 80CCD(1B)", domain.FormatINR(limits.Section80CCD1B)),
		Transforms:  []InputTransform{maxNPS},
	})
	registry.Register(Template{
		Name:        "max_health",
		Description: fmt.Sprintf("Buy health cover of %s for self and %s for parents", domain.FormatINR(selfHealth), domain.FormatINR(parentsHealth)),
		Transforms:  maxHealth,
	})
	registry.Register(Template{
		Name:        "max_all",
		Description: "Claim every investment and insurance deduction in full",
		Transforms:  append([]InputTransform{max80C, maxNPS}, maxHealth...),
	})

	return registry
}

// ApplyTemplate applies a template to a base snapshot
func ApplyTemplate(base domain.TaxpayerInput, template Template) (domain.TaxpayerInput, error) {
	if len(template.Transforms) == 0 {
		return clone(base), nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList splits a comma-separated list of template names,
// dropping blanks.
func ParseTemplateList(templateList string) []string {
	var names []string
	for _, part := range strings.Split(templateList, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		t := registry.templates[name]
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", t.Name, t.Description))
	}
	return sb.String()
}

