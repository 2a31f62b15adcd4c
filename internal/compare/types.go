package compare

import (
	"fmt"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation names the cheaper regime, or "either" when both cost the
// same.
type Recommendation string

const (
	RecommendOld    Recommendation = "old"
	RecommendNew    Recommendation = "new"
	RecommendEither Recommendation = "either"
)

// Regime maps the recommendation to a regime; ok is false for "either".
func (r Recommendation) Regime() (regime domain.Regime, ok bool) {
	switch r {
	case RecommendOld:
		return domain.RegimeOld, true
	case RecommendNew:
		return domain.RegimeNew, true
	default:
		return "", false
	}
}

// Suggestion is a tax-planning hint derived from a comparison.
type Suggestion struct {
	Section     string `json:"section,omitempty" yaml:"section,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Impact      string `json:"impact,omitempty" yaml:"impact,omitempty"`

	// PotentialSaving is an estimate at the 30% slab rate, when one applies.
	PotentialSaving *decimal.Decimal `json:"potential_saving,omitempty" yaml:"potential_saving,omitempty"`
}

// ComplianceReminder is a filing obligation every salaried taxpayer should
// keep in mind.
type ComplianceReminder struct {
	Reference   string `json:"reference" yaml:"reference"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// RegimeComparison puts both liabilities for one taxpayer side by side.
type RegimeComparison struct {
	Taxpayer       string `json:"taxpayer,omitempty" yaml:"taxpayer,omitempty"`
	FinancialYear  string `json:"financial_year" yaml:"financial_year"`
	AssessmentYear string `json:"assessment_year" yaml:"assessment_year"`

	Old domain.TaxResult `json:"old_regime" yaml:"old_regime"`
	New domain.TaxResult `json:"new_regime" yaml:"new_regime"`

	Recommended      Recommendation  `json:"recommended" yaml:"recommended"`
	Savings          decimal.Decimal `json:"savings" yaml:"savings"`
	MonthlySavings   decimal.Decimal `json:"monthly_savings" yaml:"monthly_savings"`
	OldMonthlyInHand decimal.Decimal `json:"old_monthly_in_hand" yaml:"old_monthly_in_hand"`
	NewMonthlyInHand decimal.Decimal `json:"new_monthly_in_hand" yaml:"new_monthly_in_hand"`

	Suggestions []Suggestion         `json:"suggestions" yaml:"suggestions"`
	Compliance  []ComplianceReminder `json:"compliance" yaml:"compliance"`
}

// Headline summarizes the outcome in one sentence.
func (c *RegimeComparison) Headline() string {
	regime, ok := c.Recommended.Regime()
	if !ok {
		return fmt.Sprintf("Both regimes cost the same: %s", domain.FormatINR(c.Old.TotalTax))
	}
	return fmt.Sprintf("%s saves you %s a year (%s a month)",
		regime.DisplayName(), domain.FormatINR(c.Savings), domain.FormatINR(c.MonthlySavings))
}

// Result returns the computation for a regime.
func (c *RegimeComparison) Result(regime domain.Regime) domain.TaxResult {
	if regime == domain.RegimeOld {
		return c.Old
	}
	return c.New
}
