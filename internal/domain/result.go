package domain

import "github.com/shopspring/decimal"

// Regime identifies one of the two tax regimes.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// DisplayName is the label used in reports.
func (r Regime) DisplayName() string {
	switch r {
	case RegimeOld:
		return "Old Regime"
	case RegimeNew:
		return "New Regime"
	default:
		return string(r)
	}
}

// DeductionItem is one line of the deduction breakdown, e.g. "80C".
type DeductionItem struct {
	Section string          `yaml:"section" json:"section"`
	Label   string          `yaml:"label" json:"label"`
	Claimed decimal.Decimal `yaml:"claimed" json:"claimed"`
	Allowed decimal.Decimal `yaml:"allowed" json:"allowed"`
}

// DeductionBreakdown splits TotalDeductions into its three sources.
type DeductionBreakdown struct {
	SalaryExemptions  decimal.Decimal `yaml:"salary_exemptions" json:"salary_exemptions"`
	ChapterVIA        decimal.Decimal `yaml:"chapter_via" json:"chapter_via"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	Items             []DeductionItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// Total of the three sources.
func (b DeductionBreakdown) Total() decimal.Decimal {
	return decimal.Sum(b.SalaryExemptions, b.ChapterVIA, b.StandardDeduction)
}

// TaxResult is the full liability computation for one regime.
type TaxResult struct {
	Regime             Regime          `yaml:"regime" json:"regime"`
	GrossIncome        decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	TotalDeductions    decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
	TaxableIncome      decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	TaxBeforeSurcharge decimal.Decimal `yaml:"tax_before_surcharge" json:"tax_before_surcharge"`
	Rebate             decimal.Decimal `yaml:"rebate" json:"rebate"`
	Surcharge          decimal.Decimal `yaml:"surcharge" json:"surcharge"`
	SurchargeRate      decimal.Decimal `yaml:"surcharge_rate" json:"surcharge_rate"`
	TaxAfterSurcharge  decimal.Decimal `yaml:"tax_after_surcharge" json:"tax_after_surcharge"`
	Cess               decimal.Decimal `yaml:"cess" json:"cess"`
	TotalTax           decimal.Decimal `yaml:"total_tax" json:"total_tax"`
	EffectiveTaxRate   decimal.Decimal `yaml:"effective_tax_rate" json:"effective_tax_rate"`
	NetIncome          decimal.Decimal `yaml:"net_income" json:"net_income"`

	// MarginalRelief is set only when the new-regime rebate relief near the
	// rebate limit reduced the tax.
	MarginalRelief *decimal.Decimal `yaml:"marginal_relief,omitempty" json:"marginal_relief,omitempty"`
	// SurchargeRelief is set only when surcharge marginal relief applied.
	SurchargeRelief    *decimal.Decimal    `yaml:"surcharge_relief,omitempty" json:"surcharge_relief,omitempty"`
	DeductionBreakdown *DeductionBreakdown `yaml:"deduction_breakdown,omitempty" json:"deduction_breakdown,omitempty"`
}

// MonthlyNetIncome is net income spread over twelve months, rounded to the rupee.
func (r TaxResult) MonthlyNetIncome() decimal.Decimal {
	return r.NetIncome.Div(decimal.NewFromInt(12)).Round(0)
}
