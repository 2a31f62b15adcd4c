package domain

import "github.com/shopspring/decimal"

// Slab is one band of a progressive rate table. A zero UpTo marks the open
// top band.
type Slab struct {
	From decimal.Decimal `yaml:"from" json:"from"`
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Open reports whether the band has no upper bound.
func (s Slab) Open() bool {
	return s.UpTo.IsZero()
}

// SurchargeTier applies Rate to the tax when taxable income exceeds Threshold.
type SurchargeTier struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// RulesMetadata describes which year a rules table covers.
type RulesMetadata struct {
	FinancialYear  string `yaml:"financial_year" json:"financial_year"`
	AssessmentYear string `yaml:"assessment_year" json:"assessment_year"`
	Description    string `yaml:"description" json:"description"`
}

// NewRegimeRules holds the section 115BAC figures.
type NewRegimeRules struct {
	Slabs             []Slab          `yaml:"slabs" json:"slabs"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	RebateLimit       decimal.Decimal `yaml:"rebate_limit" json:"rebate_limit"`
	SurchargeTiers    []SurchargeTier `yaml:"surcharge_tiers" json:"surcharge_tiers"`
	EmployerNPSRate   decimal.Decimal `yaml:"employer_nps_rate" json:"employer_nps_rate"`
}

// AgeBandedSlabs keeps one old-regime table per age band.
type AgeBandedSlabs struct {
	Standard    []Slab `yaml:"standard" json:"standard"`
	Senior      []Slab `yaml:"senior" json:"senior"`
	SuperSenior []Slab `yaml:"super_senior" json:"super_senior"`
}

// DeductionLimits are the statutory caps used by the old regime.
type DeductionLimits struct {
	Section80C                decimal.Decimal `yaml:"section_80c" json:"section_80c"`
	Section80CCD1B            decimal.Decimal `yaml:"section_80ccd1b" json:"section_80ccd1b"`
	EmployeeNPSRate           decimal.Decimal `yaml:"employee_nps_rate" json:"employee_nps_rate"`
	EmployerNPSRatePrivate    decimal.Decimal `yaml:"employer_nps_rate_private" json:"employer_nps_rate_private"`
	EmployerNPSRateGovernment decimal.Decimal `yaml:"employer_nps_rate_government" json:"employer_nps_rate_government"`

	Section80DSelf          decimal.Decimal `yaml:"section_80d_self" json:"section_80d_self"`
	Section80DSelfSenior    decimal.Decimal `yaml:"section_80d_self_senior" json:"section_80d_self_senior"`
	Section80DParents       decimal.Decimal `yaml:"section_80d_parents" json:"section_80d_parents"`
	Section80DParentsSenior decimal.Decimal `yaml:"section_80d_parents_senior" json:"section_80d_parents_senior"`

	Section80GQualifyingRate decimal.Decimal `yaml:"section_80g_qualifying_rate" json:"section_80g_qualifying_rate"`

	Section80GGAnnualCap      decimal.Decimal `yaml:"section_80gg_annual_cap" json:"section_80gg_annual_cap"`
	Section80GGIncomeRate     decimal.Decimal `yaml:"section_80gg_income_rate" json:"section_80gg_income_rate"`
	Section80GGRentExcessRate decimal.Decimal `yaml:"section_80gg_rent_excess_rate" json:"section_80gg_rent_excess_rate"`
	Section80UNormal          decimal.Decimal `yaml:"section_80u_normal" json:"section_80u_normal"`
	Section80USevere          decimal.Decimal `yaml:"section_80u_severe" json:"section_80u_severe"`
	SelfOccupiedInterestCap   decimal.Decimal `yaml:"self_occupied_interest_cap" json:"self_occupied_interest_cap"`
	HRAMetroRate              decimal.Decimal `yaml:"hra_metro_rate" json:"hra_metro_rate"`
	HRANonMetroRate           decimal.Decimal `yaml:"hra_non_metro_rate" json:"hra_non_metro_rate"`
	HRARentExcessRate         decimal.Decimal `yaml:"hra_rent_excess_rate" json:"hra_rent_excess_rate"`
}

// OldRegimeRules holds the figures of the deduction-rich regime.
type OldRegimeRules struct {
	Slabs             AgeBandedSlabs  `yaml:"slabs" json:"slabs"`
	SeniorAge         int             `yaml:"senior_age" json:"senior_age"`
	SuperSeniorAge    int             `yaml:"super_senior_age" json:"super_senior_age"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	RebateLimit       decimal.Decimal `yaml:"rebate_limit" json:"rebate_limit"`
	SurchargeTiers    []SurchargeTier `yaml:"surcharge_tiers" json:"surcharge_tiers"`
	Limits            DeductionLimits `yaml:"limits" json:"limits"`
}

// SlabsForAge picks the table for the taxpayer's age band.
func (r OldRegimeRules) SlabsForAge(age int) []Slab {
	switch {
	case age >= r.SuperSeniorAge:
		return r.Slabs.SuperSenior
	case age >= r.SeniorAge:
		return r.Slabs.Senior
	default:
		return r.Slabs.Standard
	}
}

// IsSenior reports whether age falls in the senior or super-senior band.
func (r OldRegimeRules) IsSenior(age int) bool {
	return age >= r.SeniorAge
}

// TaxRules is the complete rules table for one assessment year.
type TaxRules struct {
	Metadata RulesMetadata   `yaml:"metadata" json:"metadata"`
	CessRate decimal.Decimal `yaml:"cess_rate" json:"cess_rate"`
	New      NewRegimeRules  `yaml:"new_regime" json:"new_regime"`
	Old      OldRegimeRules  `yaml:"old_regime" json:"old_regime"`
}

func lakh(n float64) decimal.Decimal {
	return decimal.NewFromFloat(n).Mul(decimal.NewFromInt(100000))
}

func pct(n int64) decimal.Decimal {
	return decimal.New(n, -2)
}

// DefaultTaxRules returns the FY 2025-26 (AY 2026-27) rules.
func DefaultTaxRules() TaxRules {
	return TaxRules{
		Metadata: RulesMetadata{
			FinancialYear:  "2025-26",
			AssessmentYear: "2026-27",
			Description:    "Income-tax rates for individuals, Finance Act 2025",
		},
		CessRate: pct(4),
		New: NewRegimeRules{
			Slabs: []Slab{
				{From: decimal.Zero, UpTo: lakh(4), Rate: decimal.Zero},
				{From: lakh(4), UpTo: lakh(8), Rate: pct(5)},
				{From: lakh(8), UpTo: lakh(12), Rate: pct(10)},
				{From: lakh(12), UpTo: lakh(16), Rate: pct(15)},
				{From: lakh(16), UpTo: lakh(20), Rate: pct(20)},
				{From: lakh(20), UpTo: lakh(24), Rate: pct(25)},
				{From: lakh(24), Rate: pct(30)},
			},
			StandardDeduction: decimal.NewFromInt(75000),
			RebateLimit:       lakh(12),
			SurchargeTiers: []SurchargeTier{
				{Threshold: lakh(50), Rate: pct(10)},
				{Threshold: lakh(100), Rate: pct(15)},
				{Threshold: lakh(200), Rate: pct(25)},
			},
			EmployerNPSRate: pct(14),
		},
		Old: OldRegimeRules{
			Slabs: AgeBandedSlabs{
				Standard: []Slab{
					{From: decimal.Zero, UpTo: lakh(2.5), Rate: decimal.Zero},
					{From: lakh(2.5), UpTo: lakh(5), Rate: pct(5)},
					{From: lakh(5), UpTo: lakh(10), Rate: pct(20)},
					{From: lakh(10), Rate: pct(30)},
				},
				Senior: []Slab{
					{From: decimal.Zero, UpTo: lakh(3), Rate: decimal.Zero},
					{From: lakh(3), UpTo: lakh(5), Rate: pct(5)},
					{From: lakh(5), UpTo: lakh(10), Rate: pct(20)},
					{From: lakh(10), Rate: pct(30)},
				},
				SuperSenior: []Slab{
					{From: decimal.Zero, UpTo: lakh(5), Rate: decimal.Zero},
					{From: lakh(5), UpTo: lakh(10), Rate: pct(20)},
					{From: lakh(10), Rate: pct(30)},
				},
			},
			SeniorAge:         60,
			SuperSeniorAge:    80,
			StandardDeduction: decimal.NewFromInt(50000),
			RebateLimit:       lakh(5),
			SurchargeTiers: []SurchargeTier{
				{Threshold: lakh(50), Rate: pct(10)},
				{Threshold: lakh(100), Rate: pct(15)},
				{Threshold: lakh(200), Rate: pct(25)},
				{Threshold: lakh(500), Rate: pct(37)},
			},
			Limits: DeductionLimits{
				Section80C:                lakh(1.5),
				Section80CCD1B:            decimal.NewFromInt(50000),
				EmployeeNPSRate:           pct(10),
				EmployerNPSRatePrivate:    pct(10),
				EmployerNPSRateGovernment: pct(14),

				Section80DSelf:          decimal.NewFromInt(25000),
				Section80DSelfSenior:    decimal.NewFromInt(50000),
				Section80DParents:       decimal.NewFromInt(25000),
				Section80DParentsSenior: decimal.NewFromInt(50000),

				Section80GQualifyingRate: pct(10),

				Section80GGAnnualCap:      decimal.NewFromInt(60000),
				Section80GGIncomeRate:     pct(25),
				Section80GGRentExcessRate: pct(10),
				Section80UNormal:          decimal.NewFromInt(75000),
				Section80USevere:          decimal.NewFromInt(125000),
				SelfOccupiedInterestCap:   lakh(2),
				HRAMetroRate:              pct(50),
				HRANonMetroRate:           pct(40),
				HRARentExcessRate:         pct(10),
			},
		},
	}
}
