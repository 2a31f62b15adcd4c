package calculation

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine computes liabilities under both regimes from one rules table. An
// Engine is not modified after construction apart from SetLogger, so a single
// instance can serve concurrent callers.
type Engine struct {
	Rules      domain.TaxRules
	Deductions *DeductionCalculator
	Logger     Logger
}

// NewEngine creates an engine with the FY 2025-26 rules.
func NewEngine() *Engine {
	return NewEngineWithRules(domain.DefaultTaxRules())
}

// NewEngineWithRules creates an engine with a custom rules table.
func NewEngineWithRules(rules domain.TaxRules) *Engine {
	return &Engine{
		Rules:      rules,
		Deductions: NewDeductionCalculatorWithLimits(rules.Old.Limits),
		Logger:     NopLogger{},
	}
}

// SetLogger sets a custom logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// TaxComputation traces taxable income through slabs, rebate, surcharge and
// cess.
type TaxComputation struct {
	TaxableIncome      decimal.Decimal
	SlabTax            decimal.Decimal
	Rebate             decimal.Decimal
	MarginalRelief     decimal.Decimal
	TaxBeforeSurcharge decimal.Decimal
	Surcharge          decimal.Decimal
	SurchargeRate      decimal.Decimal
	SurchargeRelief    decimal.Decimal
	Cess               decimal.Decimal
	TotalTax           decimal.Decimal
}

// TaxOnIncome runs the rate pipeline for a regime. Age only matters for the
// old regime's slab choice.
func (e *Engine) TaxOnIncome(regime domain.Regime, taxableIncome decimal.Decimal, age int) TaxComputation {
	taxable := nonNegative(taxableIncome)

	var (
		slabs   []domain.Slab
		tiers   []domain.SurchargeTier
		outcome RebateOutcome
	)
	if regime == domain.RegimeNew {
		slabs = e.Rules.New.Slabs
		tiers = e.Rules.New.SurchargeTiers
		outcome = ApplyRebateWithMarginalRelief(taxable, TaxFromSlabs(taxable, slabs), e.Rules.New.RebateLimit)
	} else {
		slabs = e.Rules.Old.SlabsForAge(age)
		tiers = e.Rules.Old.SurchargeTiers
		outcome = ApplyRebate(taxable, TaxFromSlabs(taxable, slabs), e.Rules.Old.RebateLimit)
	}
	slabTax := outcome.Tax.Add(outcome.Rebate).Add(outcome.MarginalRelief)

	surcharge := Surcharge(taxable, outcome.Tax, tiers, slabs)
	taxAfterSurcharge := outcome.Tax.Add(surcharge.Surcharge)
	cess := Cess(taxAfterSurcharge, e.Rules.CessRate)

	return TaxComputation{
		TaxableIncome:      taxable,
		SlabTax:            slabTax,
		Rebate:             outcome.Rebate,
		MarginalRelief:     outcome.MarginalRelief,
		TaxBeforeSurcharge: outcome.Tax,
		Surcharge:          surcharge.Surcharge,
		SurchargeRate:      surcharge.Rate,
		SurchargeRelief:    surcharge.Relief,
		Cess:               cess,
		TotalTax:           taxAfterSurcharge.Add(cess),
	}
}

// WithDerivedHRA returns a copy of deductions whose HRA exemption is
// recomputed from the salary and rent figures.
func (e *Engine) WithDerivedHRA(salary domain.SalaryBreakdown, deductions domain.Deductions) domain.Deductions {
	ex := deductions.Exemptions
	hra := e.Deductions.HRAExemption(salary.BasicPlusDA(), salary.SpecialAllowances.HRA, ex.RentPaid, ex.MetroCity)
	return deductions.WithHRAExemption(hra)
}

// NewRegimeDeductions allows the standard deduction and the employer NPS
// contribution, nothing else.
func (e *Engine) NewRegimeDeductions(salary domain.SalaryBreakdown, deductions domain.Deductions) domain.DeductionBreakdown {
	claimed := deductions.ChapterVIA.Section80CCD2
	employerNPS := EmployerNPS(claimed, salary.BasicPlusDA(), e.Rules.New.EmployerNPSRate)
	return domain.DeductionBreakdown{
		SalaryExemptions:  decimal.Zero,
		ChapterVIA:        employerNPS,
		StandardDeduction: e.Rules.New.StandardDeduction,
		Items: []domain.DeductionItem{
			{Section: "16(ia)", Label: "Standard deduction", Claimed: e.Rules.New.StandardDeduction, Allowed: e.Rules.New.StandardDeduction},
			{Section: "80CCD(2)", Label: "Employer NPS contribution", Claimed: claimed, Allowed: employerNPS},
		},
	}
}

// OldRegimeDeductions totals salary exemptions, Chapter VI-A and the
// standard deduction. 80G is measured against gross total income after the
// other Chapter VI-A deductions, and 80GG against what remains after 80G.
// 80GG is only available when no HRA is received.
func (e *Engine) OldRegimeDeductions(salary domain.SalaryBreakdown, deductions domain.Deductions, profile domain.UserProfile) domain.DeductionBreakdown {
	dc := e.Deductions
	via := deductions.ChapterVIA
	basicDA := salary.BasicPlusDA()
	standard := e.Rules.Old.StandardDeduction

	exemptions, items := dc.SalaryExemptionsTotal(salary, deductions)
	items = append([]domain.DeductionItem{
		{Section: "16(ia)", Label: "Standard deduction", Claimed: standard, Allowed: standard},
	}, items...)

	split := dc.SplitNPS(nonNegative(via.Section80C), nonNegative(via.Section80CCD1), basicDA)
	ccd1b := dc.Section80CCD1B(split, via.Section80CCD1B)
	employerNPS := EmployerNPS(via.Section80CCD2, basicDA, dc.EmployerNPSRate(via.EmployerCategory))
	medical := dc.MedicalInsurance(via.Section80DSelf, via.Section80DParents, profile.Age, profile.ParentsSeniorCitizen, e.Rules.Old.SeniorAge)
	educationLoan := nonNegative(via.Section80E)
	disability := dc.Disability(via.Section80U, via.DisabilitySeverity)

	beforeDonations := decimal.Sum(split.UsedIn80C, split.CCD1InLimit, ccd1b, employerNPS, medical, educationLoan, disability)

	grossTotalIncome := nonNegative(CalculateGrossIncome(salary).Sub(exemptions).Sub(standard))
	donationBase := nonNegative(grossTotalIncome.Sub(beforeDonations))
	donations := dc.Donations(via.Donations, donationBase)

	rent := decimal.Zero
	if !salary.SpecialAllowances.HRA.IsPositive() {
		rent = dc.RentWithoutHRA(via.Section80GGMonthlyRent, nonNegative(donationBase.Sub(donations)))
	}

	donated := decimal.Zero
	for _, d := range via.Donations {
		donated = donated.Add(nonNegative(d.Amount))
	}

	items = append(items,
		domain.DeductionItem{Section: "80C", Label: "Investments and payments", Claimed: via.Section80C, Allowed: split.UsedIn80C},
		domain.DeductionItem{Section: "80CCD(1)", Label: "Employee NPS within 80C ceiling", Claimed: via.Section80CCD1, Allowed: split.CCD1InLimit},
		domain.DeductionItem{Section: "80CCD(1B)", Label: "Additional NPS", Claimed: split.ExcessCCD1.Add(nonNegative(via.Section80CCD1B)), Allowed: ccd1b},
		domain.DeductionItem{Section: "80CCD(2)", Label: "Employer NPS contribution", Claimed: via.Section80CCD2, Allowed: employerNPS},
		domain.DeductionItem{Section: "80D", Label: "Medical insurance", Claimed: via.Section80DSelf.Add(via.Section80DParents), Allowed: medical},
		domain.DeductionItem{Section: "80E", Label: "Education loan interest", Claimed: via.Section80E, Allowed: educationLoan},
		domain.DeductionItem{Section: "80G", Label: "Donations", Claimed: donated, Allowed: donations},
		domain.DeductionItem{Section: "80GG", Label: "Rent without HRA", Claimed: via.Section80GGMonthlyRent.Mul(decimal.NewFromInt(12)), Allowed: rent},
		domain.DeductionItem{Section: "80U", Label: "Disability", Claimed: via.Section80U, Allowed: disability},
	)

	return domain.DeductionBreakdown{
		SalaryExemptions:  exemptions,
		ChapterVIA:        decimal.Sum(beforeDonations, donations, rent),
		StandardDeduction: standard,
		Items:             items,
	}
}

// CalculateNewRegimeTax computes the section 115BAC liability.
func (e *Engine) CalculateNewRegimeTax(salary domain.SalaryBreakdown, deductions domain.Deductions) domain.TaxResult {
	breakdown := e.NewRegimeDeductions(salary, deductions)
	return e.buildResult(domain.RegimeNew, CalculateGrossIncome(salary), breakdown, 0)
}

// CalculateOldRegimeTax computes the liability under the deduction-rich
// regime.
func (e *Engine) CalculateOldRegimeTax(salary domain.SalaryBreakdown, deductions domain.Deductions, profile domain.UserProfile) domain.TaxResult {
	breakdown := e.OldRegimeDeductions(salary, deductions, profile)
	return e.buildResult(domain.RegimeOld, CalculateGrossIncome(salary), breakdown, profile.Age)
}

// CalculateBoth runs both regimes for one taxpayer snapshot.
func (e *Engine) CalculateBoth(input domain.TaxpayerInput) (oldRegime, newRegime domain.TaxResult) {
	oldRegime = e.CalculateOldRegimeTax(input.Salary, input.Deductions, input.Profile)
	newRegime = e.CalculateNewRegimeTax(input.Salary, input.Deductions)
	return oldRegime, newRegime
}

func (e *Engine) buildResult(regime domain.Regime, gross decimal.Decimal, breakdown domain.DeductionBreakdown, age int) domain.TaxResult {
	total := breakdown.Total()
	taxable := nonNegative(gross.Sub(total))
	tc := e.TaxOnIncome(regime, taxable, age)

	e.Logger.Debugf("%s regime: gross=%s deductions=%s taxable=%s slab_tax=%s surcharge=%s cess=%s total=%s",
		regime, gross.StringFixed(0), total.StringFixed(0), taxable.StringFixed(0),
		tc.SlabTax.StringFixed(2), tc.Surcharge.StringFixed(2), tc.Cess.StringFixed(2), tc.TotalTax.StringFixed(2))

	result := domain.TaxResult{
		Regime:             regime,
		GrossIncome:        gross,
		TotalDeductions:    total,
		TaxableIncome:      taxable,
		TaxBeforeSurcharge: tc.TaxBeforeSurcharge,
		Rebate:             tc.Rebate,
		Surcharge:          tc.Surcharge,
		SurchargeRate:      tc.SurchargeRate,
		TaxAfterSurcharge:  tc.TaxBeforeSurcharge.Add(tc.Surcharge),
		Cess:               tc.Cess,
		TotalTax:           tc.TotalTax,
		EffectiveTaxRate:   EffectiveRate(tc.TotalTax, gross),
		NetIncome:          gross.Sub(tc.TotalTax),
		DeductionBreakdown: &breakdown,
	}
	if tc.MarginalRelief.IsPositive() {
		relief := tc.MarginalRelief
		result.MarginalRelief = &relief
	}
	if tc.SurchargeRelief.IsPositive() {
		relief := tc.SurchargeRelief
		result.SurchargeRelief = &relief
	}
	return result
}

// EffectiveRate is total tax as a percentage of gross income, to two places.
func EffectiveRate(totalTax, gross decimal.Decimal) decimal.Decimal {
	if !gross.IsPositive() {
		return decimal.Zero
	}
	return totalTax.Div(gross).Mul(decimal.NewFromInt(100)).Round(2)
}

var defaultEngine = NewEngine()

// CalculateNewRegimeTax uses the FY 2025-26 rules.
func CalculateNewRegimeTax(salary domain.SalaryBreakdown, deductions domain.Deductions) domain.TaxResult {
	return defaultEngine.CalculateNewRegimeTax(salary, deductions)
}

// CalculateOldRegimeTax uses the FY 2025-26 rules.
func CalculateOldRegimeTax(salary domain.SalaryBreakdown, deductions domain.Deductions, profile domain.UserProfile) domain.TaxResult {
	return defaultEngine.CalculateOldRegimeTax(salary, deductions, profile)
}
