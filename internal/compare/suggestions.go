package compare

import (
	"fmt"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// savings estimates assume the top old-regime slab
	suggestionRate = decimal.New(3, -1)

	lowDeductionThreshold = decimal.NewFromInt(200000)
	hraHintGrossIncome    = decimal.NewFromInt(500000)
)

// Suggest lists ways to lower the old-regime liability. Headroom is measured
// against what the old regime actually allowed, so an employee NPS
// contribution that already fills the 80C ceiling does not trigger the 80C
// hint. The list is never empty.
func (ce *CompareEngine) Suggest(input domain.TaxpayerInput, oldRegime, newRegime domain.TaxResult) []Suggestion {
	limits := ce.CalcEngine.Rules.Old.Limits
	dc := ce.CalcEngine.Deductions
	via := input.Deductions.ChapterVIA

	var suggestions []Suggestion

	split := dc.SplitNPS(decimal.Max(decimal.Zero, via.Section80C), decimal.Max(decimal.Zero, via.Section80CCD1), input.Salary.BasicPlusDA())
	used80C := split.UsedIn80C.Add(split.CCD1InLimit)
	if used80C.LessThan(limits.Section80C) {
		remaining := limits.Section80C.Sub(used80C)
		saving := decimal.Min(remaining.Mul(suggestionRate), limits.Section80C.Mul(suggestionRate)).Round(0)
		suggestions = append(suggestions, Suggestion{
			Section: "80C",
			Title:   "Maximize Section 80C Investments",
			Description: fmt.Sprintf("You can invest %s more in PPF, ELSS or life insurance to claim the full 80C benefit under the Old Regime.",
				domain.FormatINR(remaining)),
			Impact:          "Potential savings: " + domain.FormatINR(saving),
			PotentialSaving: &saving,
		})
	}

	ccd1b := dc.Section80CCD1B(split, via.Section80CCD1B)
	if ccd1b.LessThan(limits.Section80CCD1B) {
		saving := limits.Section80CCD1B.Sub(ccd1b).Mul(suggestionRate).Round(0)
		suggestions = append(suggestions, Suggestion{
			Section: "80CCD(1B)",
			Title:   "Consider NPS Investment",
			Description: fmt.Sprintf("Invest up to %s in NPS to claim the additional deduction under Section 80CCD(1B), over and above the 80C limit.",
				domain.FormatINR(limits.Section80CCD1B)),
			Impact:          "Potential savings: " + domain.FormatINR(saving),
			PotentialSaving: &saving,
		})
	}

	if via.Section80DSelf.Add(via.Section80DParents).LessThan(limits.Section80DSelf) {
		suggestions = append(suggestions, Suggestion{
			Section: "80D",
			Title:   "Get Health Insurance Coverage",
			Description: fmt.Sprintf("Health insurance premiums up to %s (%s for senior citizens) are deductible under 80D. Cover your parents for an additional deduction.",
				domain.FormatINR(limits.Section80DSelf), domain.FormatINR(limits.Section80DSelfSenior)),
			Impact: "Stay protected and save tax",
		})
	}

	if !oldRegime.TotalTax.LessThan(newRegime.TotalTax) && oldRegime.TotalDeductions.LessThan(lowDeductionThreshold) {
		suggestions = append(suggestions, Suggestion{
			Title:       "New Regime May Be Better",
			Description: "At your current level of deductions the New Regime costs less. The Old Regime only pays off if you can raise your deductions significantly.",
		})
	}

	hra := ce.CalcEngine.WithDerivedHRA(input.Salary, input.Deductions).Exemptions.HRAExemption
	if hra.IsZero() && oldRegime.GrossIncome.GreaterThan(hraHintGrossIncome) {
		suggestions = append(suggestions, Suggestion{
			Section:     "10(13A)",
			Title:       "Claim HRA Exemption",
			Description: "If you pay rent, record the rent and your HRA to claim the exemption under the Old Regime, or 80GG if your employer pays no HRA.",
		})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{
			Title:       "Great Tax Planning!",
			Description: "You are using most of the available deductions. Review your investments every year to keep them aligned with your goals.",
		})
	}
	return suggestions
}
