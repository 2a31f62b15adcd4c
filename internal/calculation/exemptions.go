package calculation

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionCalculator applies the statutory caps of the old regime.
type DeductionCalculator struct {
	Limits domain.DeductionLimits
}

// NewDeductionCalculator uses the FY 2025-26 limits.
func NewDeductionCalculator() *DeductionCalculator {
	return &DeductionCalculator{Limits: domain.DefaultTaxRules().Old.Limits}
}

// NewDeductionCalculatorWithLimits uses caller-supplied limits.
func NewDeductionCalculatorWithLimits(limits domain.DeductionLimits) *DeductionCalculator {
	return &DeductionCalculator{Limits: limits}
}

// HRAExemption is the least of the HRA received, rent paid minus 10% of
// basic+DA, and 50% (metro) or 40% of basic+DA, rounded to the rupee.
func (dc *DeductionCalculator) HRAExemption(basicPlusDA, hraReceived, rentPaid decimal.Decimal, isMetro bool) decimal.Decimal {
	if !hraReceived.IsPositive() || !rentPaid.IsPositive() {
		return decimal.Zero
	}

	rentExcess := rentPaid.Sub(basicPlusDA.Mul(dc.Limits.HRARentExcessRate))
	cityRate := dc.Limits.HRANonMetroRate
	if isMetro {
		cityRate = dc.Limits.HRAMetroRate
	}
	cityLimit := basicPlusDA.Mul(cityRate)

	exemption := decimal.Min(hraReceived, rentExcess, cityLimit)
	return decimal.Max(decimal.Zero, exemption).Round(0)
}

// HomeLoanInterestDeduction caps self-occupied interest; let-out interest is
// taken in full. The new regime allows none.
func (dc *DeductionCalculator) HomeLoanInterestDeduction(loan domain.HomeLoanInterest, regime domain.Regime) decimal.Decimal {
	if regime == domain.RegimeNew || !loan.InterestPaid.IsPositive() {
		return decimal.Zero
	}
	if loan.SelfOccupied {
		return decimal.Min(loan.InterestPaid, dc.Limits.SelfOccupiedInterestCap)
	}
	return loan.InterestPaid
}

// SalaryExemptionsTotal adds the HRA exemption derived from salary to the
// other section 10 / 16 items and the home-loan interest.
func (dc *DeductionCalculator) SalaryExemptionsTotal(salary domain.SalaryBreakdown, deductions domain.Deductions) (decimal.Decimal, []domain.DeductionItem) {
	ex := deductions.Exemptions
	hra := dc.HRAExemption(salary.BasicPlusDA(), salary.SpecialAllowances.HRA, ex.RentPaid, ex.MetroCity)
	homeLoan := dc.HomeLoanInterestDeduction(deductions.HomeLoan, domain.RegimeOld)

	items := []domain.DeductionItem{
		{Section: "10(13A)", Label: "HRA exemption", Claimed: salary.SpecialAllowances.HRA, Allowed: hra},
		{Section: "10(5)", Label: "Leave travel allowance", Claimed: ex.LTAExemption, Allowed: nonNegative(ex.LTAExemption)},
		{Section: "10(10)", Label: "Gratuity", Claimed: ex.GratuityExemption, Allowed: nonNegative(ex.GratuityExemption)},
		{Section: "10(10AA)", Label: "Leave encashment", Claimed: ex.LeaveEncashmentExemption, Allowed: nonNegative(ex.LeaveEncashmentExemption)},
		{Section: "16(iii)", Label: "Professional tax", Claimed: ex.ProfessionalTax, Allowed: nonNegative(ex.ProfessionalTax)},
		{Section: "16(ii)", Label: "Entertainment allowance", Claimed: ex.EntertainmentAllowance, Allowed: nonNegative(ex.EntertainmentAllowance)},
		{Section: "24(b)", Label: "Home loan interest", Claimed: deductions.HomeLoan.InterestPaid, Allowed: homeLoan},
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Allowed)
	}
	return total, items
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, d)
}
