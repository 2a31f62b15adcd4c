package calculation

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// MedicalInsurance applies the 80D limits. The taxpayer's own limit rises at
// the senior age; the parents' limit rises when they are flagged senior.
// Preventive check-ups are inside these limits, not on top.
func (dc *DeductionCalculator) MedicalInsurance(selfPremium, parentsPremium decimal.Decimal, age int, parentsSenior bool, seniorAge int) decimal.Decimal {
	selfLimit := dc.Limits.Section80DSelf
	if age >= seniorAge {
		selfLimit = dc.Limits.Section80DSelfSenior
	}
	parentsLimit := dc.Limits.Section80DParents
	if parentsSenior {
		parentsLimit = dc.Limits.Section80DParentsSenior
	}
	return decimal.Min(nonNegative(selfPremium), selfLimit).
		Add(decimal.Min(nonNegative(parentsPremium), parentsLimit))
}

// DonationDeduction evaluates one 80G donation. The limited categories are
// measured against the qualifying limit of grossTotalIncome.
func (dc *DeductionCalculator) DonationDeduction(donation domain.Section80GDonation, grossTotalIncome decimal.Decimal) decimal.Decimal {
	amount := nonNegative(donation.Amount)
	qualifyingLimit := nonNegative(grossTotalIncome).Mul(dc.Limits.Section80GQualifyingRate)

	switch donation.Category {
	case domain.Donation100Unlimited:
		return amount
	case domain.Donation50Unlimited:
		return amount.Mul(half)
	case domain.Donation100Limited:
		return decimal.Min(amount, qualifyingLimit)
	case domain.Donation50Limited:
		return decimal.Min(amount.Mul(half), qualifyingLimit.Mul(half))
	default:
		return decimal.Zero
	}
}

// Donations sums the 80G deduction over all donations, each evaluated on its
// own against the full qualifying limit, rounded to the rupee.
func (dc *DeductionCalculator) Donations(donations []domain.Section80GDonation, grossTotalIncome decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range donations {
		total = total.Add(dc.DonationDeduction(d, grossTotalIncome))
	}
	return total.Round(0)
}

// RentWithoutHRA is the 80GG deduction: the least of the annual cap, 25% of
// total income, and rent paid in excess of 10% of total income.
func (dc *DeductionCalculator) RentWithoutHRA(monthlyRent, totalIncome decimal.Decimal) decimal.Decimal {
	if !monthlyRent.IsPositive() {
		return decimal.Zero
	}
	income := nonNegative(totalIncome)
	annualRent := monthlyRent.Mul(decimal.NewFromInt(12))
	rentExcess := decimal.Max(decimal.Zero, annualRent.Sub(income.Mul(dc.Limits.Section80GGRentExcessRate)))

	return decimal.Min(
		dc.Limits.Section80GGAnnualCap,
		income.Mul(dc.Limits.Section80GGIncomeRate),
		rentExcess,
	).Round(0)
}

// Disability caps the 80U claim by severity. Anything other than severe uses
// the normal ceiling.
func (dc *DeductionCalculator) Disability(amount decimal.Decimal, severity domain.DisabilitySeverity) decimal.Decimal {
	limit := dc.Limits.Section80UNormal
	if severity == domain.DisabilitySevere {
		limit = dc.Limits.Section80USevere
	}
	return decimal.Min(nonNegative(amount), limit)
}
