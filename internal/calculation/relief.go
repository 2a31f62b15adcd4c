package calculation

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// RebateOutcome is the tax left after section 87A and the new-regime
// marginal relief around the rebate limit.
type RebateOutcome struct {
	Tax            decimal.Decimal
	Rebate         decimal.Decimal
	MarginalRelief decimal.Decimal
}

// ApplyRebate zeroes the slab tax when taxable income is within the rebate
// limit.
func ApplyRebate(taxableIncome, slabTax, rebateLimit decimal.Decimal) RebateOutcome {
	if taxableIncome.LessThanOrEqual(rebateLimit) {
		return RebateOutcome{Tax: decimal.Zero, Rebate: slabTax}
	}
	return RebateOutcome{Tax: slabTax}
}

// ApplyRebateWithMarginalRelief is ApplyRebate followed by the new-regime
// rule that tax just above the rebate limit may not exceed the income above
// that limit.
func ApplyRebateWithMarginalRelief(taxableIncome, slabTax, rebateLimit decimal.Decimal) RebateOutcome {
	outcome := ApplyRebate(taxableIncome, slabTax, rebateLimit)
	if taxableIncome.LessThanOrEqual(rebateLimit) {
		return outcome
	}
	excess := taxableIncome.Sub(rebateLimit)
	if slabTax.GreaterThan(excess) {
		outcome.Tax = excess
		outcome.MarginalRelief = slabTax.Sub(excess)
	}
	return outcome
}

// SurchargeOutcome is the surcharge after marginal relief at the applicable
// tier.
type SurchargeOutcome struct {
	Surcharge decimal.Decimal
	Rate      decimal.Decimal
	Relief    decimal.Decimal
}

// ApplicableTier returns the index of the highest tier whose threshold
// taxable income exceeds, or -1.
func ApplicableTier(taxableIncome decimal.Decimal, tiers []domain.SurchargeTier) int {
	idx := -1
	for i, tier := range tiers {
		if taxableIncome.GreaterThan(tier.Threshold) {
			idx = i
		}
	}
	return idx
}

// Surcharge computes the surcharge on tax with marginal relief: crossing a
// tier threshold may not cost more in tax plus surcharge than the income
// above the threshold. Tax at the threshold includes the lower tier's
// surcharge so the total stays continuous at every boundary.
func Surcharge(taxableIncome, tax decimal.Decimal, tiers []domain.SurchargeTier, slabs []domain.Slab) SurchargeOutcome {
	idx := ApplicableTier(taxableIncome, tiers)
	if idx < 0 {
		return SurchargeOutcome{Surcharge: decimal.Zero, Rate: decimal.Zero, Relief: decimal.Zero}
	}

	tier := tiers[idx]
	surcharge := tax.Mul(tier.Rate)

	lowerRate := decimal.Zero
	if idx > 0 {
		lowerRate = tiers[idx-1].Rate
	}
	taxAtThreshold := TaxFromSlabs(tier.Threshold, slabs).Mul(decimal.NewFromInt(1).Add(lowerRate))
	ceiling := taxAtThreshold.Add(taxableIncome.Sub(tier.Threshold))

	relief := decimal.Zero
	if tax.Add(surcharge).GreaterThan(ceiling) {
		clamped := decimal.Max(decimal.Zero, ceiling.Sub(tax))
		relief = surcharge.Sub(clamped)
		surcharge = clamped
	}
	return SurchargeOutcome{Surcharge: surcharge, Rate: tier.Rate, Relief: relief}
}

// Cess is charged on tax plus surcharge and is never relieved.
func Cess(taxPlusSurcharge, rate decimal.Decimal) decimal.Decimal {
	return taxPlusSurcharge.Mul(rate)
}
