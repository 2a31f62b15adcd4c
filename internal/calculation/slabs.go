package calculation

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxFromSlabs walks an ordered, contiguous slab table and sums the tax owed
// on each band. Non-positive income owes nothing.
func TaxFromSlabs(taxableIncome decimal.Decimal, slabs []domain.Slab) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	for _, slab := range slabs {
		if taxableIncome.LessThanOrEqual(slab.From) {
			break
		}
		upper := taxableIncome
		if !slab.Open() {
			upper = decimal.Min(taxableIncome, slab.UpTo)
		}
		incomeInSlab := upper.Sub(slab.From)
		if incomeInSlab.GreaterThan(decimal.Zero) {
			tax = tax.Add(incomeInSlab.Mul(slab.Rate))
		}
	}
	return tax
}

// MarginalRate returns the rate of the band taxableIncome falls in.
func MarginalRate(taxableIncome decimal.Decimal, slabs []domain.Slab) decimal.Decimal {
	rate := decimal.Zero
	for _, slab := range slabs {
		if taxableIncome.LessThanOrEqual(slab.From) {
			break
		}
		rate = slab.Rate
	}
	return rate
}
