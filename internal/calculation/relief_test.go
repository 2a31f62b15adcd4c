package calculation

import (
	"testing"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRebateCliff_OldRegime(t *testing.T) {
	engine := NewEngine()

	atLimit := engine.TaxOnIncome(domain.RegimeOld, d(500000), 35)
	assertAmount(t, "0", atLimit.TotalTax)
	assertAmount(t, "12500", atLimit.Rebate)

	above := engine.TaxOnIncome(domain.RegimeOld, d(500001), 35)
	// 5% of the 250000 band plus 20% of the rupee above 5 lakh, no partial rebate
	assertAmount(t, "12500.2", above.TaxBeforeSurcharge)
	assertAmount(t, "0", above.Rebate)
	assertAmount(t, "13000.208", above.TotalTax)
}

func TestApplyRebateWithMarginalRelief(t *testing.T) {
	limit := d(1200000)

	tests := []struct {
		name           string
		taxable        int64
		expectedTax    string
		expectedRelief string
	}{
		{"at the limit", 1200000, "0", "0"},
		{"100 above", 1200100, "100", "59915"},
		{"50000 above", 1250000, "50000", "17500"},
		{"relief runs out", 1275000, "71250", "0"},
		{"far above", 2000000, "200000", "0"},
	}
	slabs := domain.DefaultTaxRules().New.Slabs
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable := d(tt.taxable)
			outcome := ApplyRebateWithMarginalRelief(taxable, TaxFromSlabs(taxable, slabs), limit)
			assertAmount(t, tt.expectedTax, outcome.Tax)
			assertAmount(t, tt.expectedRelief, outcome.MarginalRelief)
		})
	}
}

func TestApplicableTier(t *testing.T) {
	tiers := domain.DefaultTaxRules().Old.SurchargeTiers

	assert.Equal(t, -1, ApplicableTier(d(5000000), tiers))
	assert.Equal(t, 0, ApplicableTier(d(5000001), tiers))
	assert.Equal(t, 1, ApplicableTier(d(10000001), tiers))
	assert.Equal(t, 2, ApplicableTier(d(50000000), tiers))
	assert.Equal(t, 3, ApplicableTier(d(50000001), tiers))
	assert.Equal(t, 2, ApplicableTier(d(900000000), domain.DefaultTaxRules().New.SurchargeTiers))
}

func TestSurcharge_MarginalReliefAtFiftyLakh(t *testing.T) {
	engine := NewEngine()

	below := engine.TaxOnIncome(domain.RegimeOld, d(5000000), 45)
	above := engine.TaxOnIncome(domain.RegimeOld, d(5000001), 45)

	assertAmount(t, "0", below.Surcharge)
	assertAmount(t, "0.1", above.SurchargeRate)
	assertAmount(t, "0.7", above.Surcharge)
	assertAmount(t, "131249.33", above.SurchargeRelief)

	increase := above.TaxBeforeSurcharge.Add(above.Surcharge).Sub(below.TaxBeforeSurcharge.Add(below.Surcharge))
	assert.True(t, increase.LessThanOrEqual(decimal.NewFromInt(1)), "tax plus surcharge grew by %s", increase)
}

func TestSurcharge_ContinuousAtEveryTier(t *testing.T) {
	engine := NewEngine()

	for _, regime := range []domain.Regime{domain.RegimeOld, domain.RegimeNew} {
		tiers := engine.Rules.Old.SurchargeTiers
		if regime == domain.RegimeNew {
			tiers = engine.Rules.New.SurchargeTiers
		}
		for _, tier := range tiers {
			below := engine.TaxOnIncome(regime, tier.Threshold, 45)
			above := engine.TaxOnIncome(regime, tier.Threshold.Add(decimal.NewFromInt(1)), 45)

			before := below.TaxBeforeSurcharge.Add(below.Surcharge)
			after := above.TaxBeforeSurcharge.Add(above.Surcharge)
			growth := after.Sub(before)

			assert.True(t, growth.GreaterThanOrEqual(decimal.Zero), "%s regime at %s: tax fell by %s", regime, tier.Threshold, growth.Neg())
			assert.True(t, growth.LessThanOrEqual(decimal.NewFromInt(1)), "%s regime at %s: tax grew by %s", regime, tier.Threshold, growth)
		}
	}
}

func TestSurcharge_FullRateWellAboveThreshold(t *testing.T) {
	engine := NewEngine()

	// 60 lakh old regime: slab tax 1612500, 10% surcharge without relief
	tc := engine.TaxOnIncome(domain.RegimeOld, d(6000000), 45)
	assertAmount(t, "1612500", tc.TaxBeforeSurcharge)
	assertAmount(t, "161250", tc.Surcharge)
	assertAmount(t, "0", tc.SurchargeRelief)
	assertAmount(t, "70950", tc.Cess)
	assertAmount(t, "1844700", tc.TotalTax)
}

func TestSurcharge_NewRegimeCappedAtTwentyFivePercent(t *testing.T) {
	engine := NewEngine()

	tc := engine.TaxOnIncome(domain.RegimeNew, d(100000000), 45)
	assertAmount(t, "0.25", tc.SurchargeRate)

	old := engine.TaxOnIncome(domain.RegimeOld, d(100000000), 45)
	assertAmount(t, "0.37", old.SurchargeRate)
}

func TestCess(t *testing.T) {
	assertAmount(t, "400", Cess(d(10000), decimal.New(4, -2)))
	assertAmount(t, "0", Cess(decimal.Zero, decimal.New(4, -2)))
}
