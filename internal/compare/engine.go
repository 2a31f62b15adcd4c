package compare

import (
	"github.com/rgehrsitz/itrgo/internal/calculation"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine runs both regimes for a taxpayer and explains the difference.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a comparison engine; a nil engine uses the
// default FY 2025-26 rules.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewEngine()
	}
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare computes both regimes and the recommendation.
func (ce *CompareEngine) Compare(input domain.TaxpayerInput) *RegimeComparison {
	oldRegime, newRegime := ce.CalcEngine.CalculateBoth(input)

	comparison := Summarize(oldRegime, newRegime)
	comparison.Taxpayer = input.Name
	comparison.FinancialYear = ce.CalcEngine.Rules.Metadata.FinancialYear
	comparison.AssessmentYear = ce.CalcEngine.Rules.Metadata.AssessmentYear
	comparison.Suggestions = ce.Suggest(input, oldRegime, newRegime)
	comparison.Compliance = ComplianceReminders()

	ce.CalcEngine.Logger.Infof("compared regimes: old=%s new=%s recommended=%s",
		oldRegime.TotalTax.StringFixed(2), newRegime.TotalTax.StringFixed(2), comparison.Recommended)
	return comparison
}

// Summarize derives the recommendation and savings from two results.
// Suggestions and reminders are left empty.
func Summarize(oldRegime, newRegime domain.TaxResult) *RegimeComparison {
	diff := oldRegime.TotalTax.Sub(newRegime.TotalTax)

	recommended := RecommendEither
	switch {
	case diff.IsPositive():
		recommended = RecommendNew
	case diff.IsNegative():
		recommended = RecommendOld
	}

	savings := diff.Abs()
	return &RegimeComparison{
		Old:              oldRegime,
		New:              newRegime,
		Recommended:      recommended,
		Savings:          savings,
		MonthlySavings:   savings.Div(decimal.NewFromInt(12)).Round(0),
		OldMonthlyInHand: oldRegime.MonthlyNetIncome(),
		NewMonthlyInHand: newRegime.MonthlyNetIncome(),
	}
}
