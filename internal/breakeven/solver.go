package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/itrgo/internal/calculation"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Solver finds how much more a taxpayer would have to claim under the old
// regime for it to cost no more than the new one.
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve binary-searches the additional deduction in whole rupees. Old-regime
// tax never increases as taxable income falls, and at zero taxable income it
// is zero, so a break-even point always exists between zero and the current
// old-regime taxable income.
func (s *Solver) Solve(ctx context.Context, input domain.TaxpayerInput) (*Result, error) {
	if s.CalcEngine == nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "calculation engine is required"}
	}
	if err := s.Options.Validate(); err != nil {
		return nil, err
	}

	oldRegime, newRegime := s.CalcEngine.CalculateBoth(input)
	age := input.Profile.Age
	target := newRegime.TotalTax
	oldTaxAt := func(extra decimal.Decimal) decimal.Decimal {
		taxable := decimal.Max(decimal.Zero, oldRegime.TaxableIncome.Sub(extra))
		return s.CalcEngine.TaxOnIncome(domain.RegimeOld, taxable, age).TotalTax
	}

	result := &Result{
		CurrentDeductions:    oldRegime.TotalDeductions,
		CurrentTaxableIncome: oldRegime.TaxableIncome,
		CurrentOldTax:        oldRegime.TotalTax,
		NewTax:               target,
	}

	if !oldRegime.TotalTax.GreaterThan(target) {
		result.Success = true
		result.AlreadyFavorable = true
		result.ConvergenceInfo = "old regime already costs no more than the new regime"
		s.finish(result, decimal.Zero, oldRegime.TotalTax)
		return result, nil
	}

	// invariant: oldTaxAt(lo) > target and oldTaxAt(hi) <= target
	lo := decimal.Zero
	hi := oldRegime.TaxableIncome.Ceil()
	two := decimal.NewFromInt(2)

	for hi.Sub(lo).GreaterThan(s.Options.Tolerance) {
		if result.Iterations >= s.Options.MaxIterations {
			result.ConvergenceInfo = fmt.Sprintf("stopped after %d iterations; break-even lies within %s",
				result.Iterations, domain.FormatINR(hi.Sub(lo)))
			s.finish(result, hi, oldTaxAt(hi))
			return result, nil
		}
		result.Iterations++

		select {
		case <-ctx.Done():
			return nil, &BreakEvenError{
				Operation: "solve",
				Message:   "search cancelled",
				Cause:     ctx.Err(),
			}
		default:
		}

		mid := lo.Add(hi).Div(two).Floor()
		if oldTaxAt(mid).GreaterThan(target) {
			lo = mid
		} else {
			hi = mid
		}
	}

	result.Success = true
	result.ConvergenceInfo = fmt.Sprintf("converged in %d iterations to within %s",
		result.Iterations, domain.FormatINR(s.Options.Tolerance))
	s.finish(result, hi, oldTaxAt(hi))

	s.CalcEngine.Logger.Debugf("break-even: additional=%s iterations=%d old=%s new=%s",
		hi.StringFixed(0), result.Iterations, result.CurrentOldTax.StringFixed(2), target.StringFixed(2))
	return result, nil
}

func (s *Solver) finish(result *Result, additional, oldTax decimal.Decimal) {
	result.AdditionalDeduction = additional
	result.BreakEvenDeductions = result.CurrentDeductions.Add(additional)
	result.BreakEvenTaxable = decimal.Max(decimal.Zero, result.CurrentTaxableIncome.Sub(additional))
	result.OldTaxAtBreakEven = oldTax
}
