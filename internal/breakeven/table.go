package breakeven

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// BreakEvenTable solves the break-even point for a plain salary at each
// income level. Rows keep the order of incomes; the first error aborts the
// table.
func (s *Solver) BreakEvenTable(ctx context.Context, incomes []decimal.Decimal, age int) ([]TablePoint, error) {
	if len(incomes) == 0 {
		incomes = DefaultTableIncomes()
	}
	workers := s.Options.Concurrency
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	points := make([]TablePoint, len(incomes))
	errs := make([]error, len(incomes))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, gross := range incomes {
		wg.Add(1)
		go func(i int, gross decimal.Decimal) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := s.Solve(ctx, plainSalary(gross, age))
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			points[i] = TablePoint{
				GrossIncome:         gross,
				NewTax:              result.NewTax,
				OldTaxWithoutClaims: result.CurrentOldTax,
				RequiredDeductions:  result.AdditionalDeduction,
				Iterations:          result.Iterations,
			}
		}(i, gross)
	}
	wg.Wait()

	// report the root cause rather than a sibling's cancellation
	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if first == nil || (errors.Is(first, context.Canceled) && !errors.Is(err, context.Canceled)) {
			first = err
		}
	}
	if first != nil {
		return nil, &BreakEvenError{
			Operation: "break_even_table",
			Message:   "failed to solve income level",
			Cause:     first,
		}
	}
	return points, nil
}
