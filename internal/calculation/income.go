package calculation

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateGrossIncome sums every salary component: 17(1), the special
// allowances (HRA at the amount received), perquisites and profits in lieu.
func CalculateGrossIncome(salary domain.SalaryBreakdown) decimal.Decimal {
	return decimal.Sum(
		salary.Section17_1.Total(),
		salary.SpecialAllowances.Total(),
		salary.Section17_2.Total(),
		salary.Section17_3.Total(),
	)
}
