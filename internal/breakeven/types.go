package breakeven

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// Result is the outcome of a break-even search for one taxpayer.
type Result struct {
	Success         bool   `json:"success"`
	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergence_info,omitempty"`

	// AlreadyFavorable is set when the old regime already costs no more than
	// the new one, so no additional deduction is needed.
	AlreadyFavorable bool `json:"already_favorable"`

	// AdditionalDeduction is the smallest extra old-regime deduction, in
	// whole rupees, at which old-regime tax drops to the new-regime tax.
	AdditionalDeduction decimal.Decimal `json:"additional_deduction"`

	CurrentDeductions    decimal.Decimal `json:"current_deductions"`
	BreakEvenDeductions  decimal.Decimal `json:"break_even_deductions"`
	CurrentTaxableIncome decimal.Decimal `json:"current_taxable_income"`
	BreakEvenTaxable     decimal.Decimal `json:"break_even_taxable_income"`

	CurrentOldTax     decimal.Decimal `json:"current_old_tax"`
	OldTaxAtBreakEven decimal.Decimal `json:"old_tax_at_break_even"`
	NewTax            decimal.Decimal `json:"new_tax"`
}

// TablePoint is one row of a break-even table: for a plain salary of
// GrossIncome, the old-regime deductions beyond the standard deduction
// needed to match the new regime.
type TablePoint struct {
	GrossIncome         decimal.Decimal `json:"gross_income"`
	NewTax              decimal.Decimal `json:"new_tax"`
	OldTaxWithoutClaims decimal.Decimal `json:"old_tax_without_claims"`
	RequiredDeductions  decimal.Decimal `json:"required_deductions"`
	Iterations          int             `json:"iterations"`
}

// DefaultTableIncomes are the gross salaries used when no list is given:
// 8 lakh to 50 lakh.
func DefaultTableIncomes() []decimal.Decimal {
	lakhs := []int64{8, 10, 12, 13, 15, 18, 20, 25, 30, 40, 50}
	incomes := make([]decimal.Decimal, len(lakhs))
	for i, l := range lakhs {
		incomes[i] = decimal.NewFromInt(l * 100000)
	}
	return incomes
}

// SolverOptions configures the search.
type SolverOptions struct {
	Tolerance     decimal.Decimal // search stops once the bracket is this narrow, in rupees
	MaxIterations int
	Concurrency   int // workers for BreakEvenTable
}

// DefaultSolverOptions searches to the rupee.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1),
		MaxIterations: 64,
		Concurrency:   4,
	}
}

// Validate checks the options.
func (o SolverOptions) Validate() error {
	if !o.Tolerance.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "tolerance must be positive",
		}
	}
	if o.MaxIterations <= 0 {
		return &BreakEvenError{
			Operation: "validate_options",
			Message:   "max_iterations must be positive",
		}
	}
	return nil
}

// plainSalary is a taxpayer with only a basic salary and no claims.
func plainSalary(gross decimal.Decimal, age int) domain.TaxpayerInput {
	return domain.TaxpayerInput{
		Profile: domain.UserProfile{Age: age},
		Salary:  domain.SalaryBreakdown{Section17_1: domain.Section17_1{BasicSalary: gross}},
	}
}

// BreakEvenError represents errors from the break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
