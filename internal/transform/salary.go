package transform

import (
	"fmt"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// RaiseSalary scales salary proper and the special allowances by Percent,
// rounding each component to the rupee. Perquisites and bonuses are kept.
type RaiseSalary struct {
	Percent decimal.Decimal
}

func (t *RaiseSalary) Name() string { return "raise_salary" }

func (t *RaiseSalary) Description() string {
	return fmt.Sprintf("Change salary by %s%%", t.Percent.String())
}

func (t *RaiseSalary) Validate(domain.TaxpayerInput) error {
	if t.Percent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return NewTransformError(t.Name(), "validate", "percent must be greater than -100", nil)
	}
	return nil
}

func (t *RaiseSalary) Apply(base domain.TaxpayerInput) (domain.TaxpayerInput, error) {
	out := clone(base)
	factor := decimal.NewFromInt(1).Add(t.Percent.Div(decimal.NewFromInt(100)))
	scale := func(v *decimal.Decimal) { *v = v.Mul(factor).Round(0) }

	scale(&out.Salary.Section17_1.BasicSalary)
	scale(&out.Salary.Section17_1.DearnessAllowance)

	sa := &out.Salary.SpecialAllowances
	for _, v := range []*decimal.Decimal{&sa.HRA, &sa.LTA, &sa.LeaveEncashment, &sa.Conveyance, &sa.Medical, &sa.Meal, &sa.Uniform, &sa.Other} {
		scale(v)
	}
	return out, nil
}

// SetRent replaces the annual rent paid and, when Metro is set, the city class.
type SetRent struct {
	Annual decimal.Decimal
	Metro  *bool
}

func (t *SetRent) Name() string { return "set_rent" }

func (t *SetRent) Description() string {
	desc := fmt.Sprintf("Pay %s rent a year", domain.FormatINR(t.Annual))
	if t.Metro != nil {
		if *t.Metro {
			desc += " in a metro city"
		} else {
			desc += " outside a metro city"
		}
	}
	return desc
}

func (t *SetRent) Validate(domain.TaxpayerInput) error {
	if t.Annual.IsNegative() {
		return NewTransformError(t.Name(), "validate", "rent cannot be negative", nil)
	}
	return nil
}

func (t *SetRent) Apply(base domain.TaxpayerInput) (domain.TaxpayerInput, error) {
	out := clone(base)
	out.Deductions.Exemptions.RentPaid = t.Annual
	if t.Metro != nil {
		out.Deductions.Exemptions.MetroCity = *t.Metro
	}
	return out, nil
}

// SetAge moves the taxpayer into another age band.
type SetAge struct {
	Age int
}

func (t *SetAge) Name() string { return "set_age" }

func (t *SetAge) Description() string { return fmt.Sprintf("Taxpayer aged %d", t.Age) }

func (t *SetAge) Validate(domain.TaxpayerInput) error {
	if t.Age < 0 || t.Age > 130 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("age %d out of range 0-130", t.Age), nil)
	}
	return nil
}

func (t *SetAge) Apply(base domain.TaxpayerInput) (domain.TaxpayerInput, error) {
	out := clone(base)
	out.Profile.Age = t.Age
	return out, nil
}
