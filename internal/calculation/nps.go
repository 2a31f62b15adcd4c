package calculation

import (
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// NPSSplit shows how an employee NPS contribution is shared between the
// composite 80C/80CCD(1) ceiling and the separate 80CCD(1B) allowance.
type NPSSplit struct {
	MaxEmployeeNPS     decimal.Decimal `json:"max_employee_nps"`
	UsedIn80C          decimal.Decimal `json:"used_in_80c"`
	RemainingFor80CCD1 decimal.Decimal `json:"remaining_for_80ccd1"`
	CCD1InLimit        decimal.Decimal `json:"ccd1_in_limit"`
	ExcessCCD1         decimal.Decimal `json:"excess_ccd1"`
	AutoCCD1B          decimal.Decimal `json:"auto_ccd1b"`
}

// SplitNPS allocates the 80CCD(1) contribution. The part that fits the 10%
// of basic+DA cap and the room left under the 80C ceiling counts towards
// that ceiling; whatever is left over spills into 80CCD(1B).
func (dc *DeductionCalculator) SplitNPS(section80C, section80CCD1, basicPlusDA decimal.Decimal) NPSSplit {
	maxEmployeeNPS := basicPlusDA.Mul(dc.Limits.EmployeeNPSRate).Round(0)
	usedIn80C := decimal.Min(section80C, dc.Limits.Section80C)
	remaining := decimal.Max(decimal.Zero, dc.Limits.Section80C.Sub(usedIn80C))
	ccd1InLimit := decimal.Min(section80CCD1, maxEmployeeNPS, remaining)
	excess := decimal.Max(decimal.Zero, section80CCD1.Sub(ccd1InLimit))

	return NPSSplit{
		MaxEmployeeNPS:     maxEmployeeNPS,
		UsedIn80C:          usedIn80C,
		RemainingFor80CCD1: remaining,
		CCD1InLimit:        ccd1InLimit,
		ExcessCCD1:         excess,
		AutoCCD1B:          decimal.Min(excess, dc.Limits.Section80CCD1B),
	}
}

// Section80CCD1B adds any explicitly claimed 1B contribution to the spill-over
// and caps the sum.
func (dc *DeductionCalculator) Section80CCD1B(split NPSSplit, explicit decimal.Decimal) decimal.Decimal {
	return decimal.Min(split.AutoCCD1B.Add(nonNegative(explicit)), dc.Limits.Section80CCD1B)
}

// EmployerNPS caps the employer contribution under 80CCD(2) at rate times
// basic+DA.
func EmployerNPS(contribution, basicPlusDA, rate decimal.Decimal) decimal.Decimal {
	if !contribution.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(contribution, basicPlusDA.Mul(rate).Round(0))
}

// EmployerNPSRate picks the old-regime 80CCD(2) rate for the employer type.
func (dc *DeductionCalculator) EmployerNPSRate(category domain.EmployerCategory) decimal.Decimal {
	if category == domain.EmployerGovernment {
		return dc.Limits.EmployerNPSRateGovernment
	}
	return dc.Limits.EmployerNPSRatePrivate
}
