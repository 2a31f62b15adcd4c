package transform

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

type amountAccessor func(*domain.TaxpayerInput) *decimal.Decimal

// sections names the claim amounts a what-if can set.
var sections = map[string]amountAccessor{
	"80c":                func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80C },
	"80ccd1":             func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80CCD1 },
	"80ccd1b":            func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80CCD1B },
	"80ccd2":             func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80CCD2 },
	"80d_self":           func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80DSelf },
	"80d_parents":        func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80DParents },
	"80e":                func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80E },
	"80gg_monthly_rent":  func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80GGMonthlyRent },
	"80u":                func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80U },
	"home_loan_interest": func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.HomeLoan.InterestPaid },
	"professional_tax":   func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.Exemptions.ProfessionalTax },
	"lta_exemption":      func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.Exemptions.LTAExemption },
}

// SectionNames lists the sections SetDeduction and FillDeduction accept.
func SectionNames() []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupSection(transformName, section string) (amountAccessor, error) {
	accessor, ok := sections[section]
	if !ok {
		return nil, NewTransformError(transformName, "validate", fmt.Sprintf("unknown section %q", section), nil)
	}
	return accessor, nil
}

// SetDeduction replaces the claimed amount of one section.
type SetDeduction struct {
	Section string
	Amount  decimal.Decimal
}

func (t *SetDeduction) Name() string { return "set_deduction" }

func (t *SetDeduction) Description() string {
	return fmt.Sprintf("Claim %s under %s", domain.FormatINR(t.Amount), t.Section)
}

func (t *SetDeduction) Validate(domain.TaxpayerInput) error {
	if _, err := lookupSection(t.Name(), t.Section); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "amount cannot be negative", nil)
	}
	return nil
}

func (t *SetDeduction) Apply(base domain.TaxpayerInput) (domain.TaxpayerInput, error) {
	accessor, err := lookupSection(t.Name(), t.Section)
	if err != nil {
		return domain.TaxpayerInput{}, err
	}
	out := clone(base)
	*accessor(&out) = t.Amount
	return out, nil
}

// FillDeduction raises the claim of one section to Target. A claim already at
// or above Target is left alone.
type FillDeduction struct {
	Section string
	Target  decimal.Decimal
}

func (t *FillDeduction) Name() string { return "fill_deduction" }

func (t *FillDeduction) Description() string {
	return fmt.Sprintf("Raise %s claim to %s", t.Section, domain.FormatINR(t.Target))
}

func (t *FillDeduction) Validate(domain.TaxpayerInput) error {
	if _, err := lookupSection(t.Name(), t.Section); err != nil {
		return err
	}
	if !t.Target.IsPositive() {
		return NewTransformError(t.Name(), "validate", "target must be positive", nil)
	}
	return nil
}

func (t *FillDeduction) Apply(base domain.TaxpayerInput) (domain.TaxpayerInput, error) {
	accessor, err := lookupSection(t.Name(), t.Section)
	if err != nil {
		return domain.TaxpayerInput{}, err
	}
	out := clone(base)
	claim := accessor(&out)
	*claim = decimal.Max(*claim, t.Target)
	return out, nil
}

// AddDonation appends one section 80G donation.
type AddDonation struct {
	Donation domain.Section80GDonation
}

func (t *AddDonation) Name() string { return "add_donation" }

func (t *AddDonation) Description() string {
	return fmt.Sprintf("Donate %s (%s)", domain.FormatINR(t.Donation.Amount), t.Donation.Category)
}

func (t *AddDonation) Validate(domain.TaxpayerInput) error {
	switch t.Donation.Category {
	case domain.Donation100Unlimited, domain.Donation50Unlimited, domain.Donation100Limited, domain.Donation50Limited:
	default:
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown donation category %q", t.Donation.Category), nil)
	}
	if !t.Donation.Amount.IsPositive() {
		return NewTransformError(t.Name(), "validate", "amount must be positive", nil)
	}
	return nil
}

func (t *AddDonation) Apply(base domain.TaxpayerInput) (domain.TaxpayerInput, error) {
	out := clone(base)
	out.Deductions.ChapterVIA.Donations = append(out.Deductions.ChapterVIA.Donations, t.Donation)
	return out, nil
}
