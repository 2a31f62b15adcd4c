package domain

import "github.com/shopspring/decimal"

// DonationCategory tags how much of a section 80G donation qualifies and
// whether the qualifying-limit cap applies.
type DonationCategory string

const (
	Donation100Unlimited DonationCategory = "100_unlimited"
	Donation50Unlimited  DonationCategory = "50_unlimited"
	Donation100Limited   DonationCategory = "100_limited"
	Donation50Limited    DonationCategory = "50_limited"
)

// EmployerCategory decides the old-regime cap on the employer NPS
// contribution under section 80CCD(2).
type EmployerCategory string

const (
	EmployerPrivate    EmployerCategory = "private"
	EmployerGovernment EmployerCategory = "government"
)

// DisabilitySeverity selects the section 80U ceiling.
type DisabilitySeverity string

const (
	DisabilityNone   DisabilitySeverity = "none"
	DisabilityNormal DisabilitySeverity = "normal"
	DisabilitySevere DisabilitySeverity = "severe"
)

// Section80GDonation is one charitable donation.
type Section80GDonation struct {
	Category    DonationCategory `yaml:"category" json:"category" validate:"required,oneof=100_unlimited 50_unlimited 100_limited 50_limited"`
	Institution string           `yaml:"institution" json:"institution"`
	Amount      decimal.Decimal  `yaml:"amount" json:"amount"`
}

// SalaryExemptions are the section 10 / 16 items that reduce salary income
// under the old regime. HRAExemption is derived from salary and rent; see
// calculation.Engine.WithDerivedHRA.
type SalaryExemptions struct {
	RentPaid                 decimal.Decimal `yaml:"rent_paid" json:"rent_paid"`
	MetroCity                bool            `yaml:"metro_city" json:"metro_city"`
	HRAExemption             decimal.Decimal `yaml:"hra_exemption" json:"hra_exemption"`
	LTAExemption             decimal.Decimal `yaml:"lta_exemption" json:"lta_exemption"`
	GratuityExemption        decimal.Decimal `yaml:"gratuity_exemption" json:"gratuity_exemption"`
	LeaveEncashmentExemption decimal.Decimal `yaml:"leave_encashment_exemption" json:"leave_encashment_exemption"`
	ProfessionalTax          decimal.Decimal `yaml:"professional_tax" json:"professional_tax"`
	EntertainmentAllowance   decimal.Decimal `yaml:"entertainment_allowance" json:"entertainment_allowance"`
}

// ChapterVIADeductions holds the claimed amounts before any statutory caps.
type ChapterVIADeductions struct {
	Section80C       decimal.Decimal  `yaml:"section_80c" json:"section_80c"`
	Section80CCD1    decimal.Decimal  `yaml:"section_80ccd1" json:"section_80ccd1"`
	Section80CCD1B   decimal.Decimal  `yaml:"section_80ccd1b" json:"section_80ccd1b"`
	Section80CCD2    decimal.Decimal  `yaml:"section_80ccd2" json:"section_80ccd2"`
	EmployerCategory EmployerCategory `yaml:"employer_category" json:"employer_category" validate:"omitempty,oneof=private government"`

	Section80DSelf    decimal.Decimal `yaml:"section_80d_self" json:"section_80d_self"`
	Section80DParents decimal.Decimal `yaml:"section_80d_parents" json:"section_80d_parents"`
	Section80E        decimal.Decimal `yaml:"section_80e" json:"section_80e"`

	Donations []Section80GDonation `yaml:"donations" json:"donations" validate:"dive"`

	Section80GGMonthlyRent decimal.Decimal    `yaml:"section_80gg_monthly_rent" json:"section_80gg_monthly_rent"`
	Section80U             decimal.Decimal    `yaml:"section_80u" json:"section_80u"`
	DisabilitySeverity     DisabilitySeverity `yaml:"disability_severity" json:"disability_severity" validate:"omitempty,oneof=none normal severe"`
}

// HomeLoanInterest is interest paid on a housing loan during the year.
type HomeLoanInterest struct {
	InterestPaid decimal.Decimal `yaml:"interest_paid" json:"interest_paid"`
	SelfOccupied bool            `yaml:"self_occupied" json:"self_occupied"`
}

// Deductions groups everything a taxpayer can claim against salary.
type Deductions struct {
	Exemptions SalaryExemptions     `yaml:"exemptions" json:"exemptions"`
	ChapterVIA ChapterVIADeductions `yaml:"chapter_via" json:"chapter_via"`
	HomeLoan   HomeLoanInterest     `yaml:"home_loan" json:"home_loan"`
}

// WithHRAExemption returns a copy with the HRA exemption set to amount.
func (d Deductions) WithHRAExemption(amount decimal.Decimal) Deductions {
	d.Exemptions.HRAExemption = amount
	return d
}

// WithDonations returns a copy holding its own donation slice.
func (d Deductions) WithDonations(donations []Section80GDonation) Deductions {
	d.ChapterVIA.Donations = append([]Section80GDonation(nil), donations...)
	return d
}
