package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// field is one editable form entry bound to a part of the snapshot.
type field struct {
	section string
	label   string
	get     func(*domain.TaxpayerInput) string
	set     func(*domain.TaxpayerInput, string) error
}

func amountField(section, label string, ptr func(*domain.TaxpayerInput) *decimal.Decimal) field {
	return field{
		section: section,
		label:   label,
		get: func(in *domain.TaxpayerInput) string {
			v := ptr(in)
			if v.IsZero() {
				return ""
			}
			return v.String()
		},
		set: func(in *domain.TaxpayerInput, s string) error {
			v, err := parseAmount(s)
			if err != nil {
				return err
			}
			*ptr(in) = v
			return nil
		},
	}
}

func boolField(section, label string, ptr func(*domain.TaxpayerInput) *bool) field {
	return field{
		section: section,
		label:   label,
		get: func(in *domain.TaxpayerInput) string {
			if *ptr(in) {
				return "yes"
			}
			return "no"
		},
		set: func(in *domain.TaxpayerInput, s string) error {
			v, err := parseYesNo(s)
			if err != nil {
				return err
			}
			*ptr(in) = v
			return nil
		},
	}
}

// parseAmount accepts rupee amounts with Indian or western grouping, e.g.
// "12,00,000". An empty string is zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not an amount", s)
	}
	return v, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true, nil
	case "", "n", "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not yes or no", s)
	}
}

func formFields() []field {
	return []field{
		{
			section: "Profile",
			label:   "Name",
			get:     func(in *domain.TaxpayerInput) string { return in.Name },
			set: func(in *domain.TaxpayerInput, s string) error {
				in.Name = strings.TrimSpace(s)
				return nil
			},
		},
		{
			section: "Profile",
			label:   "Age",
			get:     func(in *domain.TaxpayerInput) string { return strconv.Itoa(in.Profile.Age) },
			set: func(in *domain.TaxpayerInput, s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					in.Profile.Age = 0
					return nil
				}
				age, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("%q is not an age", s)
				}
				in.Profile.Age = age
				return nil
			},
		},
		boolField("Profile", "Parents senior citizen", func(in *domain.TaxpayerInput) *bool { return &in.Profile.ParentsSeniorCitizen }),

		amountField("Salary", "Basic salary", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Salary.Section17_1.BasicSalary }),
		amountField("Salary", "Dearness allowance", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Salary.Section17_1.DearnessAllowance }),
		amountField("Salary", "HRA received", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Salary.SpecialAllowances.HRA }),
		amountField("Salary", "LTA", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Salary.SpecialAllowances.LTA }),
		amountField("Salary", "Other allowances", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Salary.SpecialAllowances.Other }),
		amountField("Salary", "Perquisites", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Salary.Section17_2.Other }),
		amountField("Salary", "Bonus", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Salary.Section17_3.Bonus }),

		amountField("Exemptions", "Rent paid", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.Exemptions.RentPaid }),
		boolField("Exemptions", "Metro city", func(in *domain.TaxpayerInput) *bool { return &in.Deductions.Exemptions.MetroCity }),
		amountField("Exemptions", "LTA exemption", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.Exemptions.LTAExemption }),
		amountField("Exemptions", "Professional tax", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.Exemptions.ProfessionalTax }),

		amountField("Chapter VI-A", "80C", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80C }),
		amountField("Chapter VI-A", "80CCD(1) own NPS", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80CCD1 }),
		amountField("Chapter VI-A", "80CCD(1B) extra NPS", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80CCD1B }),
		amountField("Chapter VI-A", "80CCD(2) employer NPS", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80CCD2 }),
		{
			section: "Chapter VI-A",
			label:   "Employer (private/government)",
			get:     func(in *domain.TaxpayerInput) string { return string(in.Deductions.ChapterVIA.EmployerCategory) },
			set: func(in *domain.TaxpayerInput, s string) error {
				in.Deductions.ChapterVIA.EmployerCategory = domain.EmployerCategory(strings.ToLower(strings.TrimSpace(s)))
				return nil
			},
		},
		amountField("Chapter VI-A", "80D self and family", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80DSelf }),
		amountField("Chapter VI-A", "80D parents", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80DParents }),
		amountField("Chapter VI-A", "80E education loan", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80E }),
		amountField("Chapter VI-A", "80GG monthly rent", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80GGMonthlyRent }),
		amountField("Chapter VI-A", "80U claim", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.ChapterVIA.Section80U }),
		{
			section: "Chapter VI-A",
			label:   "Disability (none/normal/severe)",
			get:     func(in *domain.TaxpayerInput) string { return string(in.Deductions.ChapterVIA.DisabilitySeverity) },
			set: func(in *domain.TaxpayerInput, s string) error {
				in.Deductions.ChapterVIA.DisabilitySeverity = domain.DisabilitySeverity(strings.ToLower(strings.TrimSpace(s)))
				return nil
			},
		},

		amountField("Home loan", "Interest paid", func(in *domain.TaxpayerInput) *decimal.Decimal { return &in.Deductions.HomeLoan.InterestPaid }),
		boolField("Home loan", "Self occupied", func(in *domain.TaxpayerInput) *bool { return &in.Deductions.HomeLoan.SelfOccupied }),
	}
}
