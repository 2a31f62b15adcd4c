package domain

import "github.com/shopspring/decimal"

// Section17_1 holds salary proper under section 17(1).
type Section17_1 struct {
	BasicSalary       decimal.Decimal `yaml:"basic_salary" json:"basic_salary"`
	DearnessAllowance decimal.Decimal `yaml:"dearness_allowance" json:"dearness_allowance"`
}

// SpecialAllowances are the allowances paid on top of basic pay. HRA here is
// the amount received; the exempt portion is derived separately.
type SpecialAllowances struct {
	HRA             decimal.Decimal `yaml:"hra" json:"hra"`
	LTA             decimal.Decimal `yaml:"lta" json:"lta"`
	LeaveEncashment decimal.Decimal `yaml:"leave_encashment" json:"leave_encashment"`
	Conveyance      decimal.Decimal `yaml:"conveyance" json:"conveyance"`
	Medical         decimal.Decimal `yaml:"medical" json:"medical"`
	Meal            decimal.Decimal `yaml:"meal" json:"meal"`
	Uniform         decimal.Decimal `yaml:"uniform" json:"uniform"`
	Other           decimal.Decimal `yaml:"other" json:"other"`
}

// Section17_2 holds perquisites.
type Section17_2 struct {
	RentFreeAccommodation decimal.Decimal `yaml:"rent_free_accommodation" json:"rent_free_accommodation"`
	MotorCar              decimal.Decimal `yaml:"motor_car" json:"motor_car"`
	FreeEducation         decimal.Decimal `yaml:"free_education" json:"free_education"`
	InterestFreeLoans     decimal.Decimal `yaml:"interest_free_loans" json:"interest_free_loans"`
	Other                 decimal.Decimal `yaml:"other" json:"other"`
}

// Section17_3 holds profits in lieu of salary.
type Section17_3 struct {
	Bonus              decimal.Decimal `yaml:"bonus" json:"bonus"`
	Commission         decimal.Decimal `yaml:"commission" json:"commission"`
	RetirementBenefits decimal.Decimal `yaml:"retirement_benefits" json:"retirement_benefits"`
	ExGratia           decimal.Decimal `yaml:"ex_gratia" json:"ex_gratia"`
	Other              decimal.Decimal `yaml:"other" json:"other"`
}

// SalaryBreakdown is the full annual salary picture of one employee.
type SalaryBreakdown struct {
	Section17_1       Section17_1       `yaml:"section_17_1" json:"section_17_1"`
	SpecialAllowances SpecialAllowances `yaml:"special_allowances" json:"special_allowances"`
	Section17_2       Section17_2       `yaml:"section_17_2" json:"section_17_2"`
	Section17_3       Section17_3       `yaml:"section_17_3" json:"section_17_3"`
}

// BasicPlusDA is the base used by the HRA rule and the NPS caps.
func (s SalaryBreakdown) BasicPlusDA() decimal.Decimal {
	return s.Section17_1.BasicSalary.Add(s.Section17_1.DearnessAllowance)
}

// Total of section 17(1).
func (s Section17_1) Total() decimal.Decimal {
	return s.BasicSalary.Add(s.DearnessAllowance)
}

// Total of all special allowances.
func (a SpecialAllowances) Total() decimal.Decimal {
	return decimal.Sum(a.HRA, a.LTA, a.LeaveEncashment, a.Conveyance, a.Medical, a.Meal, a.Uniform, a.Other)
}

// Total of all perquisites.
func (p Section17_2) Total() decimal.Decimal {
	return decimal.Sum(p.RentFreeAccommodation, p.MotorCar, p.FreeEducation, p.InterestFreeLoans, p.Other)
}

// Total of all profits in lieu of salary.
func (p Section17_3) Total() decimal.Decimal {
	return decimal.Sum(p.Bonus, p.Commission, p.RetirementBenefits, p.ExGratia, p.Other)
}
