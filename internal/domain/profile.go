package domain

// UserProfile carries the personal attributes that change limits and slabs.
type UserProfile struct {
	Age                  int  `yaml:"age" json:"age" validate:"gte=0,lte=130"`
	ParentsSeniorCitizen bool `yaml:"parents_senior_citizen" json:"parents_senior_citizen"`
}

// TaxpayerInput is one complete snapshot of what a taxpayer entered. The
// adapters hold it by value and replace it on every edit.
type TaxpayerInput struct {
	Name       string          `yaml:"name" json:"name"`
	Profile    UserProfile     `yaml:"profile" json:"profile"`
	Salary     SalaryBreakdown `yaml:"salary" json:"salary"`
	Deductions Deductions      `yaml:"deductions" json:"deductions"`
}
