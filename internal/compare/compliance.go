package compare

// ComplianceReminders returns the standing obligations of a salaried
// taxpayer. The slice is freshly allocated on every call.
func ComplianceReminders() []ComplianceReminder {
	return []ComplianceReminder{
		{
			Reference:   "194-IB",
			Title:       "TDS on Rent",
			Description: "If you pay rent above ₹50,000 a month, deduct TDS on it and deposit the tax with Form 26QC.",
		},
		{
			Reference:   "Proofs",
			Title:       "Maintain Investment Proofs",
			Description: "Keep investment proofs (80C, 80D and others) and rent receipts for at least six years from the end of the assessment year.",
		},
		{
			Reference:   "Form 12BB",
			Title:       "Form 12BB Submission",
			Description: "Submit Form 12BB to your employer with the deductions and exemptions you claim so that TDS on salary is correct.",
		},
		{
			Reference:   "208",
			Title:       "Advance Tax Payment",
			Description: "If your tax after TDS exceeds ₹10,000, pay advance tax in instalments by 15 June, September, December and March to avoid interest under 234B and 234C.",
		},
		{
			Reference:   "115BAC",
			Title:       "Regime Selection",
			Description: "Tell your employer which regime you choose at the start of the financial year. Salaried taxpayers can still switch when filing the return.",
		},
		{
			Reference:   "139(1)",
			Title:       "ITR Filing Due Date",
			Description: "File your return by 31 July of the assessment year. Late filing attracts a fee under 234F of up to ₹5,000 and interest under 234A.",
		},
	}
}
