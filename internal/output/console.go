package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/itrgo/internal/compare"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter is the detailed side-by-side report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(c *compare.RegimeComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "INCOME TAX: OLD vs NEW REGIME (FY %s, AY %s)\n", c.FinancialYear, c.AssessmentYear)
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	if c.Taxpayer != "" {
		fmt.Fprintf(&buf, "Taxpayer: %s\n", c.Taxpayer)
	}
	fmt.Fprintln(&buf)

	writeRow(&buf, "", "Old Regime", "New Regime")
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	for _, m := range comparisonMetrics(c) {
		writeRow(&buf, m.label, m.display(m.old), m.display(m.new))
	}
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	fmt.Fprintf(&buf, "RECOMMENDATION: %s\n", c.Headline())
	fmt.Fprintln(&buf)

	for _, result := range []domain.TaxResult{c.Old, c.New} {
		if result.DeductionBreakdown == nil {
			continue
		}
		fmt.Fprintf(&buf, "%s DEDUCTIONS\n", strings.ToUpper(result.Regime.DisplayName()))
		fmt.Fprintln(&buf, strings.Repeat("-", 72))
		fmt.Fprintf(&buf, "  %-10s %-34s %12s %12s\n", "Section", "Item", "Claimed", "Allowed")
		for _, item := range result.DeductionBreakdown.Items {
			if item.Claimed.IsZero() && item.Allowed.IsZero() {
				continue
			}
			fmt.Fprintf(&buf, "  %-10s %-34s %12s %12s\n", item.Section, item.Label,
				domain.FormatINR(item.Claimed), domain.FormatINR(item.Allowed))
		}
		fmt.Fprintf(&buf, "  %-45s %25s\n", "Total", domain.FormatINR(result.TotalDeductions))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "SUGGESTIONS")
	fmt.Fprintln(&buf, strings.Repeat("-", 72))
	for _, s := range c.Suggestions {
		fmt.Fprintf(&buf, "* %s\n  %s\n", s.Title, s.Description)
		if s.Impact != "" {
			fmt.Fprintf(&buf, "  %s\n", s.Impact)
		}
	}
	fmt.Fprintln(&buf)

	if len(c.Compliance) > 0 {
		fmt.Fprintln(&buf, "COMPLIANCES TO KEEP IN MIND")
		fmt.Fprintln(&buf, strings.Repeat("-", 72))
		for _, r := range c.Compliance {
			fmt.Fprintf(&buf, "* %s (%s)\n  %s\n", r.Title, r.Reference, r.Description)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "Figures are illustrative. Consult a tax professional before filing.")
	return buf.Bytes(), nil
}

// ConsoleLiteFormatter prints only the headline figures.
type ConsoleLiteFormatter struct{}

func (ConsoleLiteFormatter) Name() string { return "console-lite" }

func (ConsoleLiteFormatter) Format(c *compare.RegimeComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "TAX REGIME SUMMARY (FY %s)\n", c.FinancialYear)
	fmt.Fprintf(&buf, "Old Regime: %s tax, %s/month in hand\n", domain.FormatINR(c.Old.TotalTax), domain.FormatINR(c.OldMonthlyInHand))
	fmt.Fprintf(&buf, "New Regime: %s tax, %s/month in hand\n", domain.FormatINR(c.New.TotalTax), domain.FormatINR(c.NewMonthlyInHand))
	fmt.Fprintf(&buf, "Recommended: %s\n", c.Headline())
	return buf.Bytes(), nil
}

// metric is one line of the side-by-side comparison.
type metric struct {
	label   string
	old     decimal.Decimal
	new     decimal.Decimal
	percent bool
}

func (m metric) display(v decimal.Decimal) string {
	if m.percent {
		return domain.FormatPercent(v)
	}
	return domain.FormatINR(v)
}

// comparisonMetrics is shared by the console, CSV and XLSX outputs.
func comparisonMetrics(c *compare.RegimeComparison) []metric {
	optional := func(p *decimal.Decimal) decimal.Decimal {
		if p == nil {
			return decimal.Zero
		}
		return *p
	}
	o, n := c.Old, c.New

	return []metric{
		{label: "Gross income", old: o.GrossIncome, new: n.GrossIncome},
		{label: "Total deductions", old: o.TotalDeductions, new: n.TotalDeductions},
		{label: "Taxable income", old: o.TaxableIncome, new: n.TaxableIncome},
		{label: "Rebate u/s 87A", old: o.Rebate, new: n.Rebate},
		{label: "Marginal relief", old: optional(o.MarginalRelief), new: optional(n.MarginalRelief)},
		{label: "Tax before surcharge", old: o.TaxBeforeSurcharge, new: n.TaxBeforeSurcharge},
		{label: "Surcharge", old: o.Surcharge, new: n.Surcharge},
		{label: "Health & education cess", old: o.Cess, new: n.Cess},
		{label: "Total tax", old: o.TotalTax, new: n.TotalTax},
		{label: "Effective tax rate", old: o.EffectiveTaxRate, new: n.EffectiveTaxRate, percent: true},
		{label: "Net income", old: o.NetIncome, new: n.NetIncome},
		{label: "Monthly in-hand", old: c.OldMonthlyInHand, new: c.NewMonthlyInHand},
	}
}

func writeRow(buf *bytes.Buffer, label, oldValue, newValue string) {
	fmt.Fprintf(buf, "%-28s %20s %20s\n", label, oldValue, newValue)
}
