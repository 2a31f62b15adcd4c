package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
)

// TableFormatter formats break-even results as console text
type TableFormatter struct{}

// Format renders a single break-even result.
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("OLD REGIME BREAK-EVEN\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("New regime tax:      %s\n", domain.FormatINR(result.NewTax)))
	sb.WriteString(fmt.Sprintf("Old regime tax:      %s\n", domain.FormatINR(result.CurrentOldTax)))
	sb.WriteString(fmt.Sprintf("Current deductions:  %s\n", domain.FormatINR(result.CurrentDeductions)))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	if result.AlreadyFavorable {
		sb.WriteString("The old regime already costs no more than the new regime.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Additional deductions needed: %s\n", domain.FormatINR(result.AdditionalDeduction)))
	sb.WriteString(fmt.Sprintf("Total deductions at break-even: %s\n", domain.FormatINR(result.BreakEvenDeductions)))
	sb.WriteString(fmt.Sprintf("Old regime tax at break-even: %s\n", domain.FormatINR(result.OldTaxAtBreakEven)))
	return sb.String()
}

// FormatTable renders a break-even table, one income level per row.
func (tf *TableFormatter) FormatTable(points []TablePoint) string {
	var sb strings.Builder

	sb.WriteString("DEDUCTIONS NEEDED FOR THE OLD REGIME TO BREAK EVEN\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%-14s %16s %18s %20s\n", "Gross Salary", "New Regime Tax", "Old Tax (no claims)", "Deductions Needed"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	for _, p := range points {
		sb.WriteString(fmt.Sprintf("%-14s %16s %18s %20s\n",
			tf.formatShort(p.GrossIncome),
			domain.FormatINR(p.NewTax),
			domain.FormatINR(p.OldTaxWithoutClaims),
			domain.FormatINR(p.RequiredDeductions)))
	}
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString("Deductions are in addition to the standard deduction.\n")
	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	return jf.marshal(result)
}

// FormatTable generates JSON output for a break-even table
func (jf *JSONFormatter) FormatTable(points []TablePoint) (string, error) {
	return jf.marshal(points)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

// formatShort renders lakh and crore amounts compactly, e.g. 12.5L.
func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	crore := decimal.NewFromInt(10000000)
	lakh := decimal.NewFromInt(100000)
	switch {
	case d.Abs().GreaterThanOrEqual(crore):
		return d.Div(crore).Round(2).String() + "Cr"
	case d.Abs().GreaterThanOrEqual(lakh):
		return d.Div(lakh).Round(2).String() + "L"
	default:
		return domain.FormatINR(d)
	}
}
