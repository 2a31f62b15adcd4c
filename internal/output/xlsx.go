package output

import (
	"fmt"

	"github.com/rgehrsitz/itrgo/internal/compare"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sheetComparison  = "Comparison"
	sheetDeductions  = "Deductions"
	sheetSuggestions = "Suggestions"
)

// XLSXFormatter builds a workbook with the comparison, the deduction
// breakdown of both regimes and the suggestions.
type XLSXFormatter struct{}

func (XLSXFormatter) Name() string { return "xlsx" }

func (XLSXFormatter) Format(c *compare.RegimeComparison) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetComparison); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetDeductions, sheetSuggestions} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	rows := [][]any{{"Metric", "Old Regime", "New Regime"}}
	for _, m := range comparisonMetrics(c) {
		rows = append(rows, []any{m.label, m.old.InexactFloat64(), m.new.InexactFloat64()})
	}
	rows = append(rows,
		[]any{},
		[]any{"Recommended", string(c.Recommended)},
		[]any{"Annual savings", c.Savings.InexactFloat64()},
		[]any{"Monthly savings", c.MonthlySavings.InexactFloat64()},
	)
	if err := writeSheet(f, sheetComparison, rows, bold); err != nil {
		return nil, err
	}

	rows = [][]any{{"Regime", "Section", "Item", "Claimed", "Allowed"}}
	for _, result := range []domain.TaxResult{c.Old, c.New} {
		if result.DeductionBreakdown == nil {
			continue
		}
		for _, item := range result.DeductionBreakdown.Items {
			rows = append(rows, []any{
				result.Regime.DisplayName(), item.Section, item.Label,
				item.Claimed.InexactFloat64(), item.Allowed.InexactFloat64(),
			})
		}
	}
	if err := writeSheet(f, sheetDeductions, rows, bold); err != nil {
		return nil, err
	}

	rows = [][]any{{"Title", "Description", "Impact"}}
	for _, s := range c.Suggestions {
		rows = append(rows, []any{s.Title, s.Description, s.Impact})
	}
	if err := writeSheet(f, sheetSuggestions, rows, bold); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(sheetComparison, "A", "A", 28)
	_ = f.SetColWidth(sheetComparison, "B", "C", 16)
	_ = f.SetColWidth(sheetDeductions, "C", "C", 34)
	_ = f.SetColWidth(sheetSuggestions, "A", "A", 34)
	_ = f.SetColWidth(sheetSuggestions, "B", "B", 90)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheet writes rows from A1 and bolds the header row.
func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			continue
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	end, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, headerStyle)
}
