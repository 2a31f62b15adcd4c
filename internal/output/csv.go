package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/itrgo/internal/compare"
)

// CSVFormatter writes one row per metric with plain numeric columns.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(c *compare.RegimeComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Metric", "Old Regime", "New Regime"}); err != nil {
		return nil, err
	}
	for _, m := range comparisonMetrics(c) {
		if err := w.Write([]string{m.label, m.old.StringFixed(2), m.new.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	summary := [][]string{
		{"Recommended", string(c.Recommended), ""},
		{"Annual savings", c.Savings.StringFixed(2), ""},
		{"Monthly savings", c.MonthlySavings.StringFixed(2), ""},
	}
	if err := w.WriteAll(summary); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
