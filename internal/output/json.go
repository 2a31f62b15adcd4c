package output

import (
	"encoding/json"

	"github.com/rgehrsitz/itrgo/internal/compare"
)

// JSONFormatter emits the comparison as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(c *compare.RegimeComparison) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
