package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/itrgo/internal/compare"
)

// Formatter renders a regime comparison in one output format.
type Formatter interface {
	Name() string
	Format(c *compare.RegimeComparison) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(c *compare.RegimeComparison) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(c *compare.RegimeComparison) ([]byte, error) { return f.F(c) }

var formatters = map[string]Formatter{}

var aliases = map[string]string{
	"verbose": "console",
	"table":   "console",
	"lite":    "console-lite",
	"summary": "console-lite",
	"excel":   "xlsx",
}

func register(f Formatter) {
	formatters[f.Name()] = f
}

func init() {
	register(ConsoleFormatter{})
	register(ConsoleLiteFormatter{})
	register(JSONFormatter{})
	register(CSVFormatter{})
	register(XLSXFormatter{})
}

// GetFormatterByName resolves a format name or alias; nil when unknown.
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists the registered formats, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases, sorted.
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBinary reports whether a format should go to a file rather than stdout.
func IsBinary(f Formatter) bool {
	return f.Name() == "xlsx"
}

// WriteFormatted renders c and writes it to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, c *compare.RegimeComparison, ext string) (string, error) {
	data, err := f.Format(c)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("itr_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
