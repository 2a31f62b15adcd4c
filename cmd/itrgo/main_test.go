package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const taxpayerYAML = `
name: Test Taxpayer
profile:
  age: 30
salary:
  section_17_1:
    basic_salary: 600000
  special_allowances:
    hra: 240000
    other: 160000
deductions:
  exemptions:
    rent_paid: 300000
    metro_city: true
    professional_tax: 2500
  chapter_via:
    section_80c: 100000
    section_80ccd1: 80000
    section_80d_self: 30000
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxpayer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the CLI with args in a scratch directory so no settings file
// on the machine is picked up.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdirForTest(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "itrgo" {
		t.Errorf("Expected root command use to be 'itrgo', got %s", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("Expected root command to have short and long descriptions")
	}

	for _, flag := range []string{"config", "format", "rules", "log-level", "log-format"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Expected persistent flag --%s", flag)
		}
	}
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "compare", "breakeven", "validate", "rules", "whatif", "serve", "tui", "version"}

	registered := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected command '%s' to be registered with root command", name)
		}
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	if _, err := run(t, "invalid-command"); err == nil {
		t.Error("Expected error for invalid command")
	}
}

func TestCalculate(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	out, err := run(t, "calculate", path, "--regime", "old")
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	for _, want := range []string{"OLD REGIME", "Total tax", "₹13,520", "Effective tax rate"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCalculate_JSON(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	out, err := run(t, "calculate", path, "--regime", "new", "--format", "json")
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result["regime"] != "new" || result["total_tax"] != "0" {
		t.Errorf("unexpected result: regime=%v total_tax=%v", result["regime"], result["total_tax"])
	}
}

func TestCalculate_UnknownRegime(t *testing.T) {
	path := writeInput(t, taxpayerYAML)
	if _, err := run(t, "calculate", path, "--regime", "flat"); err == nil {
		t.Error("Expected error for unknown regime")
	}
}

func TestCompare(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	out, err := run(t, "compare", path)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !strings.Contains(out, "RECOMMENDATION: New Regime saves you ₹13,520 a year") {
		t.Errorf("Expected recommendation in output, got:\n%s", out)
	}
}

func TestCompare_Formats(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"recommended": "new"`},
		{"csv", "Total tax,13520.00,0.00"},
		{"summary", "Old Regime: ₹13,520 tax"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := run(t, "compare", path, "--format", tt.format)
			if err != nil {
				t.Fatalf("compare failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in output, got:\n%s", tt.want, out)
			}
		})
	}
}

func TestCompare_XLSXWritesFile(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	out, err := run(t, "compare", path, "--format", "excel")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !strings.HasPrefix(out, "Report written to itr_report_") {
		t.Fatalf("unexpected output: %s", out)
	}
	filename := strings.TrimSpace(strings.TrimPrefix(out, "Report written to "))
	if _, err := os.Stat(filename); err != nil {
		t.Errorf("Expected report file %s: %v", filename, err)
	}
}

func TestCompare_UnknownFormat(t *testing.T) {
	path := writeInput(t, taxpayerYAML)
	_, err := run(t, "compare", path, "--format", "html")
	if err == nil || !strings.Contains(err.Error(), "available: console, console-lite, csv, json, xlsx") {
		t.Errorf("Expected unknown format error listing formats, got %v", err)
	}
}

func TestBreakEven(t *testing.T) {
	path := writeInput(t, "profile:\n  age: 30\nsalary:\n  section_17_1:\n    basic_salary: 1275000\n")

	out, err := run(t, "breakeven", path, "--format", "json")
	if err != nil {
		t.Fatalf("breakeven failed: %v", err)
	}
	if !strings.Contains(out, `"additional_deduction": "725000"`) {
		t.Errorf("Expected break-even deduction in output, got:\n%s", out)
	}
}

func TestBreakEven_Table(t *testing.T) {
	out, err := run(t, "breakeven", "--table", "--incomes", "1300000,2000000")
	if err != nil {
		t.Fatalf("breakeven --table failed: %v", err)
	}
	for _, want := range []string{"DEDUCTIONS NEEDED FOR THE OLD REGIME TO BREAK EVEN", "₹6,87,500", "₹7,08,334"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestBreakEven_RequiresInput(t *testing.T) {
	if _, err := run(t, "breakeven"); err == nil {
		t.Error("Expected error without input file or --table")
	}
	if _, err := run(t, "breakeven", "--table", "--incomes", "ten-lakh"); err == nil {
		t.Error("Expected error for invalid income")
	}
}

func TestCompare_WhatIf(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"template", []string{"--template", "max_nps"}, `"recommended": "either"`},
		{"edit", []string{"--what-if", "set_deduction:section=80ccd1b,amount=50000"}, `"recommended": "either"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"compare", path, "--format", "json"}, tt.args...)
			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("compare failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %s in output, got:\n%s", tt.want, out)
			}
		})
	}
}

func TestCalculate_WhatIfRaise(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	out, err := run(t, "calculate", path, "--format", "json", "--what-if", "raise_salary:percent=100")
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if result["gross_income"] != "2000000" || result["total_tax"] != "192400" {
		t.Errorf("unexpected result: gross=%v total_tax=%v", result["gross_income"], result["total_tax"])
	}
}

func TestCompare_WhatIfErrors(t *testing.T) {
	path := writeInput(t, taxpayerYAML)

	if _, err := run(t, "compare", path, "--template", "max_everything"); err == nil || !strings.Contains(err.Error(), "unknown template") {
		t.Errorf("Expected unknown template error, got %v", err)
	}
	if _, err := run(t, "compare", path, "--what-if", "set_age:age=200"); err == nil {
		t.Error("Expected error for an out-of-range age")
	}
	if _, err := run(t, "calculate", path, "--what-if", "set_deduction"); err == nil {
		t.Error("Expected error for a malformed what-if")
	}
}

func TestWhatIf(t *testing.T) {
	out, err := run(t, "whatif")
	if err != nil {
		t.Fatalf("whatif failed: %v", err)
	}
	for _, want := range []string{"max_80c", "max_all", "set_deduction", "raise_salary", "80ccd1b"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestValidate(t *testing.T) {
	path := writeInput(t, taxpayerYAML+"  home_loan:\n    interest_paid: -100\n")

	out, err := run(t, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "adjusted deductions.home_loan.interest_paid: -100 -> 0") {
		t.Errorf("Expected adjustment to be reported, got:\n%s", out)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("Expected validity message, got:\n%s", out)
	}
}

func TestValidate_Invalid(t *testing.T) {
	path := writeInput(t, "profile:\n  age: 200\n")
	if _, err := run(t, "validate", path); err == nil {
		t.Error("Expected validation error for age 200")
	}
}

func TestRules(t *testing.T) {
	out, err := run(t, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}
	for _, want := range []string{"financial_year: 2025-26", "new_regime:", "old_regime:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in rules output", want)
		}
	}
}

func TestRules_RoundTripThroughRulesFlag(t *testing.T) {
	exported, err := run(t, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	edited := strings.Replace(exported, "financial_year: 2025-26", "financial_year: 2025-26 (custom)", 1)
	if err := os.WriteFile(rulesPath, []byte(edited), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "rules", "--rules", rulesPath, "--format", "json")
	if err != nil {
		t.Fatalf("rules --rules failed: %v", err)
	}
	if !strings.Contains(out, `"financial_year": "2025-26 (custom)"`) {
		t.Errorf("Expected custom rules to be loaded, got:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "itrgo dev (commit none, built unknown)") {
		t.Errorf("unexpected version output: %s", out)
	}
}

// chdirForTest changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
