package config

import (
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_EmptyPathReturnsDefaults(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTaxRules(), rules)
}

func TestLoadRules_Overlay(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
metadata:
  financial_year: "2026-27"
new_regime:
  standard_deduction: 100000
  slabs:
    - {from: 0, up_to: 500000, rate: 0}
    - {from: 500000, up_to: 1000000, rate: 0.1}
    - {from: 1000000, up_to: 0, rate: 0.3}
`)

	rules, err := LoadRules(path)
	require.NoError(t, err)

	defaults := domain.DefaultTaxRules()
	assert.Equal(t, "2026-27", rules.Metadata.FinancialYear)
	assert.Equal(t, defaults.Metadata.AssessmentYear, rules.Metadata.AssessmentYear, "unset keys keep defaults")
	assert.True(t, decimal.NewFromInt(100000).Equal(rules.New.StandardDeduction))
	require.Len(t, rules.New.Slabs, 3, "slab list is replaced, not merged")
	assert.True(t, rules.New.Slabs[2].Open())
	assert.True(t, defaults.New.RebateLimit.Equal(rules.New.RebateLimit))
	assert.Len(t, rules.Old.Slabs.Standard, 4)
}

func TestLoadRules_Errors(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rules file")

	_, err = LoadRules(writeFile(t, "bad.yaml", "cess_rate: [1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rules YAML")

	_, err = LoadRules(writeFile(t, "invalid.yaml", "cess_rate: 1.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cess_rate must be between 0 and 1")
}

func TestValidateRules(t *testing.T) {
	require.NoError(t, ValidateRules(domain.DefaultTaxRules()))

	tests := []struct {
		name    string
		mutate  func(*domain.TaxRules)
		message string
	}{
		{
			name:    "empty table",
			mutate:  func(r *domain.TaxRules) { r.Old.Slabs.Senior = nil },
			message: "old_regime.slabs.senior: at least one slab is required",
		},
		{
			name: "does not start at zero",
			mutate: func(r *domain.TaxRules) {
				r.New.Slabs = []domain.Slab{{From: decimal.NewFromInt(1), Rate: decimal.Zero}}
			},
			message: "first slab must start at 0",
		},
		{
			name: "gap between slabs",
			mutate: func(r *domain.TaxRules) {
				r.New.Slabs = []domain.Slab{
					{From: decimal.Zero, UpTo: decimal.NewFromInt(100), Rate: decimal.Zero},
					{From: decimal.NewFromInt(200), Rate: decimal.New(1, -1)},
				}
			},
			message: "slab 0 ends at 100 but slab 1 starts at 200",
		},
		{
			name: "closed top slab",
			mutate: func(r *domain.TaxRules) {
				r.New.Slabs = []domain.Slab{{From: decimal.Zero, UpTo: decimal.NewFromInt(100), Rate: decimal.Zero}}
			},
			message: "last slab must be open-ended",
		},
		{
			name: "rate above one",
			mutate: func(r *domain.TaxRules) {
				r.Old.Slabs.Standard[3].Rate = decimal.NewFromInt(30)
			},
			message: "slab 3 rate must be between 0 and 1",
		},
		{
			name: "tiers out of order",
			mutate: func(r *domain.TaxRules) {
				r.Old.SurchargeTiers[1].Threshold = decimal.NewFromInt(100)
			},
			message: "old_regime.surcharge_tiers: tier 1 threshold",
		},
		{
			name: "age bands inverted",
			mutate: func(r *domain.TaxRules) {
				r.Old.SuperSeniorAge = 50
			},
			message: "super_senior_age (50) must exceed senior_age (60)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := domain.DefaultTaxRules()
			tt.mutate(&rules)
			err := ValidateRules(rules)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
