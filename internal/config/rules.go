package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadRules overlays a YAML rules file on the built-in FY 2025-26 table.
// Keys absent from the file keep their defaults; a slab or tier list in the
// file replaces the whole list. An empty path returns the defaults.
func LoadRules(filename string) (domain.TaxRules, error) {
	rules := domain.DefaultTaxRules()
	if filename == "" {
		return rules, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if err := ValidateRules(rules); err != nil {
		return domain.TaxRules{}, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

// ValidateRules checks that every slab table partitions [0, inf) and that
// rates and tiers are sane.
func ValidateRules(rules domain.TaxRules) error {
	if err := validateRate("cess_rate", rules.CessRate); err != nil {
		return err
	}

	tables := []struct {
		name  string
		slabs []domain.Slab
	}{
		{"new_regime.slabs", rules.New.Slabs},
		{"old_regime.slabs.standard", rules.Old.Slabs.Standard},
		{"old_regime.slabs.senior", rules.Old.Slabs.Senior},
		{"old_regime.slabs.super_senior", rules.Old.Slabs.SuperSenior},
	}
	for _, table := range tables {
		if err := validateSlabs(table.slabs); err != nil {
			return fmt.Errorf("%s: %w", table.name, err)
		}
	}

	if err := validateTiers(rules.New.SurchargeTiers); err != nil {
		return fmt.Errorf("new_regime.surcharge_tiers: %w", err)
	}
	if err := validateTiers(rules.Old.SurchargeTiers); err != nil {
		return fmt.Errorf("old_regime.surcharge_tiers: %w", err)
	}

	if rules.Old.SeniorAge <= 0 || rules.Old.SuperSeniorAge <= rules.Old.SeniorAge {
		return fmt.Errorf("old_regime: super_senior_age (%d) must exceed senior_age (%d) and both must be positive",
			rules.Old.SuperSeniorAge, rules.Old.SeniorAge)
	}
	if rules.New.RebateLimit.IsNegative() || rules.Old.RebateLimit.IsNegative() {
		return fmt.Errorf("rebate limits cannot be negative")
	}
	if rules.New.StandardDeduction.IsNegative() || rules.Old.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard deductions cannot be negative")
	}
	return validateRate("new_regime.employer_nps_rate", rules.New.EmployerNPSRate)
}

func validateSlabs(slabs []domain.Slab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("at least one slab is required")
	}
	if !slabs[0].From.IsZero() {
		return fmt.Errorf("first slab must start at 0, got %s", slabs[0].From)
	}
	for i, slab := range slabs {
		if err := validateRate(fmt.Sprintf("slab %d rate", i), slab.Rate); err != nil {
			return err
		}
		last := i == len(slabs)-1
		if last {
			if !slab.Open() {
				return fmt.Errorf("last slab must be open-ended (up_to: 0), got up_to %s", slab.UpTo)
			}
			continue
		}
		if slab.Open() || slab.UpTo.LessThanOrEqual(slab.From) {
			return fmt.Errorf("slab %d: up_to %s must be greater than from %s", i, slab.UpTo, slab.From)
		}
		if !slabs[i+1].From.Equal(slab.UpTo) {
			return fmt.Errorf("slab %d ends at %s but slab %d starts at %s", i, slab.UpTo, i+1, slabs[i+1].From)
		}
	}
	return nil
}

func validateTiers(tiers []domain.SurchargeTier) error {
	for i, tier := range tiers {
		if err := validateRate(fmt.Sprintf("tier %d rate", i), tier.Rate); err != nil {
			return err
		}
		if i > 0 && !tier.Threshold.GreaterThan(tiers[i-1].Threshold) {
			return fmt.Errorf("tier %d threshold %s must exceed %s", i, tier.Threshold, tiers[i-1].Threshold)
		}
		if i > 0 && tier.Rate.LessThan(tiers[i-1].Rate) {
			return fmt.Errorf("tier %d rate %s is below the previous tier", i, tier.Rate)
		}
	}
	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, rate)
	}
	return nil
}
