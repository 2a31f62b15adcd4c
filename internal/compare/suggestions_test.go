package compare

import (
	"testing"

	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionTitles(s []Suggestion) []string {
	titles := make([]string, 0, len(s))
	for _, x := range s {
		titles = append(titles, x.Title)
	}
	return titles
}

func findSuggestion(t *testing.T, s []Suggestion, section string) Suggestion {
	t.Helper()
	for _, x := range s {
		if x.Section == section {
			return x
		}
	}
	require.Failf(t, "suggestion not found", "no suggestion for section %s in %v", section, suggestionTitles(s))
	return Suggestion{}
}

func TestSuggest_ZeroIncome(t *testing.T) {
	ce := NewCompareEngine(nil)
	input := domain.TaxpayerInput{}
	oldRegime, newRegime := ce.CalcEngine.CalculateBoth(input)

	suggestions := ce.Suggest(input, oldRegime, newRegime)

	assert.Equal(t, []string{
		"Maximize Section 80C Investments",
		"Consider NPS Investment",
		"Get Health Insurance Coverage",
		"New Regime May Be Better",
	}, suggestionTitles(suggestions), "ties favour the new regime hint")

	s80C := findSuggestion(t, suggestions, "80C")
	require.NotNil(t, s80C.PotentialSaving)
	assertAmount(t, "45000", *s80C.PotentialSaving, "saving is capped at 30% of the ceiling")
	assert.Contains(t, s80C.Description, "₹1,50,000 more")

	nps := findSuggestion(t, suggestions, "80CCD(1B)")
	assertAmount(t, "15000", *nps.PotentialSaving)
}

func TestSuggest_80CHeadroom(t *testing.T) {
	tests := []struct {
		name      string
		via       domain.ChapterVIADeductions
		hasHint   bool
		remaining string
		saving    string
	}{
		{name: "partly used", via: domain.ChapterVIADeductions{Section80C: d(60000)}, hasHint: true, remaining: "₹90,000", saving: "27000"},
		{name: "NPS fills the ceiling", via: domain.ChapterVIADeductions{Section80C: d(100000), Section80CCD1: d(60000)}},
		{name: "over the ceiling", via: domain.ChapterVIADeductions{Section80C: d(200000)}},
		{name: "NPS above 10% of basic", via: domain.ChapterVIADeductions{Section80CCD1: d(100000)}, hasHint: true, remaining: "₹90,000", saving: "27000"},
	}

	ce := NewCompareEngine(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := domain.TaxpayerInput{
				Salary:     domain.SalaryBreakdown{Section17_1: domain.Section17_1{BasicSalary: d(600000)}},
				Deductions: domain.Deductions{ChapterVIA: tt.via},
			}
			oldRegime, newRegime := ce.CalcEngine.CalculateBoth(input)
			suggestions := ce.Suggest(input, oldRegime, newRegime)

			var found *Suggestion
			for i := range suggestions {
				if suggestions[i].Section == "80C" {
					found = &suggestions[i]
				}
			}
			if !tt.hasHint {
				assert.Nil(t, found)
				return
			}
			require.NotNil(t, found)
			assert.Contains(t, found.Description, tt.remaining)
			assertAmount(t, tt.saving, *found.PotentialSaving)
		})
	}
}

func TestSuggest_HRAHint(t *testing.T) {
	ce := NewCompareEngine(nil)
	input := domain.TaxpayerInput{
		Salary: domain.SalaryBreakdown{
			Section17_1:       domain.Section17_1{BasicSalary: d(800000)},
			SpecialAllowances: domain.SpecialAllowances{Other: d(200000)},
		},
	}
	oldRegime, newRegime := ce.CalcEngine.CalculateBoth(input)

	suggestions := ce.Suggest(input, oldRegime, newRegime)
	hint := findSuggestion(t, suggestions, "10(13A)")
	assert.Equal(t, "Claim HRA Exemption", hint.Title)

	// below the income threshold there is no hint
	input.Salary.SpecialAllowances.Other = d(0)
	input.Salary.Section17_1.BasicSalary = d(500000)
	oldRegime, newRegime = ce.CalcEngine.CalculateBoth(input)
	assert.NotContains(t, suggestionTitles(ce.Suggest(input, oldRegime, newRegime)), "Claim HRA Exemption")
}

func TestSuggest_WellPlanned(t *testing.T) {
	ce := NewCompareEngine(nil)
	input := salariedTaxpayer()
	input.Deductions.ChapterVIA.Section80CCD1B = d(50000)

	oldRegime, newRegime := ce.CalcEngine.CalculateBoth(input)
	suggestions := ce.Suggest(input, oldRegime, newRegime)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Great Tax Planning!", suggestions[0].Title)
	assert.Nil(t, suggestions[0].PotentialSaving)
}
