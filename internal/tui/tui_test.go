package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/itrgo/internal/calculation"
	"github.com/rgehrsitz/itrgo/internal/compare"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func salariedTaxpayer() domain.TaxpayerInput {
	return domain.TaxpayerInput{
		Name:    "Test Taxpayer",
		Profile: domain.UserProfile{Age: 30},
		Salary: domain.SalaryBreakdown{
			Section17_1:       domain.Section17_1{BasicSalary: d(600000)},
			SpecialAllowances: domain.SpecialAllowances{HRA: d(240000), Other: d(160000)},
		},
		Deductions: domain.Deductions{
			Exemptions: domain.SalaryExemptions{RentPaid: d(300000), MetroCity: true, ProfessionalTax: d(2500)},
			ChapterVIA: domain.ChapterVIADeductions{
				Section80C:     d(100000),
				Section80CCD1:  d(80000),
				Section80DSelf: d(30000),
			},
		},
	}
}

func newTestModel() Model {
	return NewModel(calculation.NewEngine(), salariedTaxpayer())
}

func fieldIndex(t *testing.T, m Model, label string) int {
	t.Helper()
	for i, f := range m.fields {
		if f.label == label {
			return i
		}
	}
	t.Fatalf("no field %q", label)
	return -1
}

// send delivers msg and returns the updated model. Commands are not run
// because the text inputs return cursor blink timers.
func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// navigateWith presses k and delivers the NavigateMsg it produces.
func navigateWith(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, NavigateMsg{}, msg)
	return send(updated.(Model), msg)
}

func focusField(t *testing.T, m Model, label string) Model {
	t.Helper()
	target := fieldIndex(t, m, label)
	for m.focused != target {
		m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func typeText(m Model, s string) Model {
	return send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func clearField(m Model) Model {
	return send(m, tea.KeyMsg{Type: tea.KeyCtrlU})
}

func TestNewModel_ComputesInitialComparison(t *testing.T) {
	m := newTestModel()

	require.NotNil(t, m.Comparison())
	assert.Equal(t, SceneForm, m.CurrentScene())
	assert.True(t, decimal.NewFromInt(13520).Equal(m.Comparison().Old.TotalTax))
	assert.True(t, m.Comparison().New.TotalTax.IsZero())
	assert.Equal(t, compare.RecommendNew, m.Comparison().Recommended)
	assert.Equal(t, 1, m.recomputes)

	assert.Equal(t, "600000", m.inputs[fieldIndex(t, m, "Basic salary")].Value())
	assert.Equal(t, "yes", m.inputs[fieldIndex(t, m, "Metro city")].Value())
	assert.Equal(t, "", m.inputs[fieldIndex(t, m, "Bonus")].Value())
}

func TestEdit_RecomputesBothRegimes(t *testing.T) {
	m := newTestModel()
	m = focusField(t, m, "80CCD(1B) extra NPS")
	m = typeText(m, "50000")

	assert.NoError(t, m.fieldErr)
	assert.True(t, d(50000).Equal(m.Input().Deductions.ChapterVIA.Section80CCD1B))
	assert.Equal(t, 2, m.recomputes)
	assert.True(t, m.Comparison().Old.TotalTax.IsZero(), "the full 80CCD(1B) limit brings old taxable income under the rebate")
	assert.Equal(t, compare.RecommendEither, m.Comparison().Recommended)
	assert.Contains(t, m.View(), "Both regimes cost the same")
}

func TestEdit_AcceptsGroupedAmounts(t *testing.T) {
	m := newTestModel()
	m = focusField(t, m, "Bonus")
	m = typeText(m, "1,00,000")

	assert.True(t, d(100000).Equal(m.Input().Salary.Section17_3.Bonus))
	assert.True(t, d(1100000).Equal(m.Comparison().New.GrossIncome))
}

func TestEdit_RejectedValueKeepsSnapshot(t *testing.T) {
	tests := []struct {
		name  string
		field string
		text  string
		check func(t *testing.T, in domain.TaxpayerInput)
	}{
		{
			name:  "not an amount",
			field: "Basic salary",
			text:  "x",
			check: func(t *testing.T, in domain.TaxpayerInput) {
				assert.True(t, d(600000).Equal(in.Salary.Section17_1.BasicSalary))
			},
		},
		{
			name:  "age out of range",
			field: "Age",
			text:  "0",
			check: func(t *testing.T, in domain.TaxpayerInput) {
				assert.Equal(t, 30, in.Profile.Age)
			},
		},
		{
			name:  "unknown employer category",
			field: "Employer (private/government)",
			text:  "psu",
			check: func(t *testing.T, in domain.TaxpayerInput) {
				assert.Empty(t, in.Deductions.ChapterVIA.EmployerCategory)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m = focusField(t, m, tt.field)
			m = typeText(m, tt.text)

			require.Error(t, m.fieldErr)
			assert.Contains(t, m.fieldErr.Error(), tt.field)
			assert.Equal(t, 1, m.recomputes)
			tt.check(t, m.Input())
			assert.Contains(t, m.View(), tt.field)
		})
	}
}

func TestEdit_ClearingYesNoField(t *testing.T) {
	m := newTestModel()
	m = focusField(t, m, "Metro city")
	m = clearField(m)

	assert.NoError(t, m.fieldErr)
	assert.False(t, m.Input().Deductions.Exemptions.MetroCity)
	assert.Equal(t, 2, m.recomputes)
}

func TestEdit_NegativeAmountIsClamped(t *testing.T) {
	m := newTestModel()
	m = focusField(t, m, "Bonus")
	m = typeText(m, "-5000")

	require.Len(t, m.adjustments, 1)
	assert.Equal(t, "salary.section_17_3.bonus", m.adjustments[0].Field)
	assert.True(t, d(1000000).Equal(m.Comparison().Old.GrossIncome))
	assert.Contains(t, m.View(), "1 amount(s) rounded or clamped to zero")
}

func TestFocus_Wraps(t *testing.T) {
	m := newTestModel()
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, len(m.fields)-1, m.focused)

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.focused)
	assert.True(t, m.inputs[0].Focused())
	assert.False(t, m.inputs[len(m.inputs)-1].Focused())
}

func TestNavigation(t *testing.T) {
	m := newTestModel()

	m = navigateWith(t, m, tea.KeyF3)
	assert.Equal(t, SceneReport, m.CurrentScene())
	assert.Contains(t, m.View(), "INCOME TAX: OLD vs NEW REGIME")

	m = navigateWith(t, m, tea.KeyF4)
	assert.Equal(t, SceneSuggestions, m.CurrentScene())
	view := m.View()
	assert.Contains(t, view, "Consider NPS Investment")
	assert.Contains(t, view, "TDS on Rent")

	m = navigateWith(t, m, tea.KeyF1)
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "next field")

	m = navigateWith(t, m, tea.KeyEsc)
	assert.Equal(t, SceneForm, m.CurrentScene())
	assert.Equal(t, SceneHelp, m.previousScene)
}

func TestTypingOutsideFormIsIgnored(t *testing.T) {
	m := newTestModel()
	m = navigateWith(t, m, tea.KeyF4)
	m = typeText(m, "123")

	assert.Equal(t, "Test Taxpayer", m.Input().Name)
	assert.Equal(t, 1, m.recomputes)
}

func TestQuit(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m := send(newTestModel(), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 34, m.report.Height)
}

func TestErrorMsg_ClearedByKeypress(t *testing.T) {
	m := send(newTestModel(), ErrorMsg{Err: assert.AnError})
	assert.Contains(t, m.View(), "Error:")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.NoError(t, m.err)
	assert.Equal(t, "Test Taxpayer", m.Input().Name)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"150000", 150000, false},
		{"12,00,000", 1200000, false},
		{"₹ 5,000", 5000, false},
		{"1_000", 1000, false},
		{"lakh", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseYesNo(t *testing.T) {
	for _, in := range []string{"y", "YES", "true", "1"} {
		v, err := parseYesNo(in)
		assert.NoError(t, err)
		assert.True(t, v, in)
	}
	for _, in := range []string{"", "n", "No", "false", "0"} {
		v, err := parseYesNo(in)
		assert.NoError(t, err)
		assert.False(t, v, in)
	}
	_, err := parseYesNo("maybe")
	assert.Error(t, err)
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	out := MetricGrid([]*MetricCard{
		NewMetricCard("Old Regime tax", "₹13,520").WithTrend(false, "₹13,520 higher"),
		NewMetricCard("New Regime tax", "₹0").WithDescription("₹83,333/month in hand"),
	}, 2)
	assert.Contains(t, out, "Old Regime tax")
	assert.Contains(t, out, "▼ ₹13,520 higher")
	assert.Contains(t, out, "₹83,333/month in hand")
}
