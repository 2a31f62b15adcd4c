package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/itrgo/internal/domain"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err)))
	}

	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.renderForm()
	case SceneReport:
		content = m.renderReport()
	case SceneSuggestions:
		content = m.renderSuggestions()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	title := TitleStyle.Render("ITRGO - Old vs New Regime")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())
	if m.comparison != nil {
		breadcrumb = SubtitleStyle.Render(fmt.Sprintf("%s / FY %s", m.currentScene.String(), m.comparison.FinancialYear))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		breadcrumb,
		content,
		StatusBarStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) bodyHeight() int {
	return max(8, m.height-6)
}

func (m Model) renderForm() string {
	var lines []string
	focusedLine := 0
	section := ""
	for i, f := range m.fields {
		if f.section != section {
			section = f.section
			lines = append(lines, SectionStyle.Render(section))
		}
		label := FieldLabelStyle.Render(f.label)
		marker := "  "
		if i == m.focused {
			label = FocusedFieldLabelStyle.Render(f.label)
			marker = "> "
			focusedLine = len(lines)
		}
		lines = append(lines, marker+label+m.inputs[i].View())
	}

	// Keep the focused field on screen.
	height := m.bodyHeight()
	start := 0
	if len(lines) > height {
		start = min(max(0, focusedLine-height/2), len(lines)-height)
		lines = lines[start : start+height]
	}
	form := strings.Join(lines, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", m.renderSummary())
}

func (m Model) renderSummary() string {
	c := m.comparison
	if c == nil {
		return ""
	}

	oldCard := NewMetricCard("Old Regime tax", domain.FormatINR(c.Old.TotalTax)).
		WithDescription(domain.FormatINR(c.OldMonthlyInHand) + "/month in hand")
	newCard := NewMetricCard("New Regime tax", domain.FormatINR(c.New.TotalTax)).
		WithDescription(domain.FormatINR(c.NewMonthlyInHand) + "/month in hand")
	if regime, ok := c.Recommended.Regime(); ok {
		saving := domain.FormatINR(c.Savings) + " lower"
		if regime == domain.RegimeOld {
			oldCard.WithTrend(true, saving)
		} else {
			newCard.WithTrend(true, saving)
		}
	}

	parts := []string{
		MetricGrid([]*MetricCard{oldCard, newCard}, 2),
		MetricGrid([]*MetricCard{
			NewMetricCard("Taxable (old)", domain.FormatINR(c.Old.TaxableIncome)),
			NewMetricCard("Taxable (new)", domain.FormatINR(c.New.TaxableIncome)),
		}, 2),
		RecommendationStyle.Render(c.Headline()),
	}
	if m.fieldErr != nil {
		parts = append(parts, ErrorStyle.Render(m.fieldErr.Error()))
	}
	if len(m.adjustments) > 0 {
		parts = append(parts, InfoStyle.Render(fmt.Sprintf("%d amount(s) rounded or clamped to zero", len(m.adjustments))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderReport() string {
	return m.report.View()
}

func (m Model) renderSuggestions() string {
	if m.comparison == nil {
		return BorderStyle.Render("Nothing to suggest yet")
	}

	var b strings.Builder
	b.WriteString(SectionStyle.Render("Suggestions") + "\n")
	for _, s := range m.comparison.Suggestions {
		title := s.Title
		if title == "" {
			title = s.Section
		}
		b.WriteString(MetricValueStyle.Render("• "+title) + "\n")
		b.WriteString("  " + s.Description + "\n")
		if s.Impact != "" {
			b.WriteString("  " + MetricPositiveStyle.Render(s.Impact) + "\n")
		}
	}

	b.WriteString(SectionStyle.Render("Compliances to keep in mind") + "\n")
	for _, r := range m.comparison.Compliance {
		b.WriteString(fmt.Sprintf("• %s (%s)\n", r.Title, r.Reference))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	text := "Edit any field; both regimes are recomputed on every change.\n" +
		"Amounts accept grouping such as 12,00,000. Yes/no fields take y or n.\n\n" +
		m.help.FullHelpView(m.keys.FullHelp())
	return BorderStyle.Render(text)
}
