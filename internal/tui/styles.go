package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorAccent  = lipgloss.Color("#F4A261")
	ColorSuccess = lipgloss.Color("#2A9D8F")
	ColorDanger  = lipgloss.Color("#E76F51")
	ColorMuted   = lipgloss.Color("#8A8A8A")
	ColorBorder  = lipgloss.Color("#5C5C5C")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FieldLabelStyle        = lipgloss.NewStyle().Width(26)
	FocusedFieldLabelStyle = FieldLabelStyle.Bold(true).Foreground(ColorPrimary)
	SectionStyle           = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).MarginTop(1)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	RecommendationStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess).
				MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
)
