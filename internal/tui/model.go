package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/itrgo/internal/calculation"
	"github.com/rgehrsitz/itrgo/internal/compare"
	"github.com/rgehrsitz/itrgo/internal/config"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/rgehrsitz/itrgo/internal/output"
)

// Model is the whole TUI state. input is the last valid snapshot; every
// accepted edit replaces it and recomputes both regimes.
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	engine *compare.CompareEngine
	parser *config.InputParser

	fields  []field
	inputs  []textinput.Model
	focused int

	input       domain.TaxpayerInput
	comparison  *compare.RegimeComparison
	adjustments []config.Adjustment
	recomputes  int

	// fieldErr is the rejection of the latest edit; the previous snapshot
	// stays in effect until the field holds a valid value again.
	fieldErr error
	err      error

	report viewport.Model
	keys   keyMap
	help   help.Model
}

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Form        key.Binding
	Report      key.Binding
	Suggestions key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab/↓", "next field")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
		Form:        key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "taxpayer")),
		Report:      key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "report")),
		Suggestions: key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "suggestions")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Report, k.Suggestions, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Form, k.Report, k.Suggestions, k.Help},
		{k.Back, k.Quit},
	}
}

// NewModel creates the model with input as the first snapshot. A nil engine
// uses the default rules.
func NewModel(calc *calculation.Engine, input domain.TaxpayerInput) Model {
	m := Model{
		currentScene: SceneForm,
		width:        100,
		height:       32,
		engine:       compare.NewCompareEngine(calc),
		parser:       config.NewInputParser(),
		fields:       formFields(),
		input:        cloneInput(input),
		keys:         defaultKeyMap(),
		help:         help.New(),
	}

	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 20
		ti.SetValue(f.get(&m.input))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	m.report = viewport.New(m.width, m.bodyHeight())
	m.recalculate()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Input returns the current snapshot.
func (m Model) Input() domain.TaxpayerInput { return cloneInput(m.input) }

// Comparison returns the comparison of the current snapshot.
func (m Model) Comparison() *compare.RegimeComparison { return m.comparison }

// CurrentScene returns the scene being shown.
func (m Model) CurrentScene() Scene { return m.currentScene }

// recalculate runs both regimes for the current snapshot.
func (m *Model) recalculate() {
	normalized, adjustments := config.NormalizeInput(m.input)
	m.adjustments = adjustments
	m.comparison = m.engine.Compare(normalized)
	m.recomputes++

	report, err := output.ConsoleFormatter{}.Format(m.comparison)
	if err != nil {
		m.report.SetContent(err.Error())
		return
	}
	m.report.SetContent(string(report))
}

func cloneInput(in domain.TaxpayerInput) domain.TaxpayerInput {
	out := in
	out.Deductions = in.Deductions.WithDonations(in.Deductions.ChapterVIA.Donations)
	return out
}
