package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.report.Width = msg.Width
		m.report.Height = m.bodyHeight()
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	if m.currentScene == SceneForm {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: scene} }
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m, navigate(SceneHelp)
	case key.Matches(msg, m.keys.Form):
		return m, navigate(SceneForm)
	case key.Matches(msg, m.keys.Report):
		return m, navigate(SceneReport)
	case key.Matches(msg, m.keys.Suggestions):
		return m, navigate(SceneSuggestions)
	case key.Matches(msg, m.keys.Back):
		if m.currentScene != SceneForm {
			return m, navigate(SceneForm)
		}
		return m, nil
	}

	if m.currentScene == SceneReport {
		var cmd tea.Cmd
		m.report, cmd = m.report.Update(msg)
		return m, cmd
	}
	if m.currentScene != SceneForm {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.focus(m.focused + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.focus(m.focused - 1)
	}
	return m.updateFocusedInput(msg)
}

// focus moves the cursor to field i, wrapping at both ends.
func (m *Model) focus(i int) tea.Cmd {
	n := len(m.inputs)
	i = ((i % n) + n) % n
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].CursorEnd()
	return m.inputs[i].Focus()
}

// updateFocusedInput forwards msg to the focused field and, when its text
// changed, applies the edit to a new snapshot.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focused].Value()

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	if value := m.inputs[m.focused].Value(); value != before {
		m.applyEdit(value)
	}
	return m, cmd
}

func (m *Model) applyEdit(value string) {
	f := m.fields[m.focused]
	next := cloneInput(m.input)
	if err := f.set(&next, value); err != nil {
		m.fieldErr = fmt.Errorf("%s: %w", f.label, err)
		return
	}
	if err := m.parser.ValidateInput(next); err != nil {
		m.fieldErr = fmt.Errorf("%s: %w", f.label, err)
		return
	}

	m.fieldErr = nil
	m.input = next
	m.recalculate()
}
