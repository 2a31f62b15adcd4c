package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneReport
	SceneSuggestions
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Taxpayer"
	case SceneReport:
		return "Report"
	case SceneSuggestions:
		return "Suggestions"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
