package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneQuiz
	SceneResults
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneQuiz:
		return "Quiz"
	case SceneResults:
		return "Results"
	default:
		return "Unknown"
	}
}
