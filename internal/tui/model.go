package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	quiz *riskprofile.Quiz
	last *riskprofile.Result

	keys scenes.KeyMap
	help help.Model

	homeModel    *scenes.HomeModel
	quizModel    *scenes.QuizModel
	resultsModel *scenes.ResultsModel

	// Called once per completed quiz.
	onResult func(riskprofile.Result)

	err error
}

// NewModel creates a new application model around quiz
func NewModel(quiz *riskprofile.Quiz) Model {
	keys := scenes.DefaultKeyMap()
	return Model{
		currentScene: SceneHome,
		quiz:         quiz,
		keys:         keys,
		help:         help.New(),
		homeModel:    scenes.NewHomeModel(quiz.Questionnaire(), keys),
		quizModel:    scenes.NewQuizModel(quiz, keys),
		resultsModel: scenes.NewResultsModel(keys),
		width:        80,
		height:       24,
	}
}

// WithResultHook registers fn to be called with each completed profile.
func (m Model) WithResultHook(fn func(riskprofile.Result)) Model {
	m.onResult = fn
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// Scene reports the scene currently shown.
func (m Model) Scene() Scene { return m.currentScene }

// LastResult is the most recently completed profile, if any.
func (m Model) LastResult() (riskprofile.Result, bool) {
	if m.last == nil {
		return riskprofile.Result{}, false
	}
	return *m.last, true
}

// Err is the error currently displayed, if any.
func (m Model) Err() error { return m.err }
