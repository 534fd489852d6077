package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
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
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.quizModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tuimsg.StartQuizMsg, tuimsg.RestartQuizMsg:
		return m.startQuiz()

	case tuimsg.QuizSubmittedMsg:
		res := msg.Result
		m.last = &res
		m.resultsModel.SetResult(res)
		if m.onResult != nil {
			m.onResult(res)
		}
		m.previousScene = m.currentScene
		m.currentScene = SceneResults
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m Model) startQuiz() (tea.Model, tea.Cmd) {
	m.quiz.Reset()
	if err := m.quiz.Start(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.quizModel.Sync()
	m.previousScene = m.currentScene
	m.currentScene = SceneQuiz
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case msg.String() == "esc":
		// An error screen is dismissed first; otherwise go home.
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.currentScene != SceneHome {
			return m, func() tea.Msg { return NavigateMsg{Scene: SceneHome} }
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneQuiz:
		m.quizModel, cmd = m.quizModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
