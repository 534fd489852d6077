package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneQuiz:
		content = m.quizModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - lipgloss.Height(titleBar) - lipgloss.Height(statusBar) - 1
	contentContainer := lipgloss.NewStyle().
		Height(max(contentHeight, 0)).
		Render(content)

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	))
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("fincalc - Risk Profile")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

// renderStatusBar renders the key help
func (m Model) renderStatusBar() string {
	return StatusBarStyle.Render(m.help.View(m.keys))
}

// renderError renders an error message
func (m Model) renderError() string {
	return BorderStyle.Render(ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress esc to continue...", m.err),
	))
}
