package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// ResultsModel shows a completed risk profile
type ResultsModel struct {
	result *riskprofile.Result
	keys   KeyMap
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel(keys KeyMap) *ResultsModel {
	return &ResultsModel{keys: keys}
}

// SetResult updates the result to display
func (m *ResultsModel) SetResult(res riskprofile.Result) {
	m.result = &res
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Restart) {
		return m, func() tea.Msg { return tuimsg.RestartQuizMsg{} }
	}
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.result == nil {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render("No result yet. Complete the quiz first."))
	}
	res := m.result

	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("Your risk profile"))
	content.WriteString("\n\n")

	cards := []*components.MetricCard{
		components.NewMetricCard("Profile", res.Tier).WithWidth(32).WithHighlight(),
		components.NewMetricCard("Score", fmt.Sprintf("%d / %d", res.NormalizedScore, res.MaxScore)).WithWidth(20),
	}
	content.WriteString(components.MetricGrid(cards, len(cards)))
	content.WriteString("\n\n")

	content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSecondary).Render("Suggested allocation"))
	content.WriteString("\n")
	content.WriteString(components.NewAllocationChart(res.Allocation).Render())
	content.WriteString("\n\n")

	adviceWidth := 60
	if m.width > 10 {
		adviceWidth = min(adviceWidth, m.width-10)
	}
	content.WriteString(tuistyles.InfoStyle.Width(adviceWidth).Render(res.Advice))
	content.WriteString("\n\n")
	content.WriteString(tuistyles.SubtitleStyle.Render("Press r to take the quiz again."))

	return tuistyles.BorderStyle.Render(content.String())
}
