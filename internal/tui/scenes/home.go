package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// HomeModel is the landing scene
type HomeModel struct {
	questionnaire *riskprofile.Questionnaire
	keys          KeyMap
	width         int
	height        int
}

// NewHomeModel creates a new home scene model
func NewHomeModel(q *riskprofile.Questionnaire, keys KeyMap) *HomeModel {
	return &HomeModel{questionnaire: q, keys: keys}
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update starts the quiz on enter
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Choose) {
		return m, func() tea.Msg { return tuimsg.StartQuizMsg{} }
	}
	return m, nil
}

// View renders the home scene
func (m *HomeModel) View() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.MarginBottom(1).Render("Know your risk profile"))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("Answer %d short questions about your goals, horizon and temperament.\n",
		len(m.questionnaire.Questions)))
	content.WriteString("Some questions count for more than others. Your weighted score places you\n")
	content.WriteString("in one of these profiles:\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSecondary)
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	prev := 0
	for i, tier := range m.questionnaire.Tiers {
		var band string
		if i == len(m.questionnaire.Tiers)-1 {
			band = fmt.Sprintf("%d+", prev+1)
		} else {
			band = fmt.Sprintf("up to %d", tier.MaxScore)
			prev = tier.MaxScore
		}
		content.WriteString("  • ")
		content.WriteString(sectionStyle.Render(tier.Name))
		content.WriteString(labelStyle.Render(" (" + band + ")"))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.InfoStyle.Render("Press enter to begin."))

	return tuistyles.BorderStyle.Render(content.String())
}
