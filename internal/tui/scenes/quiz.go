package scenes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tui/components"
	"github.com/rgehrsitz/fincalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// QuizModel steps through the questionnaire one question at a time
type QuizModel struct {
	quiz    *riskprofile.Quiz
	keys    KeyMap
	cursor  int
	message string
	width   int
	height  int
}

// NewQuizModel creates a new quiz scene model
func NewQuizModel(quiz *riskprofile.Quiz, keys KeyMap) *QuizModel {
	return &QuizModel{quiz: quiz, keys: keys}
}

// SetSize updates the scene dimensions
func (m *QuizModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor is the highlighted option index.
func (m *QuizModel) Cursor() int { return m.cursor }

// Message is the validation message currently shown, if any.
func (m *QuizModel) Message() string { return m.message }

// Sync moves the cursor to the recorded answer for the current step.
func (m *QuizModel) Sync() {
	m.cursor = 0
	if idx, ok := m.quiz.Selected(); ok {
		m.cursor = idx
	}
}

// Update handles messages for the quiz scene
func (m *QuizModel) Update(msg tea.Msg) (*QuizModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	question, ok := m.quiz.Current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(question.Options)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Choose):
		if err := m.quiz.Select(m.cursor); err != nil {
			m.message = err.Error()
			return m, nil
		}
		if m.quiz.Step() == len(m.quiz.Questionnaire().Questions)-1 {
			return m, m.submit()
		}
		return m, m.advance()

	case key.Matches(keyMsg, m.keys.Next):
		return m, m.advance()

	case key.Matches(keyMsg, m.keys.Back):
		if err := m.quiz.Back(); err == nil {
			m.message = ""
			m.Sync()
		}

	case key.Matches(keyMsg, m.keys.Submit):
		return m, m.submit()

	default:
		// Number keys pick an option directly.
		if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(question.Options) {
				m.cursor = idx
				if err := m.quiz.Select(idx); err != nil {
					m.message = err.Error()
				}
			}
		}
	}
	return m, nil
}

func (m *QuizModel) advance() tea.Cmd {
	if err := m.quiz.Next(); err != nil {
		m.message = validationMessage(err)
		return nil
	}
	m.message = ""
	m.Sync()
	return nil
}

func (m *QuizModel) submit() tea.Cmd {
	res, err := m.quiz.Submit()
	if err != nil {
		m.message = validationMessage(err)
		return nil
	}
	m.message = ""
	return func() tea.Msg { return tuimsg.QuizSubmittedMsg{Result: res} }
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnanswered):
		return "Please choose an answer before moving on."
	case errors.Is(err, domain.ErrIncompleteAnswers):
		return "Please answer every question before submitting."
	case errors.Is(err, domain.ErrInvalidTransition):
		return "That's the last question. Press s to submit."
	}
	return err.Error()
}

// View renders the quiz scene
func (m *QuizModel) View() string {
	question, ok := m.quiz.Current()
	if !ok {
		return tuistyles.BorderStyle.Render(tuistyles.SubtitleStyle.Render("The quiz has not started."))
	}

	var content strings.Builder

	total := len(m.quiz.Questionnaire().Questions)
	answered, _ := m.quiz.Progress()
	content.WriteString(components.NewProgressBar(answered, total).
		WithLabel(fmt.Sprintf("Question %d of %d", m.quiz.Step()+1, total)).
		Render())
	content.WriteString("\n\n")

	content.WriteString(tuistyles.TitleStyle.Render(question.Prompt))
	content.WriteString("\n\n")

	selected, hasSelection := m.quiz.Selected()
	for i, opt := range question.Options {
		pointer := "  "
		style := tuistyles.UnselectedItemStyle
		if i == m.cursor {
			pointer = "› "
			style = tuistyles.SelectedItemStyle
		}
		line := fmt.Sprintf("%s%d. %s", pointer, i+1, opt.Label)
		content.WriteString(style.Render(line))
		if hasSelection && i == selected {
			content.WriteString(tuistyles.AnsweredMarkStyle.Render("  ✓"))
		}
		content.WriteString("\n")
	}

	if m.message != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.ErrorStyle.Render(m.message))
	}

	return tuistyles.ActiveBorderStyle.Render(content.String())
}
