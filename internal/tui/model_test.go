package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/fincalc/internal/riskprofile"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

// send delivers msg and then runs any follow-up commands until the model
// settles. It reports whether a quit was requested.
func send(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()
	for msg != nil {
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			return m, false
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return m, true
		}
	}
	return m, false
}

func newTestModel(t *testing.T) (Model, *riskprofile.Quiz) {
	t.Helper()
	quiz, err := riskprofile.NewQuiz(nil)
	require.NoError(t, err)
	return NewModel(quiz), quiz
}

func TestModelStartsAtHome(t *testing.T) {
	m, quiz := newTestModel(t)
	assert.Equal(t, SceneHome, m.Scene())
	assert.Equal(t, riskprofile.StateNotStarted, quiz.State())
	assert.Contains(t, m.View(), "Know your risk profile")
}

func TestModelCompletesQuiz(t *testing.T) {
	m, quiz := newTestModel(t)

	var hooked []riskprofile.Result
	m = m.WithResultHook(func(r riskprofile.Result) { hooked = append(hooked, r) })

	m, _ = send(t, m, keyEnter)
	require.Equal(t, SceneQuiz, m.Scene())
	require.Equal(t, riskprofile.StateInProgress, quiz.State())

	// Choosing the first option everywhere is the most cautious profile.
	for range quiz.Questionnaire().Questions {
		m, _ = send(t, m, keyEnter)
	}

	require.Equal(t, SceneResults, m.Scene())
	res, ok := m.LastResult()
	require.True(t, ok)
	assert.Equal(t, 7, res.NormalizedScore)
	assert.Equal(t, "Conservative", res.Tier)
	require.Len(t, hooked, 1)
	assert.Equal(t, res, hooked[0])
	assert.Contains(t, m.View(), "Conservative")
	assert.Equal(t, riskprofile.StateCompleted, quiz.State())
}

func TestModelNextWithoutAnswerShowsMessage(t *testing.T) {
	m, quiz := newTestModel(t)
	m, _ = send(t, m, keyEnter)

	m, _ = send(t, m, keyRight)
	assert.Equal(t, 0, quiz.Step())
	assert.Equal(t, "Please choose an answer before moving on.", m.quizModel.Message())
	assert.Contains(t, m.View(), "Please choose an answer")
}

func TestModelCursorAndBack(t *testing.T) {
	m, quiz := newTestModel(t)
	m, _ = send(t, m, keyEnter)

	m, _ = send(t, m, keyDown)
	m, _ = send(t, m, keyDown)
	assert.Equal(t, 2, m.quizModel.Cursor())

	m, _ = send(t, m, keyEnter)
	require.Equal(t, 1, quiz.Step())
	assert.Equal(t, 0, m.quizModel.Cursor())

	m, _ = send(t, m, keyLeft)
	require.Equal(t, 0, quiz.Step())
	assert.Equal(t, 2, m.quizModel.Cursor(), "cursor returns to the recorded answer")
}

func TestModelNumberKeysSelect(t *testing.T) {
	m, quiz := newTestModel(t)
	m, _ = send(t, m, keyEnter)

	m, _ = send(t, m, keyRunes("4"))
	idx, ok := quiz.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 3, m.quizModel.Cursor())
	assert.Equal(t, 0, quiz.Step())
}

func TestModelSubmitIncomplete(t *testing.T) {
	m, quiz := newTestModel(t)
	m, _ = send(t, m, keyEnter)
	m, _ = send(t, m, keyEnter)

	m, _ = send(t, m, keyRunes("s"))
	assert.Equal(t, SceneQuiz, m.Scene())
	assert.Equal(t, riskprofile.StateInProgress, quiz.State())
	assert.Equal(t, "Please answer every question before submitting.", m.quizModel.Message())
}

func TestModelRestartFromResults(t *testing.T) {
	m, quiz := newTestModel(t)
	m, _ = send(t, m, keyEnter)
	for range quiz.Questionnaire().Questions {
		m, _ = send(t, m, keyEnter)
	}
	require.Equal(t, SceneResults, m.Scene())

	m, _ = send(t, m, keyRunes("r"))
	assert.Equal(t, SceneQuiz, m.Scene())
	assert.Equal(t, riskprofile.StateInProgress, quiz.State())
	assert.Equal(t, 0, quiz.Step())
	answered, _ := quiz.Progress()
	assert.Zero(t, answered)
}

func TestModelEscReturnsHome(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, keyEnter)
	require.Equal(t, SceneQuiz, m.Scene())

	m, _ = send(t, m, keyEsc)
	assert.Equal(t, SceneHome, m.Scene())
}

func TestModelQuitAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	m, quit := send(t, m, keyRunes("?"))
	assert.False(t, quit)
	assert.True(t, m.help.ShowAll)

	_, quit = send(t, m, keyRunes("q"))
	assert.True(t, quit)
}

func TestModelWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
