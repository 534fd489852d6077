package riskprofile

import (
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(q *Questionnaire, score int) Answers {
	a := Answers{}
	for _, question := range q.Questions {
		a[question.ID] = score
	}
	return a
}

func TestDefaultQuestionnaire(t *testing.T) {
	q := DefaultQuestionnaire()
	require.NoError(t, q.Validate())
	require.Len(t, q.Questions, 7)

	weights := make([]float64, 0, len(q.Questions))
	for _, question := range q.Questions {
		weights = append(weights, question.EffectiveWeight())
	}
	assert.Equal(t, []float64{1, 1.25, 1, 1.5, 1, 1.5, 1}, weights)
	assert.Equal(t, 35, q.MaxScore())
}

func TestScoreUniformExtremes(t *testing.T) {
	q := DefaultQuestionnaire()

	top, err := q.Score(uniform(q, 5))
	require.NoError(t, err)
	assert.Equal(t, 35, top)

	bottom, err := q.Score(uniform(q, 1))
	require.NoError(t, err)
	assert.Equal(t, 7, bottom)
}

func TestScoreWeighted(t *testing.T) {
	q := DefaultQuestionnaire()
	answers := Answers{
		"age":        3,
		"horizon":    4,
		"income":     3,
		"reaction":   2,
		"experience": 3,
		"goal":       4,
		"emergency":  3,
	}
	// (3 + 5 + 3 + 3 + 3 + 6 + 3) / 8.25 * 7 = 22.06
	score, err := q.Score(answers)
	require.NoError(t, err)
	assert.Equal(t, 22, score)

	res, err := q.Evaluate(answers)
	require.NoError(t, err)
	assert.Equal(t, "Moderate", res.Tier)
	assert.Equal(t, "Moderate (22/35)", res.String())
}

func TestScoreErrors(t *testing.T) {
	q := DefaultQuestionnaire()

	partial := uniform(q, 3)
	delete(partial, "goal")
	_, err := q.Score(partial)
	assert.ErrorIs(t, err, domain.ErrIncompleteAnswers)

	bad := uniform(q, 3)
	bad["age"] = 9
	_, err = q.Score(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClassify(t *testing.T) {
	q := DefaultQuestionnaire()
	tests := []struct {
		score int
		tier  string
	}{
		{7, "Conservative"},
		{14, "Conservative"},
		{15, "Moderately Conservative"},
		{19, "Moderately Conservative"},
		{24, "Moderate"},
		{29, "Moderately Aggressive"},
		{30, "Aggressive"},
		{35, "Aggressive"},
		{100, "Aggressive"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tier, q.Classify(tt.score).Name, "score %d", tt.score)
	}
}

func TestTierAllocationsSumTo100(t *testing.T) {
	for _, tier := range DefaultQuestionnaire().Tiers {
		total := 0.0
		for _, a := range tier.Allocation {
			total += a.Percent
		}
		assert.InDelta(t, 100, total, 1e-9, tier.Name)
		assert.NotEmpty(t, tier.Advice)
	}
}

func TestQuestionnaireValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Questionnaire)
		wantErr string
	}{
		{"negative weight", func(q *Questionnaire) { q.Questions[1].Weight = -1 }, "weight must be positive"},
		{"score out of range", func(q *Questionnaire) { q.Questions[0].Options[0].Score = 0 }, "score must be between"},
		{"no options", func(q *Questionnaire) { q.Questions[2].Options = nil }, "at least one option"},
		{"duplicate id", func(q *Questionnaire) { q.Questions[3].ID = "age" }, "duplicate id"},
		{"no questions", func(q *Questionnaire) { q.Questions = nil }, "no questions"},
		{"no tiers", func(q *Questionnaire) { q.Tiers = nil }, "no tiers"},
		{"tiers out of order", func(q *Questionnaire) { q.Tiers[2].MaxScore = 10 }, "must exceed"},
		{"allocation not 100", func(q *Questionnaire) { q.Tiers[0].Allocation[0].Percent = 50 }, "want 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := DefaultQuestionnaire()
			tt.mutate(q)
			err := q.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Panics(t, func() { q.MustValidate() })
		})
	}
}

func TestQuizHappyPath(t *testing.T) {
	quiz, err := NewQuiz(nil)
	require.NoError(t, err)
	assert.Equal(t, StateNotStarted, quiz.State())

	require.NoError(t, quiz.Start())
	assert.Equal(t, StateInProgress, quiz.State())

	n := len(quiz.Questionnaire().Questions)
	for i := 0; i < n; i++ {
		assert.Equal(t, i, quiz.Step())
		require.NoError(t, quiz.Select(4))
		answered, total := quiz.Progress()
		assert.Equal(t, i+1, answered)
		assert.Equal(t, n, total)
		if i < n-1 {
			require.NoError(t, quiz.Next())
		}
	}

	res, err := quiz.Submit()
	require.NoError(t, err)
	assert.Equal(t, 35, res.NormalizedScore)
	assert.Equal(t, "Aggressive", res.Tier)
	assert.Equal(t, StateCompleted, quiz.State())

	stored, ok := quiz.Result()
	require.True(t, ok)
	assert.Equal(t, res, stored)

	_, ok = quiz.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, quiz.Select(0), domain.ErrInvalidTransition)
}

func TestQuizNextRequiresAnswer(t *testing.T) {
	quiz := MustNewQuiz(nil)
	require.NoError(t, quiz.Start())

	err := quiz.Next()
	require.ErrorIs(t, err, domain.ErrUnanswered)
	assert.Equal(t, domain.ReasonUnanswered, domain.ReasonOf(err))
	assert.Equal(t, 0, quiz.Step())
	assert.Equal(t, StateInProgress, quiz.State())

	require.NoError(t, quiz.Select(1))
	require.NoError(t, quiz.Next())
	assert.Equal(t, 1, quiz.Step())
}

func TestQuizBack(t *testing.T) {
	quiz := MustNewQuiz(nil)
	require.NoError(t, quiz.Start())
	assert.ErrorIs(t, quiz.Back(), domain.ErrInvalidTransition)

	require.NoError(t, quiz.Select(2))
	require.NoError(t, quiz.Next())
	require.NoError(t, quiz.Back())
	assert.Equal(t, 0, quiz.Step())

	idx, ok := quiz.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestQuizSubmitIncomplete(t *testing.T) {
	quiz := MustNewQuiz(nil)
	require.NoError(t, quiz.Start())
	require.NoError(t, quiz.Select(0))

	_, err := quiz.Submit()
	require.ErrorIs(t, err, domain.ErrIncompleteAnswers)
	assert.Equal(t, StateInProgress, quiz.State())
	answered, _ := quiz.Progress()
	assert.Equal(t, 1, answered)
}

func TestQuizAnswerByID(t *testing.T) {
	quiz := MustNewQuiz(nil)
	require.NoError(t, quiz.Start())

	for _, question := range quiz.Questionnaire().Questions {
		require.NoError(t, quiz.Answer(question.ID, 1))
	}
	assert.ErrorIs(t, quiz.Answer("nope", 1), domain.ErrInvalidInput)
	assert.ErrorIs(t, quiz.Answer("age", 6), domain.ErrInvalidInput)

	res, err := quiz.Submit()
	require.NoError(t, err)
	assert.Equal(t, 7, res.NormalizedScore)
	assert.Equal(t, "Conservative", res.Tier)
}

func TestQuizSelectOutOfRange(t *testing.T) {
	quiz := MustNewQuiz(nil)
	require.NoError(t, quiz.Start())
	assert.ErrorIs(t, quiz.Select(5), domain.ErrInvalidInput)
	assert.ErrorIs(t, quiz.Select(-1), domain.ErrInvalidInput)
}

func TestQuizTransitionsOutOfState(t *testing.T) {
	quiz := MustNewQuiz(nil)
	assert.ErrorIs(t, quiz.Next(), domain.ErrInvalidTransition)
	_, err := quiz.Submit()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, quiz.Start())
	assert.ErrorIs(t, quiz.Start(), domain.ErrInvalidTransition)
}

func TestQuizResetAndRestart(t *testing.T) {
	quiz := MustNewQuiz(nil)
	require.NoError(t, quiz.Start())
	for _, question := range quiz.Questionnaire().Questions {
		require.NoError(t, quiz.Answer(question.ID, 3))
	}
	_, err := quiz.Submit()
	require.NoError(t, err)

	quiz.Reset()
	assert.Equal(t, StateNotStarted, quiz.State())
	_, ok := quiz.Result()
	assert.False(t, ok)
	answered, _ := quiz.Progress()
	assert.Zero(t, answered)

	require.NoError(t, quiz.Start())
	answered, _ = quiz.Progress()
	assert.Zero(t, answered)
}

func TestNewQuizRejectsBadQuestionnaire(t *testing.T) {
	q := DefaultQuestionnaire()
	q.Questions[0].Weight = -2
	_, err := NewQuiz(q)
	assert.ErrorContains(t, err, "invalid questionnaire")
	assert.Panics(t, func() { MustNewQuiz(q) })
}
