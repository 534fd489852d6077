package riskprofile

import (
	"fmt"

	"github.com/rgehrsitz/fincalc/internal/domain"
)

// State is the quiz lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Quiz steps a single respondent through a Questionnaire.
//
//	NotStarted --Start--> InProgress(0) --Next/Back--> InProgress(k) --Submit--> Completed
//	any --Reset--> NotStarted
//
// A Quiz is owned by one caller and is not safe for concurrent use.
type Quiz struct {
	questionnaire *Questionnaire
	state         State
	step          int
	answers       Answers
	selected      map[string]int
	result        *Result
}

// NewQuiz validates questionnaire and returns a quiz in NotStarted. A nil
// questionnaire selects DefaultQuestionnaire.
func NewQuiz(questionnaire *Questionnaire) (*Quiz, error) {
	if questionnaire == nil {
		questionnaire = DefaultQuestionnaire()
	}
	if err := questionnaire.Validate(); err != nil {
		return nil, fmt.Errorf("invalid questionnaire: %w", err)
	}
	return &Quiz{questionnaire: questionnaire}, nil
}

// MustNewQuiz is NewQuiz that panics on a malformed questionnaire.
func MustNewQuiz(questionnaire *Questionnaire) *Quiz {
	q, err := NewQuiz(questionnaire)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Quiz) Questionnaire() *Questionnaire { return q.questionnaire }
func (q *Quiz) State() State                  { return q.state }
func (q *Quiz) Step() int                     { return q.step }

func transitionError(action string, s State) error {
	return domain.NewReasonError(domain.ReasonInvalidTransition, "cannot %s while %s", action, s)
}

// Start begins the quiz at the first question with an empty answer set.
func (q *Quiz) Start() error {
	if q.state != StateNotStarted {
		return transitionError("start", q.state)
	}
	q.state = StateInProgress
	q.step = 0
	q.answers = Answers{}
	q.selected = map[string]int{}
	return nil
}

// Current returns the question at the current step.
func (q *Quiz) Current() (Question, bool) {
	if q.state != StateInProgress {
		return Question{}, false
	}
	return q.questionnaire.Questions[q.step], true
}

// Selected returns the option index chosen for the current question.
func (q *Quiz) Selected() (int, bool) {
	question, ok := q.Current()
	if !ok {
		return 0, false
	}
	idx, ok := q.selected[question.ID]
	return idx, ok
}

// Select records the option at index for the current question. Choosing
// again overwrites the earlier answer.
func (q *Quiz) Select(index int) error {
	question, ok := q.Current()
	if !ok {
		return transitionError("answer", q.state)
	}
	if index < 0 || index >= len(question.Options) {
		return domain.InvalidInput(question.ID, "option %d out of range [0, %d)", index, len(question.Options))
	}
	q.answers[question.ID] = question.Options[index].Score
	q.selected[question.ID] = index
	return nil
}

// Answer records score for the question with id, which must be one of its
// option scores.
func (q *Quiz) Answer(id string, score int) error {
	if q.state != StateInProgress {
		return transitionError("answer", q.state)
	}
	question, ok := q.questionnaire.Question(id)
	if !ok {
		return domain.InvalidInput("id", "unknown question %q", id)
	}
	for i, opt := range question.Options {
		if opt.Score == score {
			q.answers[id] = score
			q.selected[id] = i
			return nil
		}
	}
	return domain.InvalidInput(id, "no option scores %d", score)
}

// Next advances one step. It fails with ErrUnanswered, leaving the step
// unchanged, when the current question has no answer.
func (q *Quiz) Next() error {
	question, ok := q.Current()
	if !ok {
		return transitionError("advance", q.state)
	}
	if _, answered := q.answers[question.ID]; !answered {
		return &domain.CalcError{
			Reason:  domain.ReasonUnanswered,
			Field:   question.ID,
			Message: "please choose an answer before continuing",
		}
	}
	if q.step == len(q.questionnaire.Questions)-1 {
		return transitionError("advance past the last question", q.state)
	}
	q.step++
	return nil
}

// Back returns to the previous question, keeping its answer.
func (q *Quiz) Back() error {
	if q.state != StateInProgress || q.step == 0 {
		return transitionError("go back", q.state)
	}
	q.step--
	return nil
}

// Submit scores the answer set and completes the quiz. The answer set is
// discarded once the result is produced. An incomplete set is rejected with
// ErrIncompleteAnswers and nothing changes.
func (q *Quiz) Submit() (Result, error) {
	if q.state != StateInProgress {
		return Result{}, transitionError("submit", q.state)
	}
	res, err := q.questionnaire.Evaluate(q.answers)
	if err != nil {
		return Result{}, err
	}
	q.state = StateCompleted
	q.result = &res
	q.answers = nil
	q.selected = nil
	return res, nil
}

// Result returns the completed result.
func (q *Quiz) Result() (Result, bool) {
	if q.state != StateCompleted || q.result == nil {
		return Result{}, false
	}
	return *q.result, true
}

// Reset returns the quiz to NotStarted from any state.
func (q *Quiz) Reset() {
	q.state = StateNotStarted
	q.step = 0
	q.answers = nil
	q.selected = nil
	q.result = nil
}

// Progress reports how many questions are answered out of the total.
func (q *Quiz) Progress() (answered, total int) {
	total = len(q.questionnaire.Questions)
	switch q.state {
	case StateInProgress:
		return len(q.answers), total
	case StateCompleted:
		return total, total
	}
	return 0, total
}
