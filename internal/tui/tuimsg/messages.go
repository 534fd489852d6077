// Package tuimsg holds messages scenes send to the root model. It exists so
// scenes need not import the tui package.
package tuimsg

import (
	"github.com/rgehrsitz/fincalc/internal/riskprofile"
)

// StartQuizMsg asks the root model to begin the questionnaire
type StartQuizMsg struct{}

// QuizSubmittedMsg signals the quiz completed with a result
type QuizSubmittedMsg struct {
	Result riskprofile.Result
}

// RestartQuizMsg asks the root model to reset and start over
type RestartQuizMsg struct{}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
