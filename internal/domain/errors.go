package domain

import (
	"errors"
	"fmt"
)

// Reason is a stable code the front-ends use to pick an inline message.
type Reason string

const (
	ReasonInvalidInput      Reason = "invalid_input"
	ReasonUnsustainable     Reason = "unsustainable"
	ReasonIncompleteAnswers Reason = "incomplete_answers"
	ReasonUnanswered        Reason = "unanswered"
	ReasonInvalidTransition Reason = "invalid_transition"
)

// Sentinel errors matched with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsustainable     = errors.New("withdrawal plan cannot be computed")
	ErrIncompleteAnswers = errors.New("not every question has been answered")
	ErrUnanswered        = errors.New("current question has no answer")
	ErrInvalidTransition = errors.New("transition not allowed in current state")
)

// CalcError carries a reason code plus the offending field, if any.
type CalcError struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *CalcError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Is lets errors.Is match a CalcError against the sentinel for its reason.
func (e *CalcError) Is(target error) bool {
	return sentinelFor(e.Reason) == target
}

func sentinelFor(r Reason) error {
	switch r {
	case ReasonInvalidInput:
		return ErrInvalidInput
	case ReasonUnsustainable:
		return ErrUnsustainable
	case ReasonIncompleteAnswers:
		return ErrIncompleteAnswers
	case ReasonUnanswered:
		return ErrUnanswered
	case ReasonInvalidTransition:
		return ErrInvalidTransition
	}
	return nil
}

// InvalidInput builds an InvalidInput error for field.
func InvalidInput(field, format string, args ...any) error {
	return &CalcError{Reason: ReasonInvalidInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Unsustainable builds an Unsustainable error.
func Unsustainable(format string, args ...any) error {
	return &CalcError{Reason: ReasonUnsustainable, Message: fmt.Sprintf(format, args...)}
}

// NewReasonError builds a CalcError with an arbitrary reason.
func NewReasonError(reason Reason, format string, args ...any) error {
	return &CalcError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ReasonOf returns the reason code of the first CalcError in err's chain,
// or the empty string when err is nil or carries no reason.
func ReasonOf(err error) Reason {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Reason
	}
	return ""
}
