package interview

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID resolves to nothing.
var ErrSessionNotFound = errors.New("session not found")

// ErrQuestionNotFound is returned when a question ID does not belong to the
// session it was addressed to.
var ErrQuestionNotFound = errors.New("question not found")

// ValidationError reports rejected caller input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SessionStateError reports an operation attempted in a state that does not
// permit it, e.g. finalizing a session that is not completed.
type SessionStateError struct {
	SessionID string
	State     Status
	Op        string
}

func (e *SessionStateError) Error() string {
	return fmt.Sprintf("cannot %s session %s in state %s", e.Op, e.SessionID, e.State)
}

// GenerationFailedError wraps a question-generation failure. Unwrap exposes
// the underlying resilient failure so callers can discriminate provider
// errors from an open circuit.
type GenerationFailedError struct {
	Err error
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationFailedError) Unwrap() error { return e.Err }

// EvaluationFailedError wraps an answer-evaluation failure. The session stays
// in the evaluating state; the candidate may resubmit or skip.
type EvaluationFailedError struct {
	QuestionID string
	Err        error
}

func (e *EvaluationFailedError) Error() string {
	return fmt.Sprintf("evaluation of question %s failed: %v", e.QuestionID, e.Err)
}

func (e *EvaluationFailedError) Unwrap() error { return e.Err }
