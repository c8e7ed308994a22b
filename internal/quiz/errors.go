package quiz

import "errors"

var (
	// ErrNoQuestions is returned when a controller is built without questions.
	ErrNoQuestions = errors.New("quiz has no questions")
	// ErrLocked is returned when submitting to a question that is already locked
	// or to a completed attempt.
	ErrLocked = errors.New("question already locked")
	// ErrNotCompleted is returned when statistics are requested mid-attempt.
	ErrNotCompleted = errors.New("attempt not completed")

	// ErrNoAnswer is returned when submitting without a selection.
	ErrNoAnswer = &ValidationError{Reason: "no answer selected"}
)

// ValidationError is the one recoverable error of a quiz attempt. The attempt
// is left unchanged and the user may submit again.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is matches any ValidationError with the same reason.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Reason == e.Reason
}
