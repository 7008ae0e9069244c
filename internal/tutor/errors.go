package tutor

import (
	"errors"
	"fmt"
)

// ErrSessionComplete is returned when a turn is attempted on a session
// whose final concept has finished.
var ErrSessionComplete = errors.New("tutor: session already complete")

// ErrUnknownSession is returned by the manager for session IDs it does
// not hold.
var ErrUnknownSession = errors.New("tutor: unknown session")

// ErrNoConcepts is returned when a session is created with an empty
// lesson plan.
var ErrNoConcepts = errors.New("tutor: session has no concepts")

// ClassificationError wraps a classifier failure. The turn is aborted
// without mutating session state, so the learner can resend the same
// utterance.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify utterance: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
