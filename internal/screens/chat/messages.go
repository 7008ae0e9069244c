package chat

import (
	"github.com/adasgupta/simtutor/internal/tutor"
)

// sessionStartedMsg is sent when session creation finishes.
type sessionStartedMsg struct {
	SessionID string
	Opening   string
	Progress  tutor.Progress
	Err       error
}

// turnDoneMsg is sent when a full dialogue turn finishes.
type turnDoneMsg struct {
	Result   *tutor.TurnResult
	Progress tutor.Progress
	Err      error
}
