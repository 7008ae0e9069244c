package tutor

import (
	"fmt"
	"time"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/catalog"
)

// Message roles.
const (
	RoleTeacher = "teacher"
	RoleLearner = "learner"
)

// Message is one line of the session dialogue.
type Message struct {
	Role      string
	Content   string
	Timestamp time.Time

	// Level is the understanding the classifier assigned to this
	// utterance. Only meaningful for learner messages.
	Level assess.UnderstandingLevel

	// Exchange is the exchange count on the concept at the time of the
	// message.
	Exchange int
}

// ParamChange records one applied simulation parameter adjustment.
type ParamChange struct {
	Parameter          string
	OldValue           any
	NewValue           any
	Reason             string
	PredictionQuestion string

	// UnderstandingBefore is the learner's level when the change was
	// applied; a later rise marks the change effective.
	UnderstandingBefore assess.UnderstandingLevel
	WasEffective        bool

	At time.Time
}

// Line formats the change for prompt context.
func (pc ParamChange) Line() string {
	s := fmt.Sprintf("%s: %s -> %s (%s)",
		pc.Parameter,
		catalog.FormatValue(pc.OldValue),
		catalog.FormatValue(pc.NewValue),
		pc.Reason)
	if pc.WasEffective {
		s += " [helped]"
	}
	return s
}

// SessionState is the full in-memory state of one tutoring session.
// Sessions live in memory for their lifetime; only events are persisted.
// The controller mutates state only after a turn fully succeeds.
type SessionState struct {
	ID         string
	Simulation catalog.Simulation
	Concepts   []catalog.Concept

	// ConceptIndex is the position of the active concept in Concepts.
	ConceptIndex int

	// Exchange counts completed exchanges on the active concept. It
	// resets to zero when the session advances to the next concept.
	Exchange int

	// TotalExchanges counts completed exchanges across all concepts.
	TotalExchanges int

	// Levels is the understanding trajectory for the active concept,
	// oldest first. It resets when the session advances.
	Levels []assess.UnderstandingLevel

	// LevelLog is the full understanding trajectory across the whole
	// session. Unlike Levels it never resets.
	LevelLog []assess.UnderstandingLevel

	// ConceptsCompleted counts concepts closed out so far. A forced
	// advance at the exchange ceiling counts as completion.
	ConceptsCompleted int

	// Completed is set once the final concept finishes. A completed
	// session refuses further turns.
	Completed bool

	Params       catalog.Params
	Messages     []Message
	ParamChanges []ParamChange

	// LastTurn holds the outcome of the most recent completed turn,
	// nil before the first one.
	LastTurn *TurnResult

	CreatedAt time.Time
}

// NewSessionState builds a fresh session over a simulation and its
// lesson plan.
func NewSessionState(id string, sim catalog.Simulation, concepts []catalog.Concept) *SessionState {
	return &SessionState{
		ID:         id,
		Simulation: sim,
		Concepts:   concepts,
		Params:     sim.InitialParams.Clone(),
		CreatedAt:  time.Now(),
	}
}

// Concept returns the active concept. Once the session completes the
// index sits one past the end and the final concept is returned.
func (s *SessionState) Concept() catalog.Concept {
	if s.ConceptIndex >= len(s.Concepts) {
		return s.Concepts[len(s.Concepts)-1]
	}
	return s.Concepts[s.ConceptIndex]
}

// LatestLevel returns the most recent understanding level on the active
// concept, or LevelNone before the first assessment.
func (s *SessionState) LatestLevel() assess.UnderstandingLevel {
	if len(s.Levels) == 0 {
		return assess.LevelNone
	}
	return s.Levels[len(s.Levels)-1]
}

// LastTeacherMessage returns the most recent teacher line, or empty.
func (s *SessionState) LastTeacherMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleTeacher {
			return s.Messages[i].Content
		}
	}
	return ""
}

// RecentHistory formats the last window messages as "role: content"
// lines, oldest first.
func (s *SessionState) RecentHistory(window int) []string {
	start := len(s.Messages) - window
	if start < 0 {
		start = 0
	}
	lines := make([]string, 0, len(s.Messages)-start)
	for _, m := range s.Messages[start:] {
		lines = append(lines, m.Role+": "+m.Content)
	}
	return lines
}

// ParamHistoryLines formats applied parameter changes for prompt
// context, oldest first.
func (s *SessionState) ParamHistoryLines() []string {
	lines := make([]string, 0, len(s.ParamChanges))
	for _, pc := range s.ParamChanges {
		lines = append(lines, pc.Line())
	}
	return lines
}
