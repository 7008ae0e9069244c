package tutor

import (
	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/strategy"
)

// Progress is a read-only projection of a session's learning state.
type Progress struct {
	SessionID         string
	SimulationID      string
	ConceptIndex      int
	ConceptTitle      string
	ConceptsTotal     int
	ConceptsCompleted int
	Exchange          int
	TotalExchanges    int
	Level             assess.UnderstandingLevel
	Completed         bool
}

// LastDirective returns the directive chosen on the most recent turn.
// Reading it does not advance the session; repeated calls return the
// same value until another turn commits. ok is false before the first
// turn.
func (s *SessionState) LastDirective() (strategy.Directive, bool) {
	if s.LastTurn == nil {
		return strategy.Directive{}, false
	}
	return s.LastTurn.Directive, true
}

// Progress snapshots the session's current learning state.
func (s *SessionState) Progress() Progress {
	p := Progress{
		SessionID:         s.ID,
		SimulationID:      s.Simulation.ID,
		ConceptIndex:      s.ConceptIndex,
		ConceptsTotal:     len(s.Concepts),
		ConceptsCompleted: s.ConceptsCompleted,
		Exchange:          s.Exchange,
		TotalExchanges:    s.TotalExchanges,
		Level:             s.LatestLevel(),
		Completed:         s.Completed,
	}
	if s.ConceptIndex < len(s.Concepts) {
		p.ConceptTitle = s.Concepts[s.ConceptIndex].Title
	}
	return p
}
