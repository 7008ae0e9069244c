package tutor

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/extract"
)

// ConceptSource builds the lesson plan for a simulation.
type ConceptSource interface {
	Concepts(ctx context.Context, sim catalog.Simulation) ([]catalog.Concept, error)
}

var _ ConceptSource = (*extract.Extractor)(nil)

// Manager owns the live sessions. Each session is guarded by its own
// mutex so concurrent turns on different sessions do not serialize,
// while two turns on the same session cannot interleave.
type Manager struct {
	controller *Controller
	concepts   ConceptSource

	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	mu    sync.Mutex
	state *SessionState
}

// NewManager builds a session manager.
func NewManager(controller *Controller, concepts ConceptSource) *Manager {
	return &Manager{
		controller: controller,
		concepts:   concepts,
		sessions:   make(map[string]*session),
	}
}

// Create starts a new session over the named simulation and returns
// the session ID, the opening teacher message, and the initial state
// snapshot.
func (m *Manager) Create(ctx context.Context, simulationID string) (string, string, Progress, error) {
	sim, err := catalog.Get(simulationID)
	if err != nil {
		return "", "", Progress{}, err
	}

	concepts, err := m.concepts.Concepts(ctx, sim)
	if err != nil {
		return "", "", Progress{}, fmt.Errorf("build lesson plan: %w", err)
	}

	state := NewSessionState(uuid.NewString(), sim, concepts)
	opening, err := m.controller.StartSession(ctx, state)
	if err != nil {
		return "", "", Progress{}, err
	}

	m.mu.Lock()
	m.sessions[state.ID] = &session{state: state}
	m.mu.Unlock()

	return state.ID, opening, state.Progress(), nil
}

// Respond runs one turn on the named session.
func (m *Manager) Respond(ctx context.Context, sessionID, utterance string) (*TurnResult, Progress, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, Progress{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := m.controller.Turn(ctx, s.state, utterance)
	if err != nil {
		return nil, s.state.Progress(), err
	}
	return result, s.state.Progress(), nil
}

// Snapshot returns a copy of the session's learning state plus the
// current parameters and dialogue.
func (m *Manager) Snapshot(sessionID string) (Progress, catalog.Params, []Message, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return Progress{}, nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]Message, len(s.state.Messages))
	copy(messages, s.state.Messages)
	return s.state.Progress(), s.state.Params.Clone(), messages, nil
}

// SessionView is a consistent copy of everything an API response
// needs from one session.
type SessionView struct {
	Progress        Progress
	Simulation      catalog.Simulation
	Concepts        []catalog.Concept
	Params          catalog.Params
	Messages        []Message
	LastParamChange *ParamChange
	ParamChangeCnt  int
	LastTurn        *TurnResult
	LastTeacher     string
	LevelLog        []assess.UnderstandingLevel
}

// View snapshots a session under its lock.
func (m *Manager) View(sessionID string) (*SessionView, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	v := &SessionView{
		Progress:    st.Progress(),
		Simulation:  st.Simulation,
		Concepts:    st.Concepts,
		Params:      st.Params.Clone(),
		LastTurn:    st.LastTurn,
		LastTeacher: st.LastTeacherMessage(),
	}
	v.Messages = make([]Message, len(st.Messages))
	copy(v.Messages, st.Messages)
	v.LevelLog = make([]assess.UnderstandingLevel, len(st.LevelLog))
	copy(v.LevelLog, st.LevelLog)
	v.ParamChangeCnt = len(st.ParamChanges)
	if n := len(st.ParamChanges); n > 0 {
		pc := st.ParamChanges[n-1]
		v.LastParamChange = &pc
	}
	return v, nil
}

// LastParamChange returns the most recent parameter change for a
// session, or nil.
func (m *Manager) LastParamChange(sessionID string) (*ParamChange, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.ParamChanges) == 0 {
		return nil, nil
	}
	pc := s.state.ParamChanges[len(s.state.ParamChanges)-1]
	return &pc, nil
}

// Simulation returns the simulation a session runs over.
func (m *Manager) Simulation(sessionID string) (catalog.Simulation, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return catalog.Simulation{}, err
	}
	return s.state.Simulation, nil
}

func (m *Manager) lookup(sessionID string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}
	return s, nil
}
