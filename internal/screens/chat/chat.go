// Package chat holds the live tutoring dialogue screen. All LLM work
// runs in commands so the UI never blocks; the screen shows a thinking
// indicator until the turn message arrives.
package chat

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/router"
	"github.com/adasgupta/simtutor/internal/screen"
	"github.com/adasgupta/simtutor/internal/screens/summary"
	"github.com/adasgupta/simtutor/internal/tutor"
	"github.com/adasgupta/simtutor/internal/ui/components"
	"github.com/adasgupta/simtutor/internal/ui/layout"
)

// line kinds in the transcript.
const (
	lineTeacher = "teacher"
	lineLearner = "learner"
	lineNotice  = "notice"
)

type line struct {
	kind string
	text string
}

// ChatScreen runs one tutoring session over a chosen simulation.
type ChatScreen struct {
	manager      *tutor.Manager
	simulationID string
	simTitle     string

	sessionID  string
	transcript []line
	input      components.ChatInput
	progress   tutor.Progress
	waiting    bool
	done       bool
	errMsg     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.ProgressProvider = (*ChatScreen)(nil)

// New creates a chat screen for the given simulation.
func New(manager *tutor.Manager, sim catalog.Summary) *ChatScreen {
	return &ChatScreen{
		manager:      manager,
		simulationID: sim.ID,
		simTitle:     sim.Title,
		input:        components.NewChatInput("Type your answer...", 280),
		waiting:      true,
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return tea.Batch(s.startSession(), s.input.Init())
}

func (s *ChatScreen) Title() string {
	return s.simTitle
}

func (s *ChatScreen) ConceptProgress() (int, int) {
	return s.progress.ConceptsCompleted, s.progress.ConceptsTotal
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Leave session"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.sessionID = msg.SessionID
		s.progress = msg.Progress
		s.transcript = append(s.transcript, line{kind: lineTeacher, text: msg.Opening})
		return s, nil

	case turnDoneMsg:
		s.waiting = false
		if msg.Err != nil {
			// The turn did not commit; the learner can just resend.
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.progress = msg.Progress
		if pc := msg.Result.ParamChange; pc != nil {
			s.transcript = append(s.transcript, line{
				kind: lineNotice,
				text: fmt.Sprintf("● %s changed from %s to %s — %s",
					pc.Parameter,
					catalog.FormatValue(pc.OldValue),
					catalog.FormatValue(pc.NewValue),
					pc.Reason),
			})
		}
		s.transcript = append(s.transcript, line{kind: lineTeacher, text: msg.Result.Message})
		if msg.Result.SessionComplete {
			s.done = true
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, s.handleEnter()
		}
	}

	if !s.waiting && !s.done {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) handleEnter() tea.Cmd {
	if s.done {
		view, err := s.manager.View(s.sessionID)
		if err != nil {
			s.errMsg = err.Error()
			return nil
		}
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(view)}
		}
	}
	if s.waiting {
		return nil
	}

	utterance := s.input.Value()
	if utterance == "" {
		return nil
	}
	s.input.Reset()
	s.transcript = append(s.transcript, line{kind: lineLearner, text: utterance})
	s.waiting = true
	return s.runTurn(utterance)
}

// startSession creates the session off the UI loop.
func (s *ChatScreen) startSession() tea.Cmd {
	manager, simID := s.manager, s.simulationID
	return func() tea.Msg {
		id, opening, progress, err := manager.Create(context.Background(), simID)
		return sessionStartedMsg{SessionID: id, Opening: opening, Progress: progress, Err: err}
	}
}

// runTurn sends the utterance through the tutoring loop.
func (s *ChatScreen) runTurn(utterance string) tea.Cmd {
	manager, id := s.manager, s.sessionID
	return func() tea.Msg {
		result, progress, err := manager.Respond(context.Background(), id, utterance)
		return turnDoneMsg{Result: result, Progress: progress, Err: err}
	}
}
