// Package tutor orchestrates the tutoring loop: classify the learner's
// utterance, update the understanding trajectory, pick a teaching
// strategy, generate the teacher's reply, and record the turn as
// events. Session state is mutated only after the whole turn succeeds,
// so a failed LLM call leaves the session exactly where it was.
package tutor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/classify"
	"github.com/adasgupta/simtutor/internal/respond"
	"github.com/adasgupta/simtutor/internal/store"
	"github.com/adasgupta/simtutor/internal/strategy"
	"github.com/adasgupta/simtutor/internal/trajectory"
)

// Responder generates the teacher's next message.
type Responder interface {
	Reply(ctx context.Context, in respond.Input) (*respond.Reply, error)
}

// Config holds the controller's tuning.
type Config struct {
	Strategy strategy.Config

	// HistoryWindow is how many recent dialogue lines go into prompts.
	HistoryWindow int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Strategy:      strategy.DefaultConfig(),
		HistoryWindow: 6,
	}
}

// Controller runs turns for tutoring sessions. It is stateless across
// sessions; all per-session state lives in SessionState.
type Controller struct {
	classifier classify.Classifier
	responder  Responder
	selector   *strategy.Selector
	repo       store.EventRepo
	cfg        Config
}

// NewController builds a controller. The repo may be nil, in which case
// events are not recorded.
func NewController(classifier classify.Classifier, responder Responder, repo store.EventRepo, cfg Config) (*Controller, error) {
	if cfg.HistoryWindow < 1 {
		cfg.HistoryWindow = DefaultConfig().HistoryWindow
	}
	selector, err := strategy.NewSelector(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	return &Controller{
		classifier: classifier,
		responder:  responder,
		selector:   selector,
		repo:       repo,
		cfg:        cfg,
	}, nil
}

// TurnResult is everything one completed turn produced.
type TurnResult struct {
	Message         string
	Assessment      assess.Assessment
	Trend           trajectory.Trend
	Directive       strategy.Directive
	ConceptAdvanced bool
	SessionComplete bool

	// ParamChange is the applied parameter change, if the reply
	// suggested a valid one.
	ParamChange *ParamChange
}

// StartSession records the session start and generates the opening
// teacher message introducing the first concept.
func (c *Controller) StartSession(ctx context.Context, state *SessionState) (string, error) {
	if len(state.Concepts) == 0 {
		return "", ErrNoConcepts
	}

	c.record(c.appendSessionEvent(ctx, state, "start"))

	reply, err := c.responder.Reply(ctx, respond.Input{
		Simulation:    state.Simulation,
		Concept:       state.Concept(),
		Directive:     strategy.Directive{Strategy: strategy.StrategyContinue, Tone: strategy.ToneEncouraging},
		Exchange:      0,
		CurrentParams: state.Params,
	})
	if err != nil {
		return "", fmt.Errorf("generate introduction: %w", err)
	}

	c.applyParamChange(ctx, state, reply.ParamChange, assess.LevelNone)
	state.Messages = append(state.Messages, Message{
		Role:      RoleTeacher,
		Content:   reply.Message,
		Timestamp: time.Now(),
	})
	return reply.Message, nil
}

// Turn processes one learner utterance end to end. On any error the
// session state is left untouched.
func (c *Controller) Turn(ctx context.Context, state *SessionState, utterance string) (*TurnResult, error) {
	if state.Completed {
		return nil, ErrSessionComplete
	}

	concept := state.Concept()

	a, err := c.classifier.Classify(ctx, classify.Input{
		Utterance:          utterance,
		ConceptTitle:       concept.Title,
		KeyInsight:         concept.KeyInsight,
		LastTeacherMessage: state.LastTeacherMessage(),
		RecentHistory:      state.RecentHistory(c.cfg.HistoryWindow),
	})
	if err != nil {
		return nil, &ClassificationError{Err: err}
	}

	// Work on copies until the reply succeeds.
	levels := make([]assess.UnderstandingLevel, len(state.Levels), len(state.Levels)+1)
	copy(levels, state.Levels)
	levels = append(levels, a.Level)
	exchange := state.Exchange + 1

	trend, err := trajectory.Analyze(levels)
	if err != nil {
		return nil, err
	}
	complete, err := trajectory.ConceptComplete(a, levels)
	if err != nil {
		return nil, err
	}

	directive, err := c.selector.Decide(trend, a.Level, exchange, complete)
	if err != nil {
		return nil, err
	}

	advanced := directive.ConceptAdvances
	sessionComplete := false
	nextIndex := state.ConceptIndex
	if advanced {
		// The index runs one past the end when the last concept is
		// done, so ConceptIndex == len(Concepts) iff complete.
		nextIndex = state.ConceptIndex + 1
		if nextIndex >= len(state.Concepts) {
			sessionComplete = true
			directive.SessionComplete = true
		}
	}

	in := respond.Input{
		Simulation:    state.Simulation,
		Directive:     directive,
		Level:         a.Level,
		NeedsDeeper:   a.ObservationOnly,
		CurrentParams: state.Params,
		ParamHistory:  state.ParamHistoryLines(),
		RecentHistory: state.RecentHistory(c.cfg.HistoryWindow),
		Utterance:     utterance,
	}
	if advanced && !sessionComplete {
		prev := concept
		in.Concept = state.Concepts[nextIndex]
		in.PreviousConcept = &prev
		in.Exchange = 0
	} else {
		in.Concept = concept
		in.Exchange = exchange
	}

	reply, err := c.responder.Reply(ctx, in)
	if err != nil {
		return nil, err
	}

	// Commit.
	now := time.Now()
	state.Messages = append(state.Messages, Message{
		Role:      RoleLearner,
		Content:   utterance,
		Timestamp: now,
		Level:     a.Level,
		Exchange:  exchange,
	})

	if n := len(state.ParamChanges); n > 0 {
		last := &state.ParamChanges[n-1]
		if !last.WasEffective && a.Level > last.UnderstandingBefore {
			last.WasEffective = true
			if c.repo != nil {
				c.record(c.repo.MarkParamChangeEffective(ctx, state.ID))
			}
		}
	}

	state.Messages = append(state.Messages, Message{
		Role:      RoleTeacher,
		Content:   reply.Message,
		Timestamp: now,
	})

	result := &TurnResult{
		Message:         reply.Message,
		Assessment:      a,
		Trend:           trend,
		Directive:       directive,
		ConceptAdvanced: advanced,
		SessionComplete: sessionComplete,
	}

	if !sessionComplete {
		result.ParamChange = c.applyParamChange(ctx, state, reply.ParamChange, a.Level)
	}

	state.TotalExchanges++
	state.LevelLog = append(state.LevelLog, a.Level)
	if advanced {
		state.ConceptsCompleted++
		state.Levels = nil
		state.Exchange = 0
		state.ConceptIndex = nextIndex
	} else {
		state.Levels = levels
		state.Exchange = exchange
	}
	state.Completed = sessionComplete
	state.LastTurn = result

	if c.repo != nil {
		c.record(c.repo.AppendTurnEvent(ctx, store.TurnEventData{
			SessionID:        state.ID,
			ConceptID:        concept.ID,
			ConceptTitle:     concept.Title,
			Exchange:         exchange,
			LearnerUtterance: utterance,
			Understanding:    a.Level.String(),
			Trend:            string(trend),
			Strategy:         string(directive.Strategy),
			Tone:             string(directive.Tone),
			TeacherMessage:   reply.Message,
			ConceptAdvanced:  advanced,
			SessionCompleted: sessionComplete,
		}))
	}
	if sessionComplete {
		c.record(c.appendSessionEvent(ctx, state, "end"))
	}

	return result, nil
}

// applyParamChange applies a valid suggested change to the session
// parameters and records it. Returns the applied record, or nil.
func (c *Controller) applyParamChange(ctx context.Context, state *SessionState, sug *respond.ParamSuggestion, before assess.UnderstandingLevel) *ParamChange {
	if sug == nil {
		return nil
	}

	old := state.Params[sug.Parameter]
	state.Params[sug.Parameter] = sug.NewValue

	pc := ParamChange{
		Parameter:           sug.Parameter,
		OldValue:            old,
		NewValue:            sug.NewValue,
		Reason:              sug.Reason,
		PredictionQuestion:  sug.PredictionQuestion,
		UnderstandingBefore: before,
		At:                  time.Now(),
	}
	state.ParamChanges = append(state.ParamChanges, pc)

	if c.repo != nil {
		c.record(c.repo.AppendParamChange(ctx, store.ParamChangeEventData{
			SessionID:           state.ID,
			Parameter:           pc.Parameter,
			OldValue:            catalog.FormatValue(pc.OldValue),
			NewValue:            catalog.FormatValue(pc.NewValue),
			Reason:              pc.Reason,
			UnderstandingBefore: before.String(),
		}))
	}

	applied := state.ParamChanges[len(state.ParamChanges)-1]
	return &applied
}

func (c *Controller) appendSessionEvent(ctx context.Context, state *SessionState, action string) error {
	if c.repo == nil {
		return nil
	}
	return c.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:         state.ID,
		Action:            action,
		SimulationID:      state.Simulation.ID,
		ConceptsTotal:     len(state.Concepts),
		ConceptsCompleted: state.ConceptsCompleted,
		ExchangesTotal:    state.TotalExchanges,
	})
}

// record logs event-store failures without failing the turn. Losing an
// event is preferable to losing the learner's progress.
func (c *Controller) record(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record event: %v\n", err)
	}
}
