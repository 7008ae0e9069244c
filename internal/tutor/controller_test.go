package tutor

import (
	"context"
	"errors"
	"testing"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/classify"
	"github.com/adasgupta/simtutor/internal/respond"
	"github.com/adasgupta/simtutor/internal/strategy"
	"github.com/adasgupta/simtutor/internal/trajectory"
)

// stubClassifier returns canned assessments in FIFO order.
type stubClassifier struct {
	queue []assess.Assessment
	err   error
	calls []classify.Input
}

func (s *stubClassifier) Classify(_ context.Context, in classify.Input) (assess.Assessment, error) {
	s.calls = append(s.calls, in)
	if s.err != nil {
		return assess.Assessment{}, s.err
	}
	if len(s.queue) == 0 {
		return assess.Assessment{Level: assess.LevelPartial}, nil
	}
	a := s.queue[0]
	s.queue = s.queue[1:]
	return a, nil
}

// stubResponder returns canned replies in FIFO order and records the
// inputs it saw.
type stubResponder struct {
	queue  []*respond.Reply
	err    error
	inputs []respond.Input
}

func (s *stubResponder) Reply(_ context.Context, in respond.Input) (*respond.Reply, error) {
	s.inputs = append(s.inputs, in)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.queue) == 0 {
		return &respond.Reply{Message: "What do you notice when you try that?"}, nil
	}
	r := s.queue[0]
	s.queue = s.queue[1:]
	return r, nil
}

func newTestController(t *testing.T, cl classify.Classifier, rp Responder) *Controller {
	t.Helper()
	c, err := NewController(cl, rp, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func pendulumState(t *testing.T) *SessionState {
	t.Helper()
	sim, err := catalog.Get("simple_pendulum")
	if err != nil {
		t.Fatalf("load simulation: %v", err)
	}
	return NewSessionState("test-session", sim, sim.Concepts)
}

func TestStartSession(t *testing.T) {
	rp := &stubResponder{queue: []*respond.Reply{{
		Message: "Welcome! Let's explore the pendulum.",
		ParamChange: &respond.ParamSuggestion{
			Parameter: "length",
			NewValue:  float64(3),
			Reason:    "Start with a short pendulum",
		},
	}}}
	c := newTestController(t, &stubClassifier{}, rp)
	state := pendulumState(t)

	opening, err := c.StartSession(context.Background(), state)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if opening != "Welcome! Let's explore the pendulum." {
		t.Errorf("opening = %q", opening)
	}
	if len(state.Messages) != 1 || state.Messages[0].Role != RoleTeacher {
		t.Fatalf("messages = %+v, want one teacher message", state.Messages)
	}
	if got, _ := state.Params.Float("length"); got != 3 {
		t.Errorf("length after intro change = %v, want 3", got)
	}
	if rp.inputs[0].Exchange != 0 {
		t.Errorf("intro exchange = %d, want 0", rp.inputs[0].Exchange)
	}
}

func TestStartSession_NoConcepts(t *testing.T) {
	c := newTestController(t, &stubClassifier{}, &stubResponder{})
	sim, _ := catalog.Get("simple_pendulum")
	state := NewSessionState("s", sim, nil)

	if _, err := c.StartSession(context.Background(), state); !errors.Is(err, ErrNoConcepts) {
		t.Errorf("err = %v, want ErrNoConcepts", err)
	}
}

func TestTurn_PartialContinues(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelPartial, Reasoning: "mentions speed, no mechanism"},
	}}
	rp := &stubResponder{}
	c := newTestController(t, cl, rp)
	state := pendulumState(t)

	res, err := c.Turn(context.Background(), state, "it swings slower I think")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}

	if res.Trend != trajectory.TrendStagnating {
		t.Errorf("trend = %q, want stagnating on first assessment", res.Trend)
	}
	if res.Directive.Strategy != strategy.StrategyTryDifferent {
		t.Errorf("strategy = %q, want try-different", res.Directive.Strategy)
	}
	if res.ConceptAdvanced || res.SessionComplete {
		t.Error("partial answer should not advance")
	}
	if state.Exchange != 1 || state.TotalExchanges != 1 {
		t.Errorf("exchange counters = %d/%d, want 1/1", state.Exchange, state.TotalExchanges)
	}
	if len(state.Levels) != 1 || state.Levels[0] != assess.LevelPartial {
		t.Errorf("levels = %v, want [partial]", state.Levels)
	}
	if len(state.Messages) != 2 {
		t.Fatalf("len(messages) = %d, want learner + teacher", len(state.Messages))
	}
	if state.Messages[0].Role != RoleLearner || state.Messages[0].Level != assess.LevelPartial {
		t.Errorf("learner message = %+v", state.Messages[0])
	}

	d1, ok := state.LastDirective()
	if !ok || d1 != res.Directive {
		t.Errorf("LastDirective() = %+v, %v, want committed directive", d1, ok)
	}
	d2, _ := state.LastDirective()
	if d2 != d1 {
		t.Error("re-reading LastDirective changed its value")
	}
}

// A learner who starts blank, makes one step of progress, then stalls
// on partial should see the escalation ladder: vary the approach, keep
// going while improving, then scaffold once the stall passes the
// trigger.
func TestTurn_StalledLearnerEscalates(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelNone},
		{Level: assess.LevelPartial},
		{Level: assess.LevelPartial},
		{Level: assess.LevelPartial},
	}}
	rp := &stubResponder{}
	c := newTestController(t, cl, rp)
	state := pendulumState(t)

	steps := []struct {
		utterance string
		trend     trajectory.Trend
		strategy  strategy.Strategy
		tone      strategy.Tone
	}{
		{"no idea what happened", trajectory.TrendStagnating, strategy.StrategyTryDifferent, strategy.ToneEncouraging},
		{"a longer string swings slower?", trajectory.TrendImproving, strategy.StrategyContinue, strategy.ToneEncouraging},
		{"maybe because it is heavier", trajectory.TrendStagnating, strategy.StrategyScaffold, strategy.ToneSimplifying},
		{"I am still not sure", trajectory.TrendStagnating, strategy.StrategyScaffold, strategy.ToneSimplifying},
	}
	for i, step := range steps {
		res, err := c.Turn(context.Background(), state, step.utterance)
		if err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		if res.Trend != step.trend {
			t.Errorf("turn %d: trend = %q, want %q", i+1, res.Trend, step.trend)
		}
		if res.Directive.Strategy != step.strategy {
			t.Errorf("turn %d: strategy = %q, want %q", i+1, res.Directive.Strategy, step.strategy)
		}
		if res.Directive.Tone != step.tone {
			t.Errorf("turn %d: tone = %q, want %q", i+1, res.Directive.Tone, step.tone)
		}
		if res.ConceptAdvanced || res.SessionComplete {
			t.Errorf("turn %d: advanced without completion", i+1)
		}
	}

	if state.Exchange != 4 || state.ConceptIndex != 0 {
		t.Errorf("exchange/concept = %d/%d, want 4/0", state.Exchange, state.ConceptIndex)
	}
}

func TestTurn_CompleteAdvancesConcept(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelComplete},
	}}
	rp := &stubResponder{}
	c := newTestController(t, cl, rp)
	state := pendulumState(t)
	if len(state.Concepts) < 2 {
		t.Fatal("pendulum should have at least two concepts")
	}

	res, err := c.Turn(context.Background(), state, "longer pendulums have a longer period because the arc is longer")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}

	if !res.ConceptAdvanced {
		t.Error("complete answer should advance the concept")
	}
	if res.SessionComplete {
		t.Error("first of two concepts should not complete the session")
	}
	if state.ConceptIndex != 1 {
		t.Errorf("ConceptIndex = %d, want 1", state.ConceptIndex)
	}
	if state.ConceptsCompleted != 1 {
		t.Errorf("ConceptsCompleted = %d, want 1", state.ConceptsCompleted)
	}
	if state.Exchange != 0 || state.Levels != nil {
		t.Errorf("trajectory not reset: exchange=%d levels=%v", state.Exchange, state.Levels)
	}

	// The reply should have been asked to bridge from the old concept.
	in := rp.inputs[0]
	if in.PreviousConcept == nil || in.PreviousConcept.ID != state.Concepts[0].ID {
		t.Errorf("PreviousConcept = %+v, want first concept", in.PreviousConcept)
	}
	if in.Concept.ID != state.Concepts[1].ID {
		t.Errorf("reply concept = %d, want next concept", in.Concept.ID)
	}
	if in.Exchange != 0 {
		t.Errorf("transition exchange = %d, want 0", in.Exchange)
	}
}

func TestTurn_TwoMostlyAdvances(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelMostly, ObservationOnly: true},
		{Level: assess.LevelMostly},
	}}
	c := newTestController(t, cl, &stubResponder{})
	state := pendulumState(t)

	res, err := c.Turn(context.Background(), state, "it swings slower")
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	if res.ConceptAdvanced {
		t.Error("single mostly should not advance")
	}

	res, err = c.Turn(context.Background(), state, "the longer arc takes more time per swing")
	if err != nil {
		t.Fatalf("second turn: %v", err)
	}
	if !res.ConceptAdvanced {
		t.Error("two consecutive mostly should advance")
	}
}

func TestTurn_ForcedAdvanceAtCeiling(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelPartial},
	}}
	c := newTestController(t, cl, &stubResponder{})
	state := pendulumState(t)
	state.Exchange = 5
	state.Levels = []assess.UnderstandingLevel{
		assess.LevelNone, assess.LevelPartial, assess.LevelPartial,
		assess.LevelPartial, assess.LevelPartial,
	}

	res, err := c.Turn(context.Background(), state, "I'm still not sure")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if !res.ConceptAdvanced {
		t.Error("exchange ceiling should force an advance")
	}
	if res.Directive.Strategy != strategy.StrategySummarizeAdvance {
		t.Errorf("strategy = %q, want summarize-advance", res.Directive.Strategy)
	}
}

func TestTurn_SessionCompletes(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelComplete},
	}}
	rp := &stubResponder{queue: []*respond.Reply{{Message: "Excellent work!"}}}
	c := newTestController(t, cl, rp)

	sim, _ := catalog.Get("simple_pendulum")
	state := NewSessionState("s", sim, sim.Concepts[:1])

	res, err := c.Turn(context.Background(), state, "amplitude does not change the period")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if !res.SessionComplete || !state.Completed {
		t.Error("finishing the only concept should complete the session")
	}
	if !rp.inputs[0].Directive.SessionComplete {
		t.Error("responder should see a session-complete directive")
	}

	// The index runs one past the end on completion.
	if state.ConceptIndex != len(state.Concepts) {
		t.Errorf("ConceptIndex = %d, want %d on completion", state.ConceptIndex, len(state.Concepts))
	}
	p := state.Progress()
	if p.ConceptIndex != len(state.Concepts) {
		t.Errorf("Progress.ConceptIndex = %d, want %d", p.ConceptIndex, len(state.Concepts))
	}
	if p.ConceptTitle != "" {
		t.Errorf("Progress.ConceptTitle = %q, want empty when no concept is active", p.ConceptTitle)
	}

	if _, err := c.Turn(context.Background(), state, "another message"); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("err = %v, want ErrSessionComplete", err)
	}
}

func TestTurn_ClassifierFailureLeavesStateUntouched(t *testing.T) {
	cl := &stubClassifier{err: errors.New("provider down")}
	c := newTestController(t, cl, &stubResponder{})
	state := pendulumState(t)

	_, err := c.Turn(context.Background(), state, "hello")
	var ce *ClassificationError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ClassificationError", err)
	}
	if state.Exchange != 0 || len(state.Levels) != 0 || len(state.Messages) != 0 {
		t.Errorf("state mutated on classifier failure: %+v", state)
	}
}

func TestTurn_ResponderFailureLeavesStateUntouched(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{{Level: assess.LevelPartial}}}
	rp := &stubResponder{err: errors.New("rate limited")}
	c := newTestController(t, cl, rp)
	state := pendulumState(t)

	if _, err := c.Turn(context.Background(), state, "hello"); err == nil {
		t.Fatal("expected error from responder failure")
	}
	if state.Exchange != 0 || len(state.Levels) != 0 || len(state.Messages) != 0 {
		t.Errorf("state mutated on responder failure: %+v", state)
	}
}

func TestTurn_ParamChangeEffectiveness(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelNone},
		{Level: assess.LevelPartial},
	}}
	rp := &stubResponder{queue: []*respond.Reply{
		{
			Message: "Let's try a longer pendulum.",
			ParamChange: &respond.ParamSuggestion{
				Parameter:          "length",
				NewValue:           float64(9),
				Reason:             "Make the period change obvious",
				PredictionQuestion: "What will happen to the swing time?",
			},
		},
		{Message: "Good, you noticed the change."},
	}}
	c := newTestController(t, cl, rp)
	state := pendulumState(t)

	res, err := c.Turn(context.Background(), state, "I don't know")
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	if res.ParamChange == nil || res.ParamChange.Parameter != "length" {
		t.Fatalf("ParamChange = %+v, want applied length change", res.ParamChange)
	}
	if got, _ := state.Params.Float("length"); got != 9 {
		t.Errorf("length = %v, want 9", got)
	}
	if state.ParamChanges[0].WasEffective {
		t.Error("change should not be marked effective yet")
	}

	if _, err := c.Turn(context.Background(), state, "it swings slower now"); err != nil {
		t.Fatalf("second turn: %v", err)
	}
	if !state.ParamChanges[0].WasEffective {
		t.Error("understanding rose after the change, expected WasEffective")
	}

	// The second prompt should carry the change history.
	if len(rp.inputs[1].ParamHistory) != 1 {
		t.Errorf("ParamHistory = %v, want one line", rp.inputs[1].ParamHistory)
	}
}

func TestTurn_NeedsDeeperPassedToResponder(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{
		{Level: assess.LevelMostly, ObservationOnly: true},
	}}
	rp := &stubResponder{}
	c := newTestController(t, cl, rp)
	state := pendulumState(t)

	if _, err := c.Turn(context.Background(), state, "it swings slower"); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if !rp.inputs[0].NeedsDeeper {
		t.Error("observation-only mostly should set NeedsDeeper")
	}
}

func TestTurn_ClassifierSeesContext(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{{Level: assess.LevelPartial}}}
	rp := &stubResponder{}
	c := newTestController(t, cl, rp)
	state := pendulumState(t)

	if _, err := c.StartSession(context.Background(), state); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := c.Turn(context.Background(), state, "it goes slower"); err != nil {
		t.Fatalf("Turn: %v", err)
	}

	in := cl.calls[0]
	if in.ConceptTitle != state.Concepts[0].Title {
		t.Errorf("ConceptTitle = %q, want %q", in.ConceptTitle, state.Concepts[0].Title)
	}
	if in.LastTeacherMessage == "" {
		t.Error("classifier should see the opening teacher question")
	}
	if len(in.RecentHistory) != 1 {
		t.Errorf("RecentHistory = %v, want the opening line", in.RecentHistory)
	}
}
