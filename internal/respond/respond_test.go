package respond

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/llm"
	"github.com/adasgupta/simtutor/internal/strategy"
)

func pendulum(t *testing.T) catalog.Simulation {
	t.Helper()
	sim, err := catalog.Get("simple_pendulum")
	if err != nil {
		t.Fatalf("load simulation: %v", err)
	}
	return sim
}

func baseInput(t *testing.T) Input {
	sim := pendulum(t)
	return Input{
		Simulation: sim,
		Concept:    sim.Concepts[0],
		Directive: strategy.Directive{
			Strategy: strategy.StrategyContinue,
			Tone:     strategy.ToneEncouraging,
		},
		Level:         assess.LevelPartial,
		Exchange:      2,
		CurrentParams: sim.InitialParams.Clone(),
		RecentHistory: []string{
			"teacher: What do you notice about the swings?",
			"learner: they move",
		},
		Utterance: "they move",
	}
}

func TestReply_SessionCompleteIsCanned(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: any call would fail
	r := New(mock, DefaultConfig())

	in := baseInput(t)
	in.Directive.SessionComplete = true

	reply, err := r.Reply(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Message == "" {
		t.Fatal("expected non-empty closing message")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls for session completion, got %d", mock.CallCount())
	}
}

func TestReply_ParsesMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"teacher_message": "Great thinking! PREDICT: if I double the length, will the swing take more or less time?",
			"suggests_param_change": false
		}`),
	})
	r := New(mock, DefaultConfig())

	reply, err := r.Reply(context.Background(), baseInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply.Message, "PREDICT") {
		t.Errorf("unexpected message: %q", reply.Message)
	}
	if reply.ParamChange != nil {
		t.Error("expected no param change")
	}
}

func TestReply_ParsesParamChange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"teacher_message": "Let me show you. PREDICT: faster or slower?",
			"suggests_param_change": true,
			"param_to_change": "length",
			"new_value": "9",
			"change_reason": "Show how a longer pendulum swings slower",
			"prediction_question": "Will it swing faster or slower?"
		}`),
	})
	r := New(mock, DefaultConfig())

	reply, err := r.Reply(context.Background(), baseInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.ParamChange == nil {
		t.Fatal("expected param change")
	}
	if reply.ParamChange.Parameter != "length" {
		t.Errorf("Parameter = %q, want length", reply.ParamChange.Parameter)
	}
	if v, ok := reply.ParamChange.NewValue.(float64); !ok || v != 9 {
		t.Errorf("NewValue = %v, want float64 9", reply.ParamChange.NewValue)
	}
}

func TestReply_CategoricalValueStaysString(t *testing.T) {
	sim, err := catalog.Get("light_shadows")
	if err != nil {
		t.Fatalf("load simulation: %v", err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"teacher_message": "Watch closely. OBSERVE: what happens to the shadow?",
			"suggests_param_change": true,
			"param_to_change": "objectType",
			"new_value": "Translucent",
			"change_reason": "Show a lighter shadow"
		}`),
	})
	r := New(mock, DefaultConfig())

	in := baseInput(t)
	in.Simulation = sim
	in.Concept = sim.Concepts[0]
	in.CurrentParams = sim.InitialParams.Clone()

	reply, err := r.Reply(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.ParamChange == nil {
		t.Fatal("expected param change")
	}
	if v, ok := reply.ParamChange.NewValue.(string); !ok || v != "Translucent" {
		t.Errorf("NewValue = %v, want string Translucent", reply.ParamChange.NewValue)
	}
}

func TestReply_DropsUnknownParameter(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"teacher_message": "Let me change gravity. PREDICT: faster or slower?",
			"suggests_param_change": true,
			"param_to_change": "gravity",
			"new_value": "4.9",
			"change_reason": "Lower gravity"
		}`),
	})
	r := New(mock, DefaultConfig())

	reply, err := r.Reply(context.Background(), baseInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.ParamChange != nil {
		t.Errorf("expected unknown parameter to be dropped, got %+v", reply.ParamChange)
	}
}

func TestReply_PromptVariants(t *testing.T) {
	canned := llm.MockResponse{
		Content: json.RawMessage(`{"teacher_message":"ok? PREDICT: a or b?","suggests_param_change":false}`),
	}

	t.Run("introduction", func(t *testing.T) {
		mock := llm.NewMockProvider(canned)
		r := New(mock, DefaultConfig())

		in := baseInput(t)
		in.Exchange = 0
		in.PreviousConcept = nil
		in.Utterance = ""

		if _, err := r.Reply(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		msg := mock.Calls[0].Messages[0].Content
		if !strings.Contains(msg, "START of the lesson") {
			t.Errorf("intro prompt missing opener instructions: %q", msg)
		}
	})

	t.Run("transition", func(t *testing.T) {
		mock := llm.NewMockProvider(canned)
		r := New(mock, DefaultConfig())

		sim := pendulum(t)
		in := baseInput(t)
		in.Exchange = 0
		in.PreviousConcept = &sim.Concepts[0]
		in.Concept = sim.Concepts[1]

		if _, err := r.Reply(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		msg := mock.Calls[0].Messages[0].Content
		if !strings.Contains(msg, "PREVIOUS CONCEPT") {
			t.Errorf("transition prompt missing previous concept: %q", msg)
		}
		if !strings.Contains(msg, sim.Concepts[1].Title) {
			t.Errorf("transition prompt missing new concept title: %q", msg)
		}
	})

	t.Run("continuing with needs deeper", func(t *testing.T) {
		mock := llm.NewMockProvider(canned)
		r := New(mock, DefaultConfig())

		in := baseInput(t)
		in.NeedsDeeper = true

		if _, err := r.Reply(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		msg := mock.Calls[0].Messages[0].Content
		if !strings.Contains(msg, "CORRECT OBSERVATION BUT NO REASONING") {
			t.Errorf("continue prompt missing needs-deeper block: %q", msg)
		}
	})
}

func TestReply_SystemPromptCarriesConstraints(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"teacher_message":"ok? PREDICT: a or b?","suggests_param_change":false}`),
	})
	r := New(mock, DefaultConfig())

	if _, err := r.Reply(context.Background(), baseInput(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sys := mock.Calls[0].System
	for _, want := range []string{
		"Time & Pendulums",
		"Effect of mass on time period", // cannot-demonstrate list
		"length=5",
		"ENCOURAGING",
	} {
		if !strings.Contains(sys, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
