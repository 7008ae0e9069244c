package classify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/llm"
)

func testInput() Input {
	return Input{
		Utterance:          "longer because it has more distance to travel",
		ConceptTitle:       "Time Period of a Pendulum",
		KeyInsight:         "Longer pendulum = longer time period (slower swings)",
		LastTeacherMessage: "What happened to the swing time when I made it longer?",
		RecentHistory: []string{
			"teacher: Watch the pendulum swing. What do you notice?",
			"learner: it goes back and forth",
		},
	}
}

func TestClassify_ParsesAssessment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"level": "complete",
			"reasoning": "Correct observation with a distance-based explanation.",
			"factually_wrong": false,
			"observation_without_reasoning": false
		}`),
	})
	c := New(mock, DefaultConfig())

	got, err := c.Classify(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Level != assess.LevelComplete {
		t.Errorf("Level = %v, want %v", got.Level, assess.LevelComplete)
	}
	if got.FactuallyWrong {
		t.Error("FactuallyWrong = true, want false")
	}
}

func TestClassify_NormalizesObservationFlag(t *testing.T) {
	// observation_without_reasoning only makes sense at "mostly"; the
	// classifier clears it for other levels.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"level": "complete",
			"reasoning": "Explained with reasoning.",
			"factually_wrong": false,
			"observation_without_reasoning": true
		}`),
	})
	c := New(mock, DefaultConfig())

	got, err := c.Classify(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ObservationOnly {
		t.Error("ObservationOnly = true after normalize, want false")
	}
}

func TestClassify_KeepsObservationFlagAtMostly(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"level": "mostly",
			"reasoning": "Correct observation, no why.",
			"factually_wrong": false,
			"observation_without_reasoning": true
		}`),
	})
	c := New(mock, DefaultConfig())

	got, err := c.Classify(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ObservationOnly {
		t.Error("ObservationOnly = false at mostly, want true")
	}
}

func TestClassify_RejectsUnknownLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"level": "excellent",
			"reasoning": "Made-up level.",
			"factually_wrong": false,
			"observation_without_reasoning": false
		}`),
	})
	c := New(mock, DefaultConfig())

	_, err := c.Classify(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !strings.Contains(err.Error(), "excellent") {
		t.Errorf("error %q does not name the bad level", err)
	}
}

func TestClassify_PropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	c := New(mock, DefaultConfig())

	_, err := c.Classify(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable in chain, got %v", err)
	}
}

func TestClassify_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"level": "none",
			"reasoning": "Off topic.",
			"factually_wrong": false,
			"observation_without_reasoning": false
		}`),
	})
	c := New(mock, DefaultConfig())

	if _, err := c.Classify(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	userMsg := req.Messages[0].Content
	for _, want := range []string{
		"Time Period of a Pendulum",
		"What happened to the swing time",
		"longer because it has more distance to travel",
		"it goes back and forth",
	} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
	if req.Schema == nil || req.Schema.Name != "understanding-assessment" {
		t.Error("request missing understanding-assessment schema")
	}
}
