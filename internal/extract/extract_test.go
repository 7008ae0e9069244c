package extract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/llm"
)

func bareSimulation() catalog.Simulation {
	return catalog.Simulation{
		ID:          "bouncing_ball",
		Title:       "Bouncing Ball",
		Description: "A ball bounces with adjustable elasticity and drop height.",
		InitialParams: catalog.Params{
			"elasticity": 0.8,
			"dropHeight": float64(5),
		},
		Parameters: map[string]catalog.ParamInfo{
			"elasticity": {Label: "Elasticity", Range: "0-1", URLKey: "elasticity", Effect: "Higher = bouncier"},
			"dropHeight": {Label: "Drop Height", Range: "1-10 units", URLKey: "dropHeight", Effect: "Higher = more energy"},
		},
	}
}

func TestConcepts_PredefinedWin(t *testing.T) {
	mock := llm.NewMockProvider() // any call would fail
	e := New(mock, DefaultConfig())

	sim, err := catalog.Get("simple_pendulum")
	if err != nil {
		t.Fatalf("load simulation: %v", err)
	}

	got, err := e.Concepts(context.Background(), sim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(sim.Concepts) {
		t.Fatalf("len(concepts) = %d, want %d", len(got), len(sim.Concepts))
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls for predefined concepts, got %d", mock.CallCount())
	}
}

func TestConcepts_ExtractsFromDescription(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"concepts": [
				{
					"id": 1,
					"title": "Elasticity and Bounce Height",
					"description": "How elasticity controls energy kept per bounce.",
					"key_insight": "Higher elasticity keeps more energy, so bounces stay higher",
					"related_params": ["elasticity", "airResistance"]
				},
				{
					"id": 7,
					"title": "Drop Height and Energy",
					"description": "How drop height sets the starting energy.",
					"key_insight": "More height means more energy to spend on bounces",
					"related_params": ["dropHeight"]
				}
			]
		}`),
	})
	e := New(mock, DefaultConfig())

	got, err := e.Concepts(context.Background(), bareSimulation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(concepts) = %d, want 2", len(got))
	}

	// IDs renumbered sequentially regardless of what the model returned.
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", got[0].ID, got[1].ID)
	}

	// Unknown related params filtered out.
	if len(got[0].RelatedParams) != 1 || got[0].RelatedParams[0] != "elasticity" {
		t.Errorf("RelatedParams = %v, want [elasticity]", got[0].RelatedParams)
	}
}

func TestConcepts_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	e := New(mock, DefaultConfig())

	got, err := e.Concepts(context.Background(), bareSimulation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(concepts) = %d, want 1 fallback concept", len(got))
	}
	if got[0].Title != "Exploring Bouncing Ball" {
		t.Errorf("fallback title = %q", got[0].Title)
	}
	if len(got[0].RelatedParams) != 2 {
		t.Errorf("fallback related params = %v, want both parameters", got[0].RelatedParams)
	}
}

func TestConcepts_FallbackOnEmptyList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"concepts": []}`),
	})
	e := New(mock, DefaultConfig())

	got, err := e.Concepts(context.Background(), bareSimulation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(concepts) = %d, want 1 fallback concept", len(got))
	}
}
