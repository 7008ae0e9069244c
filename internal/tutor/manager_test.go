package tutor

import (
	"context"
	"errors"
	"testing"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/extract"
	"github.com/adasgupta/simtutor/internal/llm"
)

func newTestManager(t *testing.T, cl *stubClassifier, rp *stubResponder) *Manager {
	t.Helper()
	c, err := NewController(cl, rp, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	// Catalog simulations carry predefined concepts, so the extractor
	// never reaches its provider here.
	extractor := extract.New(llm.NewMockProvider(), extract.DefaultConfig())
	return NewManager(c, extractor)
}

func TestManagerCreateAndRespond(t *testing.T) {
	cl := &stubClassifier{queue: []assess.Assessment{{Level: assess.LevelPartial}}}
	m := newTestManager(t, cl, &stubResponder{})

	id, opening, progress, err := m.Create(context.Background(), "simple_pendulum")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" || opening == "" {
		t.Fatalf("id = %q, opening = %q, want both set", id, opening)
	}
	if progress.SimulationID != "simple_pendulum" || progress.ConceptIndex != 0 {
		t.Errorf("progress = %+v", progress)
	}

	res, progress, err := m.Respond(context.Background(), id, "it swings slower")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.Message == "" {
		t.Error("expected a teacher message")
	}
	if progress.Exchange != 1 || progress.TotalExchanges != 1 {
		t.Errorf("progress after turn = %+v", progress)
	}
}

func TestManagerUnknownSimulation(t *testing.T) {
	m := newTestManager(t, &stubClassifier{}, &stubResponder{})
	if _, _, _, err := m.Create(context.Background(), "warp_drive"); err == nil {
		t.Error("expected error for unknown simulation")
	}
}

func TestManagerUnknownSession(t *testing.T) {
	m := newTestManager(t, &stubClassifier{}, &stubResponder{})

	if _, _, err := m.Respond(context.Background(), "nope", "hi"); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Respond err = %v, want ErrUnknownSession", err)
	}
	if _, _, _, err := m.Snapshot("nope"); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("Snapshot err = %v, want ErrUnknownSession", err)
	}
}

func TestManagerSnapshot(t *testing.T) {
	m := newTestManager(t, &stubClassifier{}, &stubResponder{})

	id, _, _, err := m.Create(context.Background(), "simple_pendulum")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	progress, params, messages, err := m.Snapshot(id)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if progress.SessionID != id {
		t.Errorf("SessionID = %q, want %q", progress.SessionID, id)
	}
	if _, ok := params["length"]; !ok {
		t.Error("snapshot params missing length")
	}
	if len(messages) != 1 || messages[0].Role != RoleTeacher {
		t.Errorf("messages = %+v, want the opening teacher line", messages)
	}
}
