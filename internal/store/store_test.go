package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndQueryTurns(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TurnEventData{
		{
			SessionID:        "sess-1",
			ConceptID:        1,
			ConceptTitle:     "Time Period of a Pendulum",
			Exchange:         1,
			LearnerUtterance: "it swings",
			Understanding:    "none",
			Trend:            "stagnating",
			Strategy:         "continue",
			Tone:             "encouraging",
			TeacherMessage:   "What do you notice about the speed?",
		},
		{
			SessionID:        "sess-1",
			ConceptID:        1,
			ConceptTitle:     "Time Period of a Pendulum",
			Exchange:         2,
			LearnerUtterance: "longer takes more time",
			Understanding:    "mostly",
			Trend:            "improving",
			Strategy:         "continue",
			Tone:             "encouraging",
			TeacherMessage:   "Exactly. Why would that be?",
		},
	}
	for _, turn := range turns {
		if err := repo.AppendTurnEvent(ctx, turn); err != nil {
			t.Fatalf("append turn: %v", err)
		}
	}

	// A turn from another session must not leak into the query.
	other := turns[0]
	other.SessionID = "sess-2"
	if err := repo.AppendTurnEvent(ctx, other); err != nil {
		t.Fatalf("append turn: %v", err)
	}

	got, err := repo.QueryTurns(ctx, "sess-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query turns: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(got))
	}
	if got[0].Exchange != 1 || got[1].Exchange != 2 {
		t.Errorf("turns out of order: exchanges %d, %d", got[0].Exchange, got[1].Exchange)
	}
	if got[1].Understanding != "mostly" {
		t.Errorf("understanding = %q, want %q", got[1].Understanding, "mostly")
	}
	if got[1].Sequence <= got[0].Sequence {
		t.Errorf("sequence not increasing: %d then %d", got[0].Sequence, got[1].Sequence)
	}
}

func TestParamChangeEffectiveness(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Marking with no changes recorded is a no-op.
	if err := repo.MarkParamChangeEffective(ctx, "sess-1"); err != nil {
		t.Fatalf("mark with no changes: %v", err)
	}

	err := repo.AppendParamChange(ctx, ParamChangeEventData{
		SessionID:           "sess-1",
		Parameter:           "length",
		OldValue:            "5",
		NewValue:            "9",
		Reason:              "show slower swings",
		UnderstandingBefore: "partial",
	})
	if err != nil {
		t.Fatalf("append param change: %v", err)
	}

	if err := repo.MarkParamChangeEffective(ctx, "sess-1"); err != nil {
		t.Fatalf("mark effective: %v", err)
	}

	all, err := s.Client().ParamChangeEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query param changes: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(changes) = %d, want 1", len(all))
	}
	if !all[0].WasEffective {
		t.Error("was_effective = false, want true")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemma-3-27b-it", Purpose: "classify", InputTokens: 100, OutputTokens: 20, Success: true},
		{Provider: "gemini", Model: "gemma-3-27b-it", Purpose: "classify", InputTokens: 110, OutputTokens: 25, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemma-3-27b-it", Purpose: "respond", InputTokens: 500, OutputTokens: 150, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("len(usage) = %d, want 2", len(usage))
	}

	// Sorted by purpose: classify then respond.
	classify := usage[0]
	if classify.Purpose != "classify" {
		t.Fatalf("usage[0].Purpose = %q, want classify", classify.Purpose)
	}
	if classify.Requests != 2 || classify.InputTokens != 210 || classify.Failures != 1 {
		t.Errorf("classify usage = %+v, want 2 requests, 210 input tokens, 1 failure", classify)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "sess-1",
		Action:        "start",
		SimulationID:  "simple_pendulum",
		ConceptsTotal: 2,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:         "sess-1",
		Action:            "end",
		SimulationID:      "simple_pendulum",
		ConceptsTotal:     2,
		ConceptsCompleted: 2,
		ExchangesTotal:    7,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "sess-2",
		Action:        "start",
		SimulationID:  "light_shadows",
		ConceptsTotal: 3,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	summaries, err := repo.SessionSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("session summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}

	// Newest first.
	if summaries[0].SessionID != "sess-2" {
		t.Errorf("summaries[0].SessionID = %q, want sess-2", summaries[0].SessionID)
	}
	if summaries[0].Ended {
		t.Error("sess-2 reported as ended")
	}
	if !summaries[1].Ended || summaries[1].ExchangesTotal != 7 {
		t.Errorf("sess-1 summary = %+v, want ended with 7 exchanges", summaries[1])
	}
}
