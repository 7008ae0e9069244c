package strategy

import (
	"errors"
	"testing"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/trajectory"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	s, err := NewSelector(DefaultConfig())
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}
	return s
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"minimal", Config{MaxExchanges: 2, ScaffoldTrigger: 1}, false},
		{"zero ceiling", Config{MaxExchanges: 0, ScaffoldTrigger: 1}, true},
		{"zero trigger", Config{MaxExchanges: 6, ScaffoldTrigger: 0}, true},
		{"trigger equals ceiling", Config{MaxExchanges: 3, ScaffoldTrigger: 3}, true},
		{"trigger above ceiling", Config{MaxExchanges: 3, ScaffoldTrigger: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Each row is one cell of the decision table in §priority order; derived
// directly from the selector's rule list with the default thresholds
// (MaxExchanges=6, ScaffoldTrigger=3).
func TestDecide_Table(t *testing.T) {
	tests := []struct {
		name         string
		trend        trajectory.Trend
		latest       assess.UnderstandingLevel
		exchanges    int
		complete     bool
		wantStrategy Strategy
		wantTone     Tone
		wantAdvance  bool
	}{
		{"concept complete wins over everything", trajectory.TrendRegressing, assess.LevelComplete, 1, true, StrategySummarizeAdvance, ToneEncouraging, true},
		{"ceiling forces advance", trajectory.TrendRegressing, assess.LevelNone, 6, false, StrategySummarizeAdvance, ToneEncouraging, true},
		{"ceiling overshoot still advances", trajectory.TrendStagnating, assess.LevelPartial, 9, false, StrategySummarizeAdvance, ToneEncouraging, true},

		{"improving mostly", trajectory.TrendImproving, assess.LevelMostly, 2, false, StrategyContinue, ToneChallenging, false},
		{"improving partial early", trajectory.TrendImproving, assess.LevelPartial, 2, false, StrategyContinue, ToneEncouraging, false},
		{"improving partial at trigger", trajectory.TrendImproving, assess.LevelPartial, 3, false, StrategyTryDifferent, ToneEncouraging, false},
		{"improving partial past trigger", trajectory.TrendImproving, assess.LevelPartial, 4, false, StrategyTryDifferent, ToneEncouraging, false},

		{"stagnating early", trajectory.TrendStagnating, assess.LevelPartial, 1, false, StrategyTryDifferent, ToneEncouraging, false},
		{"stagnating at trigger", trajectory.TrendStagnating, assess.LevelPartial, 3, false, StrategyScaffold, ToneSimplifying, false},
		{"stagnating in scaffold band", trajectory.TrendStagnating, assess.LevelNone, 4, false, StrategyScaffold, ToneSimplifying, false},
		{"stagnating past scaffold band", trajectory.TrendStagnating, assess.LevelNone, 5, false, StrategyGiveHint, ToneSimplifying, false},

		{"regressing early", trajectory.TrendRegressing, assess.LevelNone, 2, false, StrategyScaffold, ToneSimplifying, false},
		{"regressing late", trajectory.TrendRegressing, assess.LevelPartial, 3, false, StrategyGiveHint, ToneSimplifying, false},
	}

	sel := newTestSelector(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sel.Decide(tt.trend, tt.latest, tt.exchanges, tt.complete)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Strategy != tt.wantStrategy {
				t.Errorf("Strategy = %s, want %s", got.Strategy, tt.wantStrategy)
			}
			if got.Tone != tt.wantTone {
				t.Errorf("Tone = %s, want %s", got.Tone, tt.wantTone)
			}
			if got.ConceptAdvances != tt.wantAdvance {
				t.Errorf("ConceptAdvances = %v, want %v", got.ConceptAdvances, tt.wantAdvance)
			}
		})
	}
}

// Forced advance holds for every trend/level combination once the ceiling
// is reached.
func TestDecide_ForcedAdvanceProperty(t *testing.T) {
	sel := newTestSelector(t)
	trends := []trajectory.Trend{trajectory.TrendImproving, trajectory.TrendStagnating, trajectory.TrendRegressing}

	for _, trend := range trends {
		for _, level := range assess.AllLevels() {
			got, err := sel.Decide(trend, level, 6, false)
			if err != nil {
				t.Fatalf("trend=%s level=%s: %v", trend, level, err)
			}
			if got.Strategy != StrategySummarizeAdvance || !got.ConceptAdvances {
				t.Errorf("trend=%s level=%s: got %+v, want forced advance", trend, level, got)
			}
		}
	}
}

func TestDecide_GapIsReported(t *testing.T) {
	sel := newTestSelector(t)

	// Improving + none is unreachable through the analyzer but must not be
	// silently swallowed if it ever shows up.
	got, err := sel.Decide(trajectory.TrendImproving, assess.LevelNone, 1, false)
	if !errors.Is(err, ErrTableGap) {
		t.Fatalf("err = %v, want ErrTableGap", err)
	}
	if got.Strategy != StrategyContinue || got.Tone != ToneEncouraging {
		t.Errorf("fallback directive = %+v, want continue/encouraging", got)
	}
}

func TestDecide_CustomThresholds(t *testing.T) {
	sel, err := NewSelector(Config{MaxExchanges: 3, ScaffoldTrigger: 1})
	if err != nil {
		t.Fatalf("NewSelector: %v", err)
	}

	// Trigger of 1 scaffolds a stagnating learner on the second turn.
	got, err := sel.Decide(trajectory.TrendStagnating, assess.LevelPartial, 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Strategy != StrategyScaffold {
		t.Errorf("Strategy = %s, want scaffold", got.Strategy)
	}

	// Ceiling of 3 forces the advance a turn earlier than the default.
	got, err = sel.Decide(trajectory.TrendStagnating, assess.LevelNone, 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ConceptAdvances {
		t.Error("expected forced advance at custom ceiling")
	}
}
