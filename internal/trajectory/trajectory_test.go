package trajectory

import (
	"errors"
	"testing"

	"github.com/adasgupta/simtutor/internal/assess"
)

func levels(ls ...assess.UnderstandingLevel) []assess.UnderstandingLevel {
	return ls
}

func TestAnalyze_EmptyFailsFast(t *testing.T) {
	_, err := Analyze(nil)
	if !errors.Is(err, ErrEmptyTrajectory) {
		t.Fatalf("err = %v, want ErrEmptyTrajectory", err)
	}
}

func TestAnalyze_SingleEntryStagnates(t *testing.T) {
	got, err := Analyze(levels(assess.LevelNone))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TrendStagnating {
		t.Errorf("trend = %s, want stagnating", got)
	}
}

func TestAnalyze_Trends(t *testing.T) {
	tests := []struct {
		name string
		in   []assess.UnderstandingLevel
		want Trend
	}{
		{"strictly increasing", levels(assess.LevelNone, assess.LevelPartial, assess.LevelMostly), TrendImproving},
		{"increasing pair", levels(assess.LevelPartial, assess.LevelMostly), TrendImproving},
		{"strictly decreasing", levels(assess.LevelMostly, assess.LevelPartial, assess.LevelNone), TrendRegressing},
		{"decreasing pair", levels(assess.LevelMostly, assess.LevelNone), TrendRegressing},
		{"flat", levels(assess.LevelPartial, assess.LevelPartial, assess.LevelPartial), TrendStagnating},
		{"flat pair", levels(assess.LevelPartial, assess.LevelPartial), TrendStagnating},
		// Oscillation reads as stagnating even though the last delta alone
		// would classify it as improving (or regressing).
		{"down-up-down ... up", levels(assess.LevelPartial, assess.LevelNone, assess.LevelPartial), TrendStagnating},
		{"up-down oscillation", levels(assess.LevelNone, assess.LevelMostly, assess.LevelPartial), TrendStagnating},
		{"long run ending in oscillation", levels(assess.LevelNone, assess.LevelPartial, assess.LevelNone, assess.LevelPartial), TrendStagnating},
		// A dip followed by a climb past the prior peak is a real climb once
		// the middle entry is not a local extremum.
		{"recovery beyond window", levels(assess.LevelMostly, assess.LevelNone, assess.LevelNone, assess.LevelPartial), TrendImproving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Analyze(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Analyze(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestConceptComplete_EmptyFailsFast(t *testing.T) {
	_, err := ConceptComplete(assess.Assessment{Level: assess.LevelComplete}, nil)
	if !errors.Is(err, ErrEmptyTrajectory) {
		t.Fatalf("err = %v, want ErrEmptyTrajectory", err)
	}
}

func TestConceptComplete(t *testing.T) {
	tests := []struct {
		name   string
		latest assess.Assessment
		traj   []assess.UnderstandingLevel
		want   bool
	}{
		{
			"complete on first turn",
			assess.Assessment{Level: assess.LevelComplete},
			levels(assess.LevelComplete),
			true,
		},
		{
			"complete after struggle",
			assess.Assessment{Level: assess.LevelNone},
			levels(assess.LevelNone, assess.LevelComplete),
			false, // latest assessment governs, not the max of history
		},
		{
			"single mostly is not enough",
			assess.Assessment{Level: assess.LevelMostly, ObservationOnly: true},
			levels(assess.LevelMostly),
			false,
		},
		{
			"safety valve: two consecutive mostly",
			assess.Assessment{Level: assess.LevelMostly, ObservationOnly: true},
			levels(assess.LevelPartial, assess.LevelMostly, assess.LevelMostly),
			true,
		},
		{
			"mostly after a gap does not trip the valve",
			assess.Assessment{Level: assess.LevelMostly},
			levels(assess.LevelMostly, assess.LevelPartial, assess.LevelMostly),
			false,
		},
		{
			"partial never completes",
			assess.Assessment{Level: assess.LevelPartial},
			levels(assess.LevelPartial, assess.LevelPartial, assess.LevelPartial),
			false,
		},
		{
			"none never completes",
			assess.Assessment{Level: assess.LevelNone},
			levels(assess.LevelNone),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConceptComplete(tt.latest, tt.traj)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConceptComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

// A complete assessment completes even when FactuallyWrong is set on an
// earlier turn; the flag is informational and never moves the level.
func TestConceptComplete_FactuallyWrongDoesNotBlock(t *testing.T) {
	latest := assess.Assessment{Level: assess.LevelComplete, FactuallyWrong: false}
	got, err := ConceptComplete(latest, levels(assess.LevelPartial, assess.LevelComplete))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected concept complete")
	}
}
