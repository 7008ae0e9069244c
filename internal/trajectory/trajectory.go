// Package trajectory turns the running history of understanding levels for
// the active concept into a trend signal and a concept-completion decision.
// It is pure: no clocks, no I/O, no LLM.
package trajectory

import (
	"errors"

	"github.com/adasgupta/simtutor/internal/assess"
)

// Trend is the short-term derivative of understanding across turns.
type Trend string

const (
	TrendImproving  Trend = "improving"
	TrendStagnating Trend = "stagnating"
	TrendRegressing Trend = "regressing"
)

// ErrEmptyTrajectory is returned when the analyzer is called before any
// assessment has been recorded. That is a caller bug, not a learner state.
var ErrEmptyTrajectory = errors.New("trajectory: empty trajectory")

// Analyze classifies the trend from the level history of the current concept.
//
// The two most recent scores decide the direction. A zero delta is inspected
// against the last three entries for an up-down-up or down-up-down
// oscillation; oscillation reads as uncertainty and is classified
// stagnating, the same as a flat line. With a single entry there is nothing
// to compare, which also reads as stagnating.
func Analyze(levels []assess.UnderstandingLevel) (Trend, error) {
	if len(levels) == 0 {
		return "", ErrEmptyTrajectory
	}
	if len(levels) < 2 {
		return TrendStagnating, nil
	}

	last := levels[len(levels)-1].Score()
	prev := levels[len(levels)-2].Score()

	switch delta := last - prev; {
	case delta > 0:
		if oscillating(levels) {
			return TrendStagnating, nil
		}
		return TrendImproving, nil
	case delta < 0:
		if oscillating(levels) {
			return TrendStagnating, nil
		}
		return TrendRegressing, nil
	default:
		return TrendStagnating, nil
	}
}

// oscillating reports whether the last three entries form an alternating
// pattern (a<b>c or a>b<c). A learner bouncing between levels has not
// actually moved, regardless of the sign of the final delta.
func oscillating(levels []assess.UnderstandingLevel) bool {
	n := len(levels)
	if n < 3 {
		return false
	}
	a := levels[n-3].Score()
	b := levels[n-2].Score()
	c := levels[n-1].Score()
	return (a < b && b > c) || (a > b && b < c)
}

// ConceptComplete decides whether the latest assessment closes out the
// active concept.
//
// A complete assessment always does. A mostly assessment does not on its
// own — a correct observation without reasoning is insufficient — except
// under the safety valve: two consecutive mostly entries are accepted, so a
// classifier that never grants complete cannot stall the session forever.
// The latest assessment must already be appended to levels.
func ConceptComplete(latest assess.Assessment, levels []assess.UnderstandingLevel) (bool, error) {
	if len(levels) == 0 {
		return false, ErrEmptyTrajectory
	}

	switch latest.Level {
	case assess.LevelComplete:
		return true, nil
	case assess.LevelMostly:
		if len(levels) >= 2 && levels[len(levels)-2] == assess.LevelMostly {
			return true, nil
		}
		return false, nil
	default:
		return false, nil
	}
}
