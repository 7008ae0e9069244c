package assess

import "fmt"

// UnderstandingLevel is the classifier's judgment of how well the learner
// grasps the active concept. Levels form a total order; the trajectory
// analyzer compares them numerically via Score.
type UnderstandingLevel int

const (
	LevelNone UnderstandingLevel = iota
	LevelPartial
	LevelMostly
	LevelComplete
)

// Score maps a level to its numeric position in the order.
func (l UnderstandingLevel) Score() int {
	return int(l)
}

// Valid reports whether l is one of the four defined levels.
func (l UnderstandingLevel) Valid() bool {
	return l >= LevelNone && l <= LevelComplete
}

func (l UnderstandingLevel) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelPartial:
		return "partial"
	case LevelMostly:
		return "mostly"
	case LevelComplete:
		return "complete"
	default:
		return fmt.Sprintf("UnderstandingLevel(%d)", int(l))
	}
}

// ParseLevel converts the classifier's wire value into a level.
// Unknown strings are an error, never silently coerced.
func ParseLevel(s string) (UnderstandingLevel, error) {
	switch s {
	case "none":
		return LevelNone, nil
	case "partial":
		return LevelPartial, nil
	case "mostly":
		return LevelMostly, nil
	case "complete":
		return LevelComplete, nil
	default:
		return 0, fmt.Errorf("unknown understanding level %q", s)
	}
}

// AllLevels returns the levels in ascending order.
func AllLevels() []UnderstandingLevel {
	return []UnderstandingLevel{LevelNone, LevelPartial, LevelMostly, LevelComplete}
}

// Assessment is one classifier judgment, produced once per learner turn.
type Assessment struct {
	Level UnderstandingLevel

	// FactuallyWrong marks a response containing a factual error. It is
	// context for the content generator only and never changes Level.
	FactuallyWrong bool

	// ObservationOnly marks a correct observation given without reasoning
	// ("it swings slower" with no why). Meaningful only at LevelMostly;
	// Normalize clears it elsewhere.
	ObservationOnly bool

	// Reasoning is the classifier's one-line justification, kept for
	// display and event logging.
	Reasoning string
}

// Normalize enforces the assessment contract: ObservationOnly may be set
// only when the level is mostly.
func (a Assessment) Normalize() Assessment {
	if a.Level != LevelMostly {
		a.ObservationOnly = false
	}
	return a
}
