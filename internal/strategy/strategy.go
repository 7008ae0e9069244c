// Package strategy holds the teaching decision table: given the trend, the
// latest understanding level, the exchange count, and whether the concept is
// complete, it emits a directive telling the content generator how to teach
// next and whether to advance.
package strategy

import (
	"errors"
	"fmt"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/trajectory"
)

// Strategy is the teaching tactic for the next exchange.
type Strategy string

const (
	StrategyContinue         Strategy = "continue"
	StrategyTryDifferent     Strategy = "try-different"
	StrategyScaffold         Strategy = "scaffold"
	StrategyGiveHint         Strategy = "give-hint"
	StrategySummarizeAdvance Strategy = "summarize-advance"
)

// Tone is the register the content generator should adopt.
type Tone string

const (
	ToneEncouraging Tone = "encouraging"
	ToneChallenging Tone = "challenging"
	ToneSimplifying Tone = "simplifying"
)

// Directive is the selector's output for one turn.
type Directive struct {
	Strategy        Strategy
	Tone            Tone
	ConceptAdvances bool
	SessionComplete bool
}

// Config holds the two guardrail thresholds. Both are per-selector values
// passed at construction, never process-wide state, so concurrent sessions
// can run with different thresholds.
type Config struct {
	// MaxExchanges is the absolute ceiling of turns per concept. Once
	// reached the learner advances regardless of understanding.
	MaxExchanges int

	// ScaffoldTrigger is the turn count after which the selector shifts
	// from repetition to structural simplification.
	ScaffoldTrigger int
}

// DefaultConfig mirrors the tuning the tutor shipped with.
func DefaultConfig() Config {
	return Config{
		MaxExchanges:    6,
		ScaffoldTrigger: 3,
	}
}

// Validate rejects configurations that would break the decision table.
func (c Config) Validate() error {
	if c.MaxExchanges < 1 {
		return fmt.Errorf("strategy: MaxExchanges must be >= 1, got %d", c.MaxExchanges)
	}
	if c.ScaffoldTrigger < 1 {
		return fmt.Errorf("strategy: ScaffoldTrigger must be >= 1, got %d", c.ScaffoldTrigger)
	}
	if c.ScaffoldTrigger >= c.MaxExchanges {
		return fmt.Errorf("strategy: ScaffoldTrigger (%d) must be < MaxExchanges (%d)",
			c.ScaffoldTrigger, c.MaxExchanges)
	}
	return nil
}

// ErrTableGap means no rule of the decision table matched. The table is
// meant to be exhaustive, so a gap is an internal invariant violation; the
// caller must surface it, not treat the fallback as normal operation.
var ErrTableGap = errors.New("strategy: decision table gap")

// Selector evaluates the decision table.
type Selector struct {
	cfg Config
}

// NewSelector builds a selector, failing fast on invalid thresholds.
func NewSelector(cfg Config) (*Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Selector{cfg: cfg}, nil
}

// Config returns the thresholds the selector was built with.
func (s *Selector) Config() Config {
	return s.cfg
}

// Decide evaluates the rules in priority order; the first match wins.
//
//  1. Concept complete → summarize and advance.
//  2. Exchange ceiling reached → forced advance.
//  3. Improving → keep going, raising the bar past ScaffoldTrigger.
//  4. Stagnating → vary the approach, then scaffold, then hint.
//  5. Regressing → scaffold immediately, then hint.
//
// When no rule matches, Decide returns a safe continue/encouraging
// directive together with ErrTableGap.
func (s *Selector) Decide(
	trend trajectory.Trend,
	latest assess.UnderstandingLevel,
	exchangeCount int,
	conceptComplete bool,
) (Directive, error) {
	if conceptComplete {
		return Directive{
			Strategy:        StrategySummarizeAdvance,
			Tone:            ToneEncouraging,
			ConceptAdvances: true,
		}, nil
	}

	if exchangeCount >= s.cfg.MaxExchanges {
		return Directive{
			Strategy:        StrategySummarizeAdvance,
			Tone:            ToneEncouraging,
			ConceptAdvances: true,
		}, nil
	}

	switch trend {
	case trajectory.TrendImproving:
		switch latest {
		case assess.LevelMostly:
			return Directive{Strategy: StrategyContinue, Tone: ToneChallenging}, nil
		case assess.LevelPartial:
			if exchangeCount < s.cfg.ScaffoldTrigger {
				return Directive{Strategy: StrategyContinue, Tone: ToneEncouraging}, nil
			}
			return Directive{Strategy: StrategyTryDifferent, Tone: ToneEncouraging}, nil
		}
		// Improving with latest == none cannot happen (a positive delta
		// implies latest > none) and latest == complete is handled by the
		// concept-complete rule. Falls through to the gap report.

	case trajectory.TrendStagnating:
		switch {
		case exchangeCount < s.cfg.ScaffoldTrigger:
			return Directive{Strategy: StrategyTryDifferent, Tone: ToneEncouraging}, nil
		case exchangeCount < s.cfg.ScaffoldTrigger+2:
			return Directive{Strategy: StrategyScaffold, Tone: ToneSimplifying}, nil
		default:
			return Directive{Strategy: StrategyGiveHint, Tone: ToneSimplifying}, nil
		}

	case trajectory.TrendRegressing:
		if exchangeCount < s.cfg.ScaffoldTrigger {
			return Directive{Strategy: StrategyScaffold, Tone: ToneSimplifying}, nil
		}
		return Directive{Strategy: StrategyGiveHint, Tone: ToneSimplifying}, nil
	}

	return Directive{Strategy: StrategyContinue, Tone: ToneEncouraging},
		fmt.Errorf("%w: trend=%s level=%s exchanges=%d", ErrTableGap, trend, latest, exchangeCount)
}
