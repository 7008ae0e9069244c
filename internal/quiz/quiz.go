// Package quiz is a deterministic rules engine for evaluating
// parameter submissions against success criteria. A rule combines
// required conditions, an optional optimization objective, and optional
// fixed thresholds; the result is one of three statuses with a score.
// No LLM is involved, so results are reproducible.
package quiz

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Status classifies a quiz submission.
type Status string

const (
	StatusRight          Status = "RIGHT"
	StatusPartiallyRight Status = "PARTIALLY_RIGHT"
	StatusWrong          Status = "WRONG"
)

// Operator is a comparison operator used in conditions.
type Operator string

const (
	OpGTE Operator = ">="
	OpLTE Operator = "<="
	OpEQ  Operator = "=="
	OpGT  Operator = ">"
	OpLT  Operator = "<"
	OpNEQ Operator = "!="
)

// floatTolerance is the slack used for == and != comparisons.
const floatTolerance = 0.01

// Condition is a single requirement on a submitted parameter.
type Condition struct {
	Parameter string   `json:"parameter"`
	Operator  Operator `json:"operator"`
	Value     float64  `json:"value"`
}

// Objective is an optimization direction.
type Objective string

const (
	Minimize Objective = "minimize"
	Maximize Objective = "maximize"
)

// OptimizationTarget asks the student to push a parameter toward one
// end of its range rather than hit a fixed value.
type OptimizationTarget struct {
	Parameter string    `json:"parameter"`
	Objective Objective `json:"objective"`
}

// Tolerances are fractions of the parameter range. A submission within
// Perfect of the optimal end scores full marks, within Partial scores
// half.
type Tolerances struct {
	Perfect float64 `json:"perfect"`
	Partial float64 `json:"partial"`
}

// DefaultTolerances returns the standard optimization tolerances.
func DefaultTolerances() Tolerances {
	return Tolerances{Perfect: 0.15, Partial: 0.35}
}

// Scoring maps the three outcomes to numeric scores.
type Scoring struct {
	Perfect float64 `json:"perfect"`
	Partial float64 `json:"partial"`
	Wrong   float64 `json:"wrong"`
}

// DefaultScoring returns the standard 1.0 / 0.5 / 0.0 scoring.
func DefaultScoring() Scoring {
	return Scoring{Perfect: 1.0, Partial: 0.5, Wrong: 0.0}
}

// Thresholds are fixed per-parameter cutoffs, checked with the
// operator declared for that parameter in the rule's conditions
// (default >=). Keys ending in "_min" or "_max" bound the base
// parameter from below or above.
type Thresholds struct {
	Perfect map[string]float64 `json:"perfect,omitempty"`
	Partial map[string]float64 `json:"partial,omitempty"`
}

// Rule holds the full success criteria for one quiz question.
type Rule struct {
	Conditions   []Condition         `json:"conditions,omitempty"`
	Optimization *OptimizationTarget `json:"optimization_target,omitempty"`
	Tolerances   Tolerances          `json:"tolerances,omitempty"`
	Scoring      Scoring             `json:"scoring,omitempty"`
	Thresholds   *Thresholds         `json:"thresholds,omitempty"`
}

// Result is the outcome of evaluating a submission.
type Result struct {
	Score  float64 `json:"score"`
	Status Status  `json:"status"`
}

// ErrEmptyRule is returned when a rule has no criteria at all.
var ErrEmptyRule = fmt.Errorf("quiz: rule has no conditions, optimization target, or thresholds")

// ParseRange extracts the numeric bounds from a range string like
// "1-10 units", "5-50 count", or "0-100%". Units may be glued to the
// number, so trailing non-numeric characters are trimmed from each
// bound. Unparseable strings fall back to 1-10 so evaluation never
// blocks on a malformed catalog entry.
func ParseRange(s string) (min, max float64) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 1, 10
	}
	parts := strings.SplitN(fields[0], "-", 2)
	if len(parts) != 2 {
		return 1, 10
	}
	lo, err1 := parseBound(parts[0])
	hi, err2 := parseBound(parts[1])
	if err1 != nil || err2 != nil {
		return 1, 10
	}
	return lo, hi
}

func parseBound(s string) (float64, error) {
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	return strconv.ParseFloat(s, 64)
}

// evalCondition applies a single operator. Unknown operators fail the
// condition rather than crashing the evaluation.
func evalCondition(value float64, op Operator, threshold float64) bool {
	switch op {
	case OpGTE:
		return value >= threshold
	case OpLTE:
		return value <= threshold
	case OpEQ:
		return math.Abs(value-threshold) < floatTolerance
	case OpGT:
		return value > threshold
	case OpLT:
		return value < threshold
	case OpNEQ:
		return math.Abs(value-threshold) >= floatTolerance
	default:
		return false
	}
}

// allConditionsMet reports whether every condition holds. A condition
// on a parameter missing from the submission fails.
func allConditionsMet(params map[string]float64, conditions []Condition) bool {
	for _, c := range conditions {
		v, ok := params[c.Parameter]
		if !ok {
			return false
		}
		if !evalCondition(v, c.Operator, c.Value) {
			return false
		}
	}
	return true
}

// meetsThresholds checks the submission against one threshold map,
// using operators declared in conditions and honoring _min/_max
// suffixes.
func meetsThresholds(params map[string]float64, thresholds map[string]float64, conditions []Condition) bool {
	if len(thresholds) == 0 {
		return false
	}

	ops := make(map[string]Operator, len(conditions))
	for _, c := range conditions {
		ops[c.Parameter] = c.Operator
	}

	for name, threshold := range thresholds {
		switch {
		case strings.HasSuffix(name, "_min"):
			base := strings.TrimSuffix(name, "_min")
			v, ok := params[base]
			if !ok || v < threshold {
				return false
			}
		case strings.HasSuffix(name, "_max"):
			base := strings.TrimSuffix(name, "_max")
			v, ok := params[base]
			if !ok || v > threshold {
				return false
			}
		default:
			v, ok := params[name]
			if !ok {
				return false
			}
			op, found := ops[name]
			if !found {
				op = OpGTE
			}
			if !evalCondition(v, op, threshold) {
				return false
			}
		}
	}
	return true
}

// evalOptimization scores a value against a minimize or maximize goal.
// The distance from the optimal end is normalized by the range span and
// compared against the tolerances.
func evalOptimization(value float64, obj Objective, min, max float64, tol Tolerances) float64 {
	span := max - min
	if span <= 0 {
		return 0
	}

	var distance float64
	switch obj {
	case Minimize:
		distance = value - min
	case Maximize:
		distance = max - value
	default:
		return 0
	}

	normalized := distance / span
	switch {
	case normalized <= tol.Perfect:
		return 1.0
	case normalized <= tol.Partial:
		return 0.5
	default:
		return 0
	}
}

// Evaluate scores a submission against a rule. The ranges map carries
// the simulation's range strings (for example "1-10 units") keyed by
// parameter name; it is only consulted when the rule has an
// optimization target.
//
// Evaluation order: required conditions gate everything, then the
// optimization target if present, then fixed thresholds, and finally a
// pure condition list scores perfect when all conditions passed.
func Evaluate(params map[string]float64, rule Rule, ranges map[string]string) (Result, error) {
	if len(rule.Conditions) == 0 && rule.Optimization == nil && rule.Thresholds == nil {
		return Result{}, ErrEmptyRule
	}

	scoring := rule.Scoring
	if scoring == (Scoring{}) {
		scoring = DefaultScoring()
	}

	if len(rule.Conditions) > 0 && !allConditionsMet(params, rule.Conditions) {
		return Result{Score: scoring.Wrong, Status: StatusWrong}, nil
	}

	if opt := rule.Optimization; opt != nil {
		rangeStr, hasRange := ranges[opt.Parameter]
		value, hasValue := params[opt.Parameter]
		if hasRange && hasValue {
			min, max := ParseRange(rangeStr)

			tol := rule.Tolerances
			if tol == (Tolerances{}) {
				tol = DefaultTolerances()
			}

			switch evalOptimization(value, opt.Objective, min, max, tol) {
			case 1.0:
				return Result{Score: scoring.Perfect, Status: StatusRight}, nil
			case 0.5:
				return Result{Score: scoring.Partial, Status: StatusPartiallyRight}, nil
			default:
				return Result{Score: scoring.Wrong, Status: StatusWrong}, nil
			}
		}
	}

	if t := rule.Thresholds; t != nil {
		if meetsThresholds(params, t.Perfect, rule.Conditions) {
			return Result{Score: scoring.Perfect, Status: StatusRight}, nil
		}
		if meetsThresholds(params, t.Partial, rule.Conditions) {
			return Result{Score: scoring.Partial, Status: StatusPartiallyRight}, nil
		}
		return Result{Score: scoring.Wrong, Status: StatusWrong}, nil
	}

	if len(rule.Conditions) > 0 && rule.Optimization == nil {
		return Result{Score: scoring.Perfect, Status: StatusRight}, nil
	}

	return Result{Score: scoring.Wrong, Status: StatusWrong}, nil
}

// HintForAttempt returns the hint for a 1-based attempt number. Later
// attempts past the end of the list get the last hint; an empty list
// yields an empty string.
func HintForAttempt(hints []string, attempt int) string {
	if len(hints) == 0 || attempt < 1 {
		return ""
	}
	if attempt > len(hints) {
		attempt = len(hints)
	}
	return hints[attempt-1]
}

// AllowRetry reports whether another attempt is permitted after the
// given 1-based attempt number.
func AllowRetry(attempt, maxAttempts int) bool {
	return attempt < maxAttempts
}

// DefaultMaxAttempts is the standard retry budget per question.
const DefaultMaxAttempts = 3

// Progress summarizes scores across a quiz.
type Progress struct {
	Completed    int     `json:"questions_completed"`
	Remaining    int     `json:"questions_remaining"`
	AverageScore float64 `json:"average_score"`
	PerfectCount int     `json:"perfect_count"`
	PartialCount int     `json:"partial_count"`
	WrongCount   int     `json:"wrong_count"`
	Total        int     `json:"total_questions"`
}

// CalculateProgress aggregates per-question scores into overall
// statistics. The average is rounded to two decimal places.
func CalculateProgress(scores map[string]float64, totalQuestions int) Progress {
	p := Progress{
		Completed: len(scores),
		Remaining: totalQuestions - len(scores),
		Total:     totalQuestions,
	}

	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		p.AverageScore = math.Round(sum/float64(len(scores))*100) / 100
	}

	for _, s := range scores {
		switch {
		case s >= 0.99:
			p.PerfectCount++
		case s > 0.4:
			p.PartialCount++
		default:
			p.WrongCount++
		}
	}
	return p
}

// CoerceParams converts a JSON-decoded parameter map to floats,
// parsing numeric strings. Values that cannot be read as numbers are
// dropped; the returned slice lists their names sorted for stable
// error messages.
func CoerceParams(raw map[string]any) (map[string]float64, []string) {
	params := make(map[string]float64, len(raw))
	var skipped []string
	for name, v := range raw {
		switch val := v.(type) {
		case float64:
			params[name] = val
		case int:
			params[name] = float64(val)
		case string:
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				skipped = append(skipped, name)
				continue
			}
			params[name] = f
		default:
			skipped = append(skipped, name)
		}
	}
	sort.Strings(skipped)
	return params, skipped
}
