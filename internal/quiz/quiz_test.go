package quiz

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in       string
		min, max float64
	}{
		{"1-10 units", 1, 10},
		{"5-50 count", 5, 50},
		{"0-100%", 0, 100},
		{"2-20m", 2, 20},
		{"0-30 degrees", 0, 30},
		{"garbage", 1, 10},
		{"", 1, 10},
		{"a-b units", 1, 10},
	}
	for _, tt := range tests {
		min, max := ParseRange(tt.in)
		if min != tt.min || max != tt.max {
			t.Errorf("ParseRange(%q) = %v, %v, want %v, %v", tt.in, min, max, tt.min, tt.max)
		}
	}
}

func TestEvalCondition(t *testing.T) {
	tests := []struct {
		value     float64
		op        Operator
		threshold float64
		want      bool
	}{
		{5, OpGTE, 5, true},
		{4.9, OpGTE, 5, false},
		{5, OpLTE, 5, true},
		{5.1, OpLTE, 5, false},
		{5.005, OpEQ, 5, true},
		{5.02, OpEQ, 5, false},
		{5.02, OpNEQ, 5, true},
		{5.005, OpNEQ, 5, false},
		{6, OpGT, 5, true},
		{5, OpGT, 5, false},
		{4, OpLT, 5, true},
		{5, OpLT, 5, false},
		{5, Operator("~="), 5, false},
	}
	for _, tt := range tests {
		if got := evalCondition(tt.value, tt.op, tt.threshold); got != tt.want {
			t.Errorf("evalCondition(%v, %q, %v) = %v, want %v", tt.value, tt.op, tt.threshold, got, tt.want)
		}
	}
}

func TestEvaluate_ConditionsOnly(t *testing.T) {
	rule := Rule{
		Conditions: []Condition{
			{Parameter: "length", Operator: OpGTE, Value: 5},
			{Parameter: "number_of_oscillations", Operator: OpLTE, Value: 20},
		},
	}

	tests := []struct {
		name   string
		params map[string]float64
		want   Status
	}{
		{"all pass", map[string]float64{"length": 7, "number_of_oscillations": 10}, StatusRight},
		{"one fails", map[string]float64{"length": 3, "number_of_oscillations": 10}, StatusWrong},
		{"missing parameter", map[string]float64{"length": 7}, StatusWrong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.params, rule, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tt.want {
				t.Errorf("status = %q, want %q", res.Status, tt.want)
			}
		})
	}
}

func TestEvaluate_Optimization(t *testing.T) {
	rule := Rule{
		Optimization: &OptimizationTarget{Parameter: "length", Objective: Minimize},
	}
	ranges := map[string]string{"length": "1-10 units"}

	// Range span 9; perfect within 15% (distance <= 1.35), partial
	// within 35% (distance <= 3.15).
	tests := []struct {
		name      string
		length    float64
		want      Status
		wantScore float64
	}{
		{"at optimal", 1, StatusRight, 1.0},
		{"within perfect tolerance", 2.3, StatusRight, 1.0},
		{"within partial tolerance", 4, StatusPartiallyRight, 0.5},
		{"too far", 6, StatusWrong, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(map[string]float64{"length": tt.length}, rule, ranges)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tt.want || res.Score != tt.wantScore {
				t.Errorf("result = %v/%q, want %v/%q", res.Score, res.Status, tt.wantScore, tt.want)
			}
		})
	}
}

func TestEvaluate_Maximize(t *testing.T) {
	rule := Rule{
		Optimization: &OptimizationTarget{Parameter: "rotationSpeed", Objective: Maximize},
		Tolerances:   Tolerances{Perfect: 0.1, Partial: 0.3},
	}
	ranges := map[string]string{"rotationSpeed": "0-100%"}

	res, err := Evaluate(map[string]float64{"rotationSpeed": 95}, rule, ranges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusRight {
		t.Errorf("status = %q, want %q", res.Status, StatusRight)
	}

	res, _ = Evaluate(map[string]float64{"rotationSpeed": 75}, rule, ranges)
	if res.Status != StatusPartiallyRight {
		t.Errorf("status = %q, want %q", res.Status, StatusPartiallyRight)
	}
}

func TestEvaluate_OptimizationGatedByConditions(t *testing.T) {
	rule := Rule{
		Conditions: []Condition{
			{Parameter: "number_of_oscillations", Operator: OpGTE, Value: 10},
		},
		Optimization: &OptimizationTarget{Parameter: "length", Objective: Minimize},
	}
	ranges := map[string]string{"length": "1-10 units"}

	// Optimal length but the gating condition fails.
	res, err := Evaluate(map[string]float64{"length": 1, "number_of_oscillations": 5}, rule, ranges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusWrong {
		t.Errorf("status = %q, want %q", res.Status, StatusWrong)
	}
}

func TestEvaluate_Thresholds(t *testing.T) {
	rule := Rule{
		Conditions: []Condition{
			{Parameter: "length", Operator: OpGTE, Value: 1},
		},
		Thresholds: &Thresholds{
			Perfect: map[string]float64{"length": 8},
			Partial: map[string]float64{"length": 5},
		},
	}

	tests := []struct {
		length float64
		want   Status
	}{
		{9, StatusRight},
		{6, StatusPartiallyRight},
		{2, StatusWrong},
	}
	for _, tt := range tests {
		res, err := Evaluate(map[string]float64{"length": tt.length}, rule, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != tt.want {
			t.Errorf("length %v: status = %q, want %q", tt.length, res.Status, tt.want)
		}
	}
}

func TestEvaluate_ThresholdMinMaxSuffixes(t *testing.T) {
	rule := Rule{
		Conditions: []Condition{
			{Parameter: "axialTilt", Operator: OpGTE, Value: 0},
		},
		Thresholds: &Thresholds{
			Perfect: map[string]float64{"axialTilt_min": 20, "axialTilt_max": 27},
		},
	}

	res, err := Evaluate(map[string]float64{"axialTilt": 23.5}, rule, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != StatusRight {
		t.Errorf("in-band value: status = %q, want %q", res.Status, StatusRight)
	}

	res, _ = Evaluate(map[string]float64{"axialTilt": 29}, rule, nil)
	if res.Status != StatusWrong {
		t.Errorf("out-of-band value: status = %q, want %q", res.Status, StatusWrong)
	}
}

func TestEvaluate_EmptyRule(t *testing.T) {
	_, err := Evaluate(map[string]float64{"length": 5}, Rule{}, nil)
	if !errors.Is(err, ErrEmptyRule) {
		t.Errorf("err = %v, want ErrEmptyRule", err)
	}
}

func TestEvaluate_CustomScoring(t *testing.T) {
	rule := Rule{
		Conditions: []Condition{{Parameter: "length", Operator: OpGTE, Value: 5}},
		Scoring:    Scoring{Perfect: 10, Partial: 5, Wrong: 1},
	}

	res, err := Evaluate(map[string]float64{"length": 7}, rule, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 10 {
		t.Errorf("score = %v, want 10", res.Score)
	}

	res, _ = Evaluate(map[string]float64{"length": 2}, rule, nil)
	if res.Score != 1 {
		t.Errorf("score = %v, want 1", res.Score)
	}
}

func TestHintForAttempt(t *testing.T) {
	hints := []string{"try a smaller value", "think about the range", "set it to the minimum"}

	tests := []struct {
		attempt int
		want    string
	}{
		{1, "try a smaller value"},
		{2, "think about the range"},
		{3, "set it to the minimum"},
		{5, "set it to the minimum"},
		{0, ""},
	}
	for _, tt := range tests {
		if got := HintForAttempt(hints, tt.attempt); got != tt.want {
			t.Errorf("HintForAttempt(%d) = %q, want %q", tt.attempt, got, tt.want)
		}
	}

	if got := HintForAttempt(nil, 1); got != "" {
		t.Errorf("HintForAttempt(nil, 1) = %q, want empty", got)
	}
}

func TestAllowRetry(t *testing.T) {
	if !AllowRetry(1, DefaultMaxAttempts) {
		t.Error("attempt 1 of 3 should allow retry")
	}
	if !AllowRetry(2, DefaultMaxAttempts) {
		t.Error("attempt 2 of 3 should allow retry")
	}
	if AllowRetry(3, DefaultMaxAttempts) {
		t.Error("attempt 3 of 3 should not allow retry")
	}
}

func TestCalculateProgress(t *testing.T) {
	scores := map[string]float64{
		"q1": 1.0,
		"q2": 0.5,
		"q3": 0.0,
	}

	p := CalculateProgress(scores, 5)
	if p.Completed != 3 || p.Remaining != 2 || p.Total != 5 {
		t.Errorf("counts = %d/%d/%d, want 3/2/5", p.Completed, p.Remaining, p.Total)
	}
	if p.AverageScore != 0.5 {
		t.Errorf("average = %v, want 0.5", p.AverageScore)
	}
	if p.PerfectCount != 1 || p.PartialCount != 1 || p.WrongCount != 1 {
		t.Errorf("buckets = %d/%d/%d, want 1/1/1", p.PerfectCount, p.PartialCount, p.WrongCount)
	}
}

func TestCalculateProgress_Empty(t *testing.T) {
	p := CalculateProgress(nil, 4)
	if p.Completed != 0 || p.Remaining != 4 || p.AverageScore != 0 {
		t.Errorf("got %+v, want zeroed progress with 4 remaining", p)
	}
}

func TestCoerceParams(t *testing.T) {
	params, skipped := CoerceParams(map[string]any{
		"length":     7.5,
		"count":      "20",
		"objectType": "Opaque",
	})

	if params["length"] != 7.5 {
		t.Errorf("length = %v, want 7.5", params["length"])
	}
	if params["count"] != 20 {
		t.Errorf("count = %v, want 20", params["count"])
	}
	if len(skipped) != 1 || skipped[0] != "objectType" {
		t.Errorf("skipped = %v, want [objectType]", skipped)
	}
}
