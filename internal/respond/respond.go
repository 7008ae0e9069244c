// Package respond generates the teacher's side of the dialogue. It takes
// the strategy directive chosen by the progression controller and turns it
// into a concrete teacher message, optionally with a simulation parameter
// change to demonstrate the concept.
package respond

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/llm"
	"github.com/adasgupta/simtutor/internal/strategy"
)

// completionMessage is sent when the last concept finishes. No LLM call
// is made for it, so session completion can never fail on a flaky model.
const completionMessage = "Excellent work! We've covered all the key concepts. You've done a wonderful job exploring this simulation!"

// Config holds configuration for the LLM responder.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Temperature is higher than the
// classifier's because replies should read naturally, not identically.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Input carries the teaching context for one reply.
type Input struct {
	Simulation catalog.Simulation
	Concept    catalog.Concept

	// PreviousConcept is set when the learner just completed a concept
	// and this reply must summarize it before introducing Concept.
	PreviousConcept *catalog.Concept

	Directive strategy.Directive
	Level     assess.UnderstandingLevel

	// NeedsDeeper is set when the learner gave a correct observation
	// without reasoning; the reply should ask why.
	NeedsDeeper bool

	// Exchange is the 1-based exchange count on this concept. Zero means
	// the concept has not been discussed yet (introduction).
	Exchange int

	CurrentParams catalog.Params

	// ParamHistory holds formatted lines describing prior parameter
	// changes and whether they helped.
	ParamHistory []string

	// RecentHistory holds the last few dialogue lines, oldest first.
	RecentHistory []string

	Utterance string
}

// ParamSuggestion is a parameter change the teacher wants to make.
type ParamSuggestion struct {
	Parameter          string
	NewValue           any
	Reason             string
	PredictionQuestion string
}

// Reply is the responder's output for one turn.
type Reply struct {
	Message     string
	ParamChange *ParamSuggestion
}

// Responder generates teacher replies through an llm.Provider.
type Responder struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-based responder.
func New(provider llm.Provider, cfg Config) *Responder {
	return &Responder{provider: provider, cfg: cfg}
}

// replyOutput is the raw LLM response.
type replyOutput struct {
	TeacherMessage     string  `json:"teacher_message"`
	SuggestsChange     bool    `json:"suggests_param_change"`
	ParamToChange      *string `json:"param_to_change"`
	NewValue           *string `json:"new_value"`
	ChangeReason       string  `json:"change_reason"`
	PredictionQuestion string  `json:"prediction_question"`
}

// Reply generates the teacher's next message. A session-complete directive
// short-circuits to the canned closing message.
func (r *Responder) Reply(ctx context.Context, in Input) (*Reply, error) {
	if in.Directive.SessionComplete {
		return &Reply{Message: completionMessage}, nil
	}

	ctx = llm.WithPurpose(ctx, "respond")

	userMsg, err := buildUserMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build teaching prompt: %w", err)
	}

	llmReq := llm.Request{
		System: buildSystemPrompt(in),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      Schema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM reply failed: %w", err)
	}

	var raw replyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse reply response: %w", err)
	}
	if raw.TeacherMessage == "" {
		return nil, fmt.Errorf("reply has empty teacher message")
	}

	out := &Reply{Message: raw.TeacherMessage}

	if raw.SuggestsChange && raw.ParamToChange != nil && raw.NewValue != nil {
		param := *raw.ParamToChange
		if _, ok := in.Simulation.Parameters[param]; !ok {
			// The model suggested a parameter this simulation does not
			// have. Keep the message, drop the change.
			return out, nil
		}

		reason := raw.ChangeReason
		if reason == "" {
			reason = "To illustrate the concept"
		}

		out.ParamChange = &ParamSuggestion{
			Parameter:          param,
			NewValue:           coerceValue(*raw.NewValue),
			Reason:             reason,
			PredictionQuestion: raw.PredictionQuestion,
		}
	}

	return out, nil
}

// coerceValue parses numeric parameter values, leaving categorical ones
// (like the shadows simulation's object type) as strings.
func coerceValue(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
