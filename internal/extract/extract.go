// Package extract builds a lesson plan from a simulation's topic
// description. It runs once at session start, asking the LLM for 2-4
// teachable concepts ordered foundational to advanced. Simulations with a
// predefined concept list skip extraction entirely.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/llm"
)

// Config holds configuration for the LLM extractor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Extractor derives teachable concepts from a topic description.
type Extractor struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-based extractor.
func New(provider llm.Provider, cfg Config) *Extractor {
	return &Extractor{provider: provider, cfg: cfg}
}

// conceptOutput mirrors one concept in the LLM response.
type conceptOutput struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	KeyInsight    string   `json:"key_insight"`
	RelatedParams []string `json:"related_params"`
}

type extractOutput struct {
	Concepts []conceptOutput `json:"concepts"`
}

// Concepts returns the lesson plan for a simulation. The predefined
// catalog concepts win when present; otherwise the topic description is
// sent to the LLM. Extraction failure falls back to a single generic
// concept so a session can always start.
func (e *Extractor) Concepts(ctx context.Context, sim catalog.Simulation) ([]catalog.Concept, error) {
	if len(sim.Concepts) > 0 {
		return sim.Concepts, nil
	}
	return e.fromDescription(ctx, sim)
}

func (e *Extractor) fromDescription(ctx context.Context, sim catalog.Simulation) ([]catalog.Concept, error) {
	ctx = llm.WithPurpose(ctx, "extract")

	userMsg, err := buildExtractMessage(sim)
	if err != nil {
		return nil, fmt.Errorf("build extraction prompt: %w", err)
	}

	llmReq := llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      Schema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, llmReq)
	if err != nil {
		return fallbackConcepts(sim), nil
	}

	var raw extractOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return fallbackConcepts(sim), nil
	}

	concepts := make([]catalog.Concept, 0, len(raw.Concepts))
	for i, c := range raw.Concepts {
		// Keep only related params the simulation actually has.
		params := make([]string, 0, len(c.RelatedParams))
		for _, p := range c.RelatedParams {
			if _, ok := sim.Parameters[p]; ok {
				params = append(params, p)
			}
		}
		concepts = append(concepts, catalog.Concept{
			ID:            i + 1,
			Title:         c.Title,
			Description:   c.Description,
			KeyInsight:    c.KeyInsight,
			RelatedParams: params,
		})
	}

	if len(concepts) == 0 {
		return fallbackConcepts(sim), nil
	}
	return concepts, nil
}

// fallbackConcepts builds a single generic concept covering the whole
// simulation, so extraction problems never block a session.
func fallbackConcepts(sim catalog.Simulation) []catalog.Concept {
	params := make([]string, 0, len(sim.Parameters))
	for name := range sim.Parameters {
		params = append(params, name)
	}
	return []catalog.Concept{{
		ID:            1,
		Title:         "Exploring " + sim.Title,
		Description:   "Learn how this simulation behaves as its parameters change.",
		KeyInsight:    "Changing one parameter at a time reveals what each one controls.",
		RelatedParams: params,
	}}
}

const extractSystemPrompt = `You are an expert physics teacher. Analyze the topic description and extract 2-4 KEY CONCEPTS that should be taught to a student.

For each concept provide:
1. A short title (5-7 words)
2. A clear description of what to teach (2-3 sentences)
3. The key insight or "aha moment" the student should reach
4. Which simulation parameters best illustrate this concept

IMPORTANT:
- Order concepts from foundational to advanced
- Each concept should build on the previous
- Focus on concepts that can be demonstrated through parameter changes
- Use only parameter names from the provided list`

var extractUserTemplate = template.Must(template.New("extract").Parse(`TOPIC DESCRIPTION:
{{.Description}}

AVAILABLE PARAMETERS:
{{range $name, $info := .Parameters}}- {{$name}}: {{$info.Effect}}
{{end}}`))

func buildExtractMessage(sim catalog.Simulation) (string, error) {
	var buf bytes.Buffer
	if err := extractUserTemplate.Execute(&buf, sim); err != nil {
		return "", err
	}
	return buf.String(), nil
}
