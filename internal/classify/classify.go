// Package classify turns a learner utterance into an understanding
// assessment using the LLM. It is the only judge of understanding in the
// system; downstream progression logic consumes its output verbatim.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/adasgupta/simtutor/internal/assess"
	"github.com/adasgupta/simtutor/internal/llm"
)

// Classifier assesses a learner utterance against the concept being taught.
type Classifier interface {
	Classify(ctx context.Context, in Input) (assess.Assessment, error)
}

// Input carries everything the classifier needs to judge one utterance.
type Input struct {
	Utterance string

	ConceptTitle string
	KeyInsight   string

	// LastTeacherMessage is the question the learner is answering.
	LastTeacherMessage string

	// RecentHistory holds the last few dialogue lines, oldest first,
	// formatted as "teacher: ..." / "learner: ...".
	RecentHistory []string
}

// Config holds configuration for the LLM classifier.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Temperature stays low because
// assessment needs to be consistent across turns, not creative.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// LLMClassifier implements Classifier using an llm.Provider.
type LLMClassifier struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-based classifier.
func New(provider llm.Provider, cfg Config) *LLMClassifier {
	return &LLMClassifier{provider: provider, cfg: cfg}
}

// classifyOutput is the raw LLM response.
type classifyOutput struct {
	Level           string `json:"level"`
	Reasoning       string `json:"reasoning"`
	FactuallyWrong  bool   `json:"factually_wrong"`
	ObservationOnly bool   `json:"observation_without_reasoning"`
}

// Classify sends the utterance to the LLM and parses the assessment.
// An unparseable response or an out-of-vocabulary level is an error;
// levels are never silently coerced.
func (c *LLMClassifier) Classify(ctx context.Context, in Input) (assess.Assessment, error) {
	ctx = llm.WithPurpose(ctx, "classify")

	userMsg, err := buildClassifyMessage(in)
	if err != nil {
		return assess.Assessment{}, fmt.Errorf("build classify prompt: %w", err)
	}

	llmReq := llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      Schema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, llmReq)
	if err != nil {
		return assess.Assessment{}, fmt.Errorf("LLM classification failed: %w", err)
	}

	var raw classifyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return assess.Assessment{}, fmt.Errorf("parse classification response: %w", err)
	}

	level, err := assess.ParseLevel(raw.Level)
	if err != nil {
		return assess.Assessment{}, fmt.Errorf("classification returned %w", err)
	}

	a := assess.Assessment{
		Level:           level,
		FactuallyWrong:  raw.FactuallyWrong,
		ObservationOnly: raw.ObservationOnly,
		Reasoning:       raw.Reasoning,
	}
	return a.Normalize(), nil
}

// The scoring rules mirror how a teacher distinguishes observation from
// understanding: seeing the effect earns "mostly", explaining why earns
// "complete", and any reasoning attempt counts.
const classifySystemPrompt = `You are evaluating a student's understanding of a physics concept taught through an interactive simulation.

UNDERSTANDING LEVELS:
- "complete": Student explains WHAT happens AND gives a reason WHY (even a simple one)
- "mostly": Correct observation or prediction but NO reasoning (good start, needs follow-up)
- "partial": Wrong direction, vague, or just acknowledgment ("okay", "sure")
- "none": "I don't know", off-topic, or completely wrong

SCORING RULES:
1. OBSERVATION WITHOUT WHY = mostly. "it took longer" is correct but doesn't explain WHY.
2. CORRECT + ANY REASONING = complete. Be generous: "because it's longer", "more distance", "gravity pulls more" all count.
3. WRONG DIRECTION = partial. They tried but got it backwards.
4. ACKNOWLEDGMENTS = partial. "okay" or "sure" demonstrates nothing.
5. "I don't know" = none.

EXAMPLES:
- "it takes longer" -> mostly (observation only)
- "longer because more distance" -> complete
- "because it's longer" -> complete (simple but counts)
- "I think faster" -> partial (wrong direction)
- "okay" -> partial
- "I don't know" -> none

Set observation_without_reasoning=true only when the level is "mostly" and the student stated a correct observation with no why.
Set factually_wrong=true when the student asserted something physically incorrect, regardless of level.
Use only the four level values listed. Keep reasoning to one sentence.`

var classifyUserTemplate = template.Must(template.New("classify").Parse(`Concept: {{.ConceptTitle}}
Key insight: {{.KeyInsight}}

Teacher's last question:
"{{.LastTeacherMessage}}"
{{if .RecentHistory}}
Recent conversation:
{{range .RecentHistory}}{{.}}
{{end}}{{end}}
Student's response:
"{{.Utterance}}"`))

func buildClassifyMessage(in Input) (string, error) {
	var buf bytes.Buffer
	if err := classifyUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
