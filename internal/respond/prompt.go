package respond

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/adasgupta/simtutor/internal/catalog"
	"github.com/adasgupta/simtutor/internal/strategy"
)

// toneInstructions tell the model how to pitch the reply.
var toneInstructions = map[strategy.Tone]string{
	strategy.ToneEncouraging: "Celebrate progress and build confidence.",
	strategy.ToneChallenging: "Gently push the student to think deeper.",
	strategy.ToneSimplifying: "Be extra supportive and break things down simply.",
}

// strategyInstructions tell the model what tactic to use.
var strategyInstructions = map[strategy.Strategy]string{
	strategy.StrategyContinue:         "Continue with your current approach, it's working.",
	strategy.StrategyTryDifferent:     "Try a different explanation style or analogy.",
	strategy.StrategyScaffold:         "Break this down into smaller, simpler parts.",
	strategy.StrategyGiveHint:         "Give a more direct hint to guide them.",
	strategy.StrategySummarizeAdvance: "Summarize the key point and prepare to move on.",
}

// buildSystemPrompt assembles the teacher persona, the active tone and
// strategy, and the simulation's parameter surface including its hard
// limits on what must not be mentioned.
func buildSystemPrompt(in Input) string {
	var b strings.Builder

	b.WriteString(`You are a warm, engaging physics teacher named Alex. You're teaching a student through an interactive simulation: `)
	b.WriteString(in.Simulation.Title)
	b.WriteString(".\n\n")

	b.WriteString(`YOUR PERSONALITY:
- Warm, patient, and genuinely interested in helping students learn
- Uses analogies and real-world examples
- Celebrates small wins and acknowledges effort
- Never makes students feel bad for wrong answers
- Asks thought-provoking questions rather than just telling

`)

	fmt.Fprintf(&b, "YOUR TEACHING TONE: %s\n- %s\n\n", strings.ToUpper(string(in.Directive.Tone)), toneInstructions[in.Directive.Tone])
	fmt.Fprintf(&b, "CURRENT TEACHING STRATEGY: %s\n- %s\n\n", in.Directive.Strategy, strategyInstructions[in.Directive.Strategy])

	b.WriteString("SIMULATION INFO:\nCurrent parameters: ")
	b.WriteString(formatParams(in.CurrentParams))
	b.WriteString("\n\nAvailable parameters:\n")
	for _, name := range sortedParamNames(in.Simulation) {
		info := in.Simulation.Parameters[name]
		fmt.Fprintf(&b, "- %s: %s (%s)\n", name, info.Range, info.Effect)
	}

	if len(in.Simulation.CannotDemonstrate) > 0 {
		b.WriteString("\nIMPORTANT - DO NOT MENTION THESE (not in this simulation):\n")
		for _, item := range in.Simulation.CannotDemonstrate {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	b.WriteString(`
CRITICAL RULES FOR ASKING QUESTIONS:
1. ALWAYS end with ONE specific, answerable question
2. Give options when asking for predictions: "Will it swing faster or slower?"
3. Be explicit about what you want the student to do: PREDICT, OBSERVE, or EXPLAIN
4. Avoid vague prompts like "what do you think?" without context
5. Keep responses concise (2-3 sentences plus 1 clear question)
6. When suggesting a parameter change, ask for a prediction FIRST
7. Only praise when the student actually gave a correct answer. If they said "I don't know", say "That's okay, let's figure it out together" instead.`)

	return b.String()
}

func formatParams(p catalog.Params) string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%s", name, catalog.FormatValue(p[name]))
	}
	return strings.Join(parts, ", ")
}

func sortedParamNames(sim catalog.Simulation) []string {
	names := make([]string, 0, len(sim.Parameters))
	for name := range sim.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var introTemplate = template.Must(template.New("intro").Parse(`CONCEPT TO TEACH:
Title: {{.Concept.Title}}
Description: {{.Concept.Description}}
Key Insight: {{.Concept.KeyInsight}}
Relevant Parameters: {{.Concept.RelatedParams}}

This is the START of the lesson. The student hasn't said anything yet.

Generate an engaging introduction that:
1. Introduces what we'll explore
2. Connects to something relatable if possible
3. Ends with a thought-provoking question OR asks for a prediction with options`))

var transitionTemplate = template.Must(template.New("transition").Parse(`PREVIOUS CONCEPT (just completed):
Title: {{.PreviousConcept.Title}}
Key Insight: {{.PreviousConcept.KeyInsight}}

NEW CONCEPT TO INTRODUCE:
Title: {{.Concept.Title}}
Key Insight: {{.Concept.KeyInsight}}
Relevant Parameters: {{.Concept.RelatedParams}}

The student just demonstrated understanding of the previous concept. Your job is to:
1. FIRST: Celebrate and SUMMARIZE what they just learned (1-2 sentences confirming the key insight)
2. THEN: Smoothly transition to the new concept
3. End with a question or prediction about the new concept`))

var continueTemplate = template.Must(template.New("continue").Parse(`CONCEPT BEING TAUGHT:
Title: {{.Concept.Title}}
Key Insight: {{.Concept.KeyInsight}}

STUDENT'S UNDERSTANDING LEVEL: {{.Level}}
EXCHANGE NUMBER: {{.Exchange}}
{{if .NeedsDeeper}}
STUDENT GAVE A CORRECT OBSERVATION BUT NO REASONING:
They said WHAT happens correctly, but didn't explain WHY. Your job is to:
1. CELEBRATE their correct observation ("Exactly right!")
2. ASK them WHY they think that happens
3. Give a hint if helpful
This is NOT a correction. They're on the right track, they just need to think deeper.
{{end}}
PARAMETER CHANGE HISTORY:
{{if .ParamHistory}}{{range .ParamHistory}}{{.}}
{{end}}{{else}}No parameter changes yet.
{{end}}
RECENT CONVERSATION:
{{if .RecentHistory}}{{range .RecentHistory}}{{.}}
{{end}}{{else}}No conversation yet.
{{end}}
STUDENT'S LATEST RESPONSE: "{{.Utterance}}"

USE PARAMETER CHANGES TO TEACH:
The simulation is your best teaching tool. If the student is stuck (exchange >= 2 and understanding none or partial), set suggests_param_change=true, pick one of this concept's relevant parameters ({{.Concept.RelatedParams}}), give a reasonable new value within its range, and ask for a PREDICT with options before they look.

Every response MUST end with exactly ONE clear question labeled PREDICT, OBSERVE, or EXPLAIN.`))

// buildUserMessage picks the prompt shape for the turn: a lesson opener,
// a concept transition, or a mid-concept reply.
func buildUserMessage(in Input) (string, error) {
	var tmpl *template.Template
	switch {
	case in.Exchange == 0 && in.PreviousConcept != nil:
		tmpl = transitionTemplate
	case in.Exchange == 0:
		tmpl = introTemplate
	default:
		tmpl = continueTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
