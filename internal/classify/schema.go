package classify

import "github.com/adasgupta/simtutor/internal/llm"

// Schema defines the JSON schema for understanding classification responses.
var Schema = &llm.Schema{
	Name:        "understanding-assessment",
	Description: "Assessment of a learner utterance against the concept being taught",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{
				"type":        "string",
				"enum":        []any{"none", "partial", "mostly", "complete"},
				"description": "The learner's demonstrated understanding level",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One-sentence justification for the level",
			},
			"factually_wrong": map[string]any{
				"type":        "boolean",
				"description": "Whether the utterance asserts something physically incorrect",
			},
			"observation_without_reasoning": map[string]any{
				"type":        "boolean",
				"description": "True when a correct observation was stated with no explanation of why",
			},
		},
		"required":             []any{"level", "reasoning", "factually_wrong", "observation_without_reasoning"},
		"additionalProperties": false,
	},
}
