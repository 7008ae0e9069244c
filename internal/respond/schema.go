package respond

import "github.com/adasgupta/simtutor/internal/llm"

// Schema defines the JSON schema for teacher reply responses. Parameter
// values travel as strings so categorical parameters (like object type in
// the shadows simulation) fit the same field as numeric ones.
var Schema = &llm.Schema{
	Name:        "teacher-reply",
	Description: "The teacher's next message, optionally with a simulation parameter change",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"teacher_message": map[string]any{
				"type":        "string",
				"description": "The reply, ending with one clear PREDICT, OBSERVE, or EXPLAIN question",
			},
			"suggests_param_change": map[string]any{
				"type":        "boolean",
				"description": "Whether a simulation parameter should change this turn",
			},
			"param_to_change": map[string]any{
				"type":        []any{"string", "null"},
				"description": "Parameter name from the simulation, or null",
			},
			"new_value": map[string]any{
				"type":        []any{"string", "null"},
				"description": "New parameter value formatted as a string, or null",
			},
			"change_reason": map[string]any{
				"type":        "string",
				"description": "Why this change helps learning",
			},
			"prediction_question": map[string]any{
				"type":        "string",
				"description": "The prediction the student is asked to make before observing, if a change is suggested",
			},
		},
		"required":             []any{"teacher_message", "suggests_param_change"},
		"additionalProperties": false,
	},
}
