package extract

import "github.com/adasgupta/simtutor/internal/llm"

// Schema defines the JSON schema for concept extraction responses.
var Schema = &llm.Schema{
	Name:        "concept-extraction",
	Description: "Teachable concepts extracted from a simulation topic description",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concepts": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 4,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "integer"},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"key_insight": map[string]any{"type": "string"},
						"related_params": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"id", "title", "description", "key_insight", "related_params"},
				},
			},
		},
		"required":             []any{"concepts"},
		"additionalProperties": false,
	},
}
