package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the tutoring pipeline talks to.
// Classification, response generation, and concept extraction all go
// through Generate with a schema describing the JSON they expect back.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the returned Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the LLM's role and constraints.
	System string

	// Messages is the conversation to send. Single-turn generation,
	// the common case here, uses one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil,
	// Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is a single turn in the conversation sent to the LLM.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "understanding-level".
	Name string

	// Description tells the LLM what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. With a Schema in the request this
	// is the validated JSON object, otherwise raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
