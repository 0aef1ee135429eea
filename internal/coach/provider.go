// Package coach reviews completed worksheets with an LLM and returns
// structured feedback a founder can act on.
package coach

import (
	"context"
	"encoding/json"
)

// Provider abstracts the LLM backend. Consumers send a Request and get
// structured JSON back.
type Provider interface {
	// Generate sends a prompt and returns a structured response. When
	// the request carries a Schema the provider uses its native
	// structured-output mechanism and the Content is validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Worksheet review is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform
	// to. When nil the Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON structure the model must produce.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "worksheet-review".
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema
	// was requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
