// Package llm abstracts over hosted language model APIs for question
// authoring. Callers talk to a single Provider interface; concrete
// adapters exist for Anthropic, OpenAI (and OpenAI-compatible gateways
// like OpenRouter) and Gemini, plus a deterministic mock for tests.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends prompts to a language model and returns structured JSON.
type Provider interface {
	// Generate performs a single request. When the request carries a
	// Schema, the provider uses its native structured output mechanism
	// and the response Content is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Question authoring is single turn,
	// so this usually holds one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must satisfy.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape expected from the model.
type Schema struct {
	// Name identifies the schema to the provider, kebab-case, e.g.
	// "question-batch".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
