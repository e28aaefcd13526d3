package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of the service talks to
// for text generation. Implementations wrap one vendor SDK each.
type Provider interface {
	// Generate runs one completion. With a Schema set on the request the
	// reply is validated JSON conforming to it; without one the reply is
	// the raw text bytes.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Messages is the conversation so far. Session turns here are
	// single-shot, so this usually holds one user message.
	Messages []Message

	// Schema, when set, selects the provider's native structured-output
	// mechanism and the reply is validated against it before return.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one entry of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the speaker of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON shape the model must produce.
type Schema struct {
	// Name identifies the schema; it doubles as the tool name for
	// Anthropic and the schema name for OpenAI. Kebab-case, e.g.
	// "study-question".
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the outcome of one Generate call.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// raw text bytes otherwise.
	Content json.RawMessage

	// Usage reports token counts for the call.
	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the one configured.
	Model string

	// StopReason is normalized across vendors to "end", "max_tokens",
	// or "error".
	StopReason string
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
