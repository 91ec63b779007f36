package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction every pipeline step uses to talk to a
// language model. Summarization, keypoint extraction, Q&A, quiz generation
// and feedback all go through Generate.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation. Pipeline calls are single-turn, so this
	// usually holds one user message.
	Messages []Message

	// Schema, when set, instructs the provider to return JSON conforming to
	// it. When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64

	// NoCache bypasses response memoization for this call. Quiz generation
	// and wrong-answer feedback set it so repeated invocations can vary;
	// summaries, keypoints and Q&A leave it false.
	NoCache bool
}

// Message is a single message in the conversation.
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
	// Name identifies this schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "study-quiz".
	Name string

	// Description tells the LLM what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. With a Schema this is the validated
	// JSON object; without one it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request. Zero for responses
	// served from the memoization cache.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string

	// Cached is true when the response was served from the memoization
	// cache without a provider call.
	Cached bool
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string, for free-text calls
// where Content is not JSON.
func (r *Response) Text() string {
	return string(r.Content)
}
