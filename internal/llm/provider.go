// Package llm provides the provider interface and registry for the optional
// LLM restructuring stage.
package llm

import "context"

// Provider is the interface that all LLM providers must implement.
type Provider interface {
	// Name returns the provider identifier (e.g., "openai", "qwen").
	Name() string

	// Restructure takes flattened document text and returns deck markdown.
	Restructure(ctx context.Context, text string, opts Options) (*Result, error)

	// Validate checks if the provider is properly configured.
	Validate() error
}

// Options contains options for a restructuring call.
type Options struct {
	Language    string  `json:"language,omitempty"`    // output language (e.g., "zh", "en")
	MaxTokens   int     `json:"max_tokens,omitempty"`  // maximum tokens for the response
	Temperature float64 `json:"temperature,omitempty"` // creativity level (0.0 - 1.0)
	Prompt      string  `json:"prompt,omitempty"`      // custom system prompt
}

// Result contains the result of a restructuring call.
type Result struct {
	Markdown string     `json:"markdown"`
	Usage    TokenUsage `json:"usage"`
	Model    string     `json:"model"`
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// DefaultOptions returns the default restructuring options.
func DefaultOptions() Options {
	return Options{
		Language:    "zh",
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// SystemPrompt returns the system prompt for a call, falling back to the
// built-in deck-restructuring prompt.
func (o Options) SystemPrompt() string {
	if o.Prompt != "" {
		return o.Prompt
	}
	return DefaultSystemPrompt
}
