// Package gemini implements the LLM provider for the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/bibabu12315/word-ppt/internal/llm"
)

// Provider calls the Gemini generateContent API.
type Provider struct {
	apiKey string
	model  string
}

// Config configures a Provider.
type Config struct {
	APIKey string
	Model  string
}

// New creates the "gemini" provider.
func New(cfg Config) *Provider {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	return &Provider{apiKey: cfg.APIKey, model: cfg.Model}
}

// Name implements llm.Provider.
func (p *Provider) Name() string { return "gemini" }

// Validate implements llm.Provider.
func (p *Provider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("gemini: API key not configured")
	}
	return nil
}

// Restructure implements llm.Provider.
func (p *Provider) Restructure(ctx context.Context, text string, opts llm.Options) (*llm.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: client init failed: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(text), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(opts.Temperature)),
		MaxOutputTokens: int32(opts.MaxTokens),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: opts.SystemPrompt()}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content failed: %w", err)
	}

	out := resp.Text()
	if out == "" {
		return nil, fmt.Errorf("gemini: empty response")
	}

	result := &llm.Result{Markdown: out, Model: p.model}
	if resp.UsageMetadata != nil {
		result.Usage = llm.TokenUsage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return result, nil
}
