// Package anthropic implements the LLM provider for the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bibabu12315/word-ppt/internal/llm"
)

// Provider calls the Anthropic Messages API.
type Provider struct {
	apiKey string
	model  string
	client sdk.Client
}

// Config configures a Provider.
type Config struct {
	APIKey string
	Model  string
}

// New creates the "anthropic" provider.
func New(cfg Config) *Provider {
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	return &Provider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		client: sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
	}
}

// Name implements llm.Provider.
func (p *Provider) Name() string { return "anthropic" }

// Validate implements llm.Provider.
func (p *Provider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("anthropic: API key not configured")
	}
	return nil
}

// Restructure implements llm.Provider.
func (p *Provider) Restructure(ctx context.Context, text string, opts llm.Options) (*llm.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(p.model),
		MaxTokens:   int64(opts.MaxTokens),
		Temperature: sdk.Float(opts.Temperature),
		System: []sdk.TextBlockParam{
			{Text: opts.SystemPrompt()},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(text)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic: message request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("anthropic: empty response")
	}

	return &llm.Result{
		Markdown: sb.String(),
		Model:    string(msg.Model),
		Usage: llm.TokenUsage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}
