// Package openai implements the LLM provider for OpenAI-compatible chat
// completion APIs. DashScope's compatible mode (Qwen) uses the same wire
// format, so the qwen provider is this client pointed at a different
// endpoint.
package openai

import (
	"context"
	"fmt"
	"os"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/bibabu12315/word-ppt/internal/llm"
)

// DashScopeBaseURL is the OpenAI-compatible endpoint of Alibaba DashScope.
const DashScopeBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// Provider calls an OpenAI-compatible chat completion endpoint.
type Provider struct {
	name    string
	apiKey  string
	model   string
	baseURL string
	client  *goopenai.Client
}

// Config configures a Provider.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the official OpenAI endpoint
}

// New creates the "openai" provider.
func New(cfg Config) *Provider {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return newProvider("openai", cfg)
}

// NewQwen creates the "qwen" provider against DashScope's compatible mode.
func NewQwen(cfg Config) *Provider {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DASHSCOPE_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "qwen-plus"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DashScopeBaseURL
	}
	return newProvider("qwen", cfg)
}

func newProvider(name string, cfg Config) *Provider {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Provider{
		name:    name,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  goopenai.NewClientWithConfig(clientCfg),
	}
}

// Name implements llm.Provider.
func (p *Provider) Name() string { return p.name }

// Validate implements llm.Provider.
func (p *Provider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("%s: API key not configured", p.name)
	}
	if p.model == "" {
		return fmt.Errorf("%s: model not configured", p.name)
	}
	return nil
}

// Restructure implements llm.Provider.
func (p *Provider) Restructure(ctx context.Context, text string, opts llm.Options) (*llm.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: opts.SystemPrompt()},
			{Role: goopenai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: chat completion failed: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: empty response", p.name)
	}

	return &llm.Result{
		Markdown: resp.Choices[0].Message.Content,
		Model:    resp.Model,
		Usage: llm.TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
