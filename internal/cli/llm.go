package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bibabu12315/word-ppt/internal/config"
	"github.com/bibabu12315/word-ppt/internal/document"
	"github.com/bibabu12315/word-ppt/internal/llm"
	"github.com/bibabu12315/word-ppt/internal/llm/anthropic"
	"github.com/bibabu12315/word-ppt/internal/llm/gemini"
	"github.com/bibabu12315/word-ppt/internal/llm/openai"
	"github.com/bibabu12315/word-ppt/internal/markdown"
)

func init() {
	_ = llm.Register("qwen", func(c llm.Credentials) llm.Provider {
		return openai.NewQwen(openai.Config{APIKey: c.APIKey, Model: c.Model, BaseURL: c.Endpoint})
	})
	_ = llm.Register("openai", func(c llm.Credentials) llm.Provider {
		return openai.New(openai.Config{APIKey: c.APIKey, Model: c.Model, BaseURL: c.Endpoint})
	})
	_ = llm.Register("anthropic", func(c llm.Credentials) llm.Provider {
		return anthropic.New(anthropic.Config{APIKey: c.APIKey, Model: c.Model})
	})
	_ = llm.Register("gemini", func(c llm.Credentials) llm.Provider {
		return gemini.New(gemini.Config{APIKey: c.APIKey, Model: c.Model})
	})
}

// loadConfig loads the user config, falling back to defaults when the config
// file is missing or unreadable.
func loadConfig() *config.Config {
	loader, err := config.NewLoader()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := loader.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// newProvider resolves the provider name and credentials, then builds the
// provider through the registry. Precedence for each value: flag >
// environment > config file.
func newProvider(cfg *config.Config, name, model string) (llm.Provider, error) {
	if name == "" {
		name = config.GetEnvOrDefault("WORDPPT_PROVIDER", "")
	}
	if model == "" {
		model = config.GetEnvOrDefault("WORDPPT_MODEL", "")
	}
	if name == "" && model != "" {
		name = detectProviderFromModel(model)
	}
	if name == "" {
		name = cfg.DefaultProvider
	}

	creds := llm.Credentials{}
	if pc, ok := cfg.GetProvider(name); ok {
		creds.APIKey = pc.APIKey
		creds.Endpoint = pc.Endpoint
		if model == "" {
			model = pc.Model
		}
	}
	creds.Model = model

	return llm.New(name, creds)
}

// activeProvider returns a validated provider ready for requests.
func activeProvider(cfg *config.Config, name, model string) (llm.Provider, error) {
	p, err := newProvider(cfg, name, model)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// restructureDocument sends the flattened document to the LLM and returns the
// deck markdown. The caller falls back to rule-based rendering on error.
func restructureDocument(ctx context.Context, doc *document.Document, providerName, model string, errOut io.Writer, quiet bool) (string, error) {
	cfg := loadConfig()
	p, err := activeProvider(cfg, providerName, model)
	if err != nil {
		return "", err
	}

	opts := llm.DefaultOptions()
	if cfg.Restructure.Temperature > 0 {
		opts.Temperature = cfg.Restructure.Temperature
	}
	if cfg.Restructure.Language != "" {
		opts.Language = cfg.Restructure.Language
	}
	if pc, ok := cfg.GetProvider(p.Name()); ok && pc.MaxTokens > 0 {
		opts.MaxTokens = pc.MaxTokens
	}

	result, err := p.Restructure(ctx, markdown.Flatten(doc), opts)
	if err != nil {
		return "", fmt.Errorf("restructure with %s: %w", p.Name(), err)
	}
	if !quiet {
		fmt.Fprintf(errOut, "Restructured with %s (%s): %d input / %d output tokens\n",
			p.Name(), result.Model, result.Usage.InputTokens, result.Usage.OutputTokens)
	}
	return result.Markdown, nil
}
