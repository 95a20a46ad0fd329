package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bibabu12315/word-ppt/internal/config"
	"github.com/bibabu12315/word-ppt/internal/document"
	"github.com/bibabu12315/word-ppt/internal/llm"
)

func TestSetVersion(t *testing.T) {
	oldVersion := version
	defer func() { version = oldVersion }()

	SetVersion("1.2.3")
	if version != "1.2.3" {
		t.Errorf("expected version '1.2.3', got '%s'", version)
	}
}

func TestRootCommand(t *testing.T) {
	// Test that root command exists and has expected properties
	if rootCmd.Use != "word-ppt" {
		t.Errorf("expected Use 'word-ppt', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestVersionCommand(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("expected Use 'version', got '%s'", versionCmd.Use)
	}

	if versionCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestProvidersCommand(t *testing.T) {
	if providersCmd.Use != "providers" {
		t.Errorf("expected Use 'providers', got '%s'", providersCmd.Use)
	}

	if providersCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestCheckProviderStatus(t *testing.T) {
	tests := []struct {
		name     string
		provider providerInfo
		envKey   string
		envValue string
		expected string
	}{
		{
			name: "qwen with key",
			provider: providerInfo{
				Name:   "qwen",
				EnvKey: "DASHSCOPE_API_KEY",
			},
			envKey:   "DASHSCOPE_API_KEY",
			envValue: "test-key",
			expected: "✓ configured",
		},
		{
			name: "anthropic with key",
			provider: providerInfo{
				Name:   "anthropic",
				EnvKey: "ANTHROPIC_API_KEY",
			},
			envKey:   "ANTHROPIC_API_KEY",
			envValue: "test-key",
			expected: "✓ configured",
		},
		{
			name: "openai without key",
			provider: providerInfo{
				Name:   "openai",
				EnvKey: "OPENAI_API_KEY",
			},
			envKey:   "OPENAI_API_KEY",
			envValue: "",
			expected: "✗ not set",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envKey != "" {
				oldVal := os.Getenv(tc.envKey)
				os.Setenv(tc.envKey, tc.envValue)
				defer os.Setenv(tc.envKey, oldVal)
			}

			result := checkProviderStatus(tc.provider)
			if result != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestConvertCommandFlags(t *testing.T) {
	if convertCmd.Use != "convert [file]" {
		t.Errorf("expected Use 'convert [file]', got '%s'", convertCmd.Use)
	}

	// Check flags exist
	flags := []string{"template", "output", "llm", "provider", "model", "keep-markdown", "max-chapters", "verbose", "quiet"}
	for _, flag := range flags {
		if convertCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag '%s' to exist", flag)
		}
	}
}

func TestMarkdownCommandFlags(t *testing.T) {
	if markdownCmd.Use != "markdown [file]" {
		t.Errorf("expected Use 'markdown [file]', got '%s'", markdownCmd.Use)
	}

	flags := []string{"output", "llm", "provider", "model"}
	for _, flag := range flags {
		if markdownCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag '%s' to exist", flag)
		}
	}
}

func TestGenerateCommandFlags(t *testing.T) {
	if generateCmd.Use != "generate [file]" {
		t.Errorf("expected Use 'generate [file]', got '%s'", generateCmd.Use)
	}

	flags := []string{"template", "output", "max-chapters"}
	for _, flag := range flags {
		if generateCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag '%s' to exist", flag)
		}
	}
}

func TestExtractCommandFlags(t *testing.T) {
	if extractCmd.Use != "extract [file]" {
		t.Errorf("expected Use 'extract [file]', got '%s'", extractCmd.Use)
	}

	flags := []string{"output", "format", "pretty"}
	for _, flag := range flags {
		if extractCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag '%s' to exist", flag)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	if configCmd.Use != "config" {
		t.Errorf("expected Use 'config', got '%s'", configCmd.Use)
	}

	// Check subcommands exist
	subcommands := []string{"show", "init", "set", "path"}
	for _, name := range subcommands {
		found := false
		for _, cmd := range configCmd.Commands() {
			if cmd.Use == name || cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand '%s' to exist", name)
		}
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"short", "****"},
		{"12345678", "****"},
		{"sk-abcd1234efgh5678", "sk-a****5678"},
		{"AIzaSyD1234567890abcdefghijklmnop", "AIza****mnop"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			result := maskAPIKey(tc.input)
			if result != tc.expected {
				t.Errorf("maskAPIKey(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestContains(t *testing.T) {
	slice := []string{"a", "b", "c"}

	if !contains(slice, "a") {
		t.Error("expected contains(slice, 'a') to be true")
	}

	if !contains(slice, "c") {
		t.Error("expected contains(slice, 'c') to be true")
	}

	if contains(slice, "d") {
		t.Error("expected contains(slice, 'd') to be false")
	}

	if contains([]string{}, "a") {
		t.Error("expected contains(empty, 'a') to be false")
	}
}

func TestDetectProviderFromModel(t *testing.T) {
	tests := []struct {
		model    string
		expected string
	}{
		// Empty model defaults to qwen
		{"", "qwen"},

		// Anthropic models
		{"claude-3-opus", "anthropic"},
		{"claude-sonnet-4-20250514", "anthropic"},
		{"Claude-3-Haiku", "anthropic"},

		// OpenAI models
		{"gpt-4o", "openai"},
		{"gpt-4o-mini", "openai"},
		{"GPT-4-turbo", "openai"},
		{"o1-preview", "openai"},
		{"o1-mini", "openai"},
		{"o3-mini", "openai"},

		// Google Gemini models
		{"gemini-1.5-flash", "gemini"},
		{"gemini-2.0-flash", "gemini"},
		{"Gemini-2.0-flash", "gemini"},

		// Everything else routes to the default provider
		{"qwen-plus", "qwen"},
		{"qwen-max", "qwen"},
		{"custom-model", "qwen"},
	}

	for _, tc := range tests {
		t.Run(tc.model, func(t *testing.T) {
			result := detectProviderFromModel(tc.model)
			if result != tc.expected {
				t.Errorf("detectProviderFromModel(%q) = %q, want %q", tc.model, result, tc.expected)
			}
		})
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		path     string
		newExt   string
		expected string
	}{
		{"report.docx", ".pptx", "report.pptx"},
		{"dir/report.docx", ".md", "dir/report.md"},
		{"noext", ".pptx", "noext.pptx"},
		{"a.b.docx", ".pptx", "a.b.pptx"},
	}

	for _, tc := range tests {
		if got := replaceExt(tc.path, tc.newExt); got != tc.expected {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", tc.path, tc.newExt, got, tc.expected)
		}
	}
}

func TestParseWordDocument_Errors(t *testing.T) {
	if _, err := parseWordDocument("does-not-exist.docx"); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	legacy := filepath.Join(dir, "old.doc")
	if err := os.WriteFile(legacy, []byte{0xD0, 0xCF, 0x11, 0xE0}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := parseWordDocument(legacy); err == nil {
		t.Error("expected error for legacy .doc file")
	}

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := parseWordDocument(other); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestDocumentText(t *testing.T) {
	doc := document.New("test.docx")
	doc.Meta.Title = "Report"
	sec := doc.StartSection(1, "Chapter One")
	sec.AddParagraph("Intro paragraph")
	sec.AddListItem("first")
	sec.AddListItem("second")
	doc.Trim()

	out := documentText(doc)
	for _, want := range []string{"Title: Report", "[1] Chapter One", "Intro paragraph", "- first", "- second"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestNewProvider_ResolvesThroughRegistry(t *testing.T) {
	os.Unsetenv("WORDPPT_PROVIDER")
	os.Unsetenv("WORDPPT_MODEL")
	cfg := config.DefaultConfig()

	p, err := newProvider(cfg, "qwen", "")
	if err != nil {
		t.Fatalf("failed to build qwen provider: %v", err)
	}
	if p.Name() != "qwen" {
		t.Errorf("expected provider 'qwen', got %q", p.Name())
	}

	// Provider inferred from the model name when no name is given.
	p, err = newProvider(cfg, "", "claude-sonnet-4-20250514")
	if err != nil {
		t.Fatalf("failed to build provider from model: %v", err)
	}
	if p.Name() != "anthropic" {
		t.Errorf("expected provider 'anthropic', got %q", p.Name())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	os.Unsetenv("WORDPPT_PROVIDER")
	os.Unsetenv("WORDPPT_MODEL")

	_, err := newProvider(config.DefaultConfig(), "nope", "")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown provider") || !strings.Contains(err.Error(), "qwen") {
		t.Errorf("expected the error to list registered providers, got %v", err)
	}
}

func TestRegisteredProviders(t *testing.T) {
	for _, name := range []string{"qwen", "openai", "anthropic", "gemini"} {
		if !llm.DefaultRegistry.Has(name) {
			t.Errorf("expected provider %q registered at startup", name)
		}
	}
}
