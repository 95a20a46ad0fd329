// Package cli implements the word-ppt command line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "word-ppt",
	Short: "Convert Word documents into templated PowerPoint decks",
	Long: `word-ppt converts a Word document into a PowerPoint deck by filling a
recognized template: .docx -> structured document -> deck markdown
(optionally restructured by an LLM) -> .pptx.

The template carries four slides (cover, table of contents, content
prototype, end page) whose fillable shapes follow the page{N}_* naming
convention visible in PowerPoint's selection pane.

Environment variables:
  WORDPPT_LLM=true       enable LLM restructuring
  WORDPPT_PROVIDER=xxx   LLM provider (qwen, openai, anthropic, gemini)
  WORDPPT_MODEL=xxx      model name

Examples:
  word-ppt convert report.docx
  word-ppt convert report.docx --llm --provider qwen
  word-ppt markdown report.docx -o deck.md
  word-ppt generate deck.md --template input/template.pptx`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "word-ppt %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. A .env file in the working directory is
// loaded first so API keys can live next to the project.
func Execute() error {
	_ = godotenv.Load()
	return rootCmd.Execute()
}

// detectProviderFromModel guesses the provider from a model name prefix.
func detectProviderFromModel(model string) string {
	m := strings.ToLower(model)
	switch {
	case m == "":
		return "qwen"
	case strings.HasPrefix(m, "claude"):
		return "anthropic"
	case strings.HasPrefix(m, "gpt"), strings.HasPrefix(m, "o1"), strings.HasPrefix(m, "o3"):
		return "openai"
	case strings.HasPrefix(m, "gemini"):
		return "gemini"
	default:
		return "qwen"
	}
}
