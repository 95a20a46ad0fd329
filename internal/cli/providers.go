package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type providerInfo struct {
	Name         string
	DefaultModel string
	EnvKey       string
	Description  string
}

var providers = []providerInfo{
	{
		Name:         "qwen",
		DefaultModel: "qwen-plus",
		EnvKey:       "DASHSCOPE_API_KEY",
		Description:  "Alibaba DashScope (OpenAI-compatible)",
	},
	{
		Name:         "openai",
		DefaultModel: "gpt-4o-mini",
		EnvKey:       "OPENAI_API_KEY",
		Description:  "OpenAI GPT API",
	},
	{
		Name:         "anthropic",
		DefaultModel: "claude-sonnet-4-20250514",
		EnvKey:       "ANTHROPIC_API_KEY",
		Description:  "Anthropic Claude API",
	},
	{
		Name:         "gemini",
		DefaultModel: "gemini-2.0-flash",
		EnvKey:       "GOOGLE_API_KEY",
		Description:  "Google Gemini API",
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available LLM providers",
	Long: `List the LLM providers available for the restructuring stage.

Each provider requires its API key in the corresponding environment
variable, or in the providers section of the config file.

Examples:
  word-ppt convert report.docx --llm --provider qwen
  word-ppt convert report.docx --llm --provider openai --model gpt-4o`,
	Run: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "PROVIDER\tDEFAULT MODEL\tENV VAR\tSTATUS\tDESCRIPTION")
	fmt.Fprintln(w, "--------\t-------------\t-------\t------\t-----------")

	for _, p := range providers {
		status := checkProviderStatus(p)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.DefaultModel, p.EnvKey, status, p.Description)
	}
}

func checkProviderStatus(p providerInfo) string {
	if os.Getenv(p.EnvKey) != "" {
		return "✓ configured"
	}
	return "✗ not set"
}
