package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	markdownOutput   string
	markdownLLM      bool
	markdownProvider string
	markdownModel    string
	markdownQuiet    bool
)

var markdownCmd = &cobra.Command{
	Use:   "markdown [file]",
	Short: "Convert a Word document to deck markdown",
	Long: `Markdown runs the pipeline up to the deck markdown stage and stops,
printing the result to stdout or writing it to a file.

Examples:
  word-ppt markdown report.docx
  word-ppt markdown report.docx -o deck.md
  word-ppt markdown report.docx --llm --provider qwen -o deck.md`,
	Args: cobra.ExactArgs(1),
	RunE: runMarkdown,
}

func init() {
	markdownCmd.Flags().StringVarP(&markdownOutput, "output", "o", "", "output .md path (default stdout)")
	markdownCmd.Flags().BoolVar(&markdownLLM, "llm", false, "restructure content with an LLM")
	markdownCmd.Flags().StringVar(&markdownProvider, "provider", "", "LLM provider (qwen, openai, anthropic, gemini)")
	markdownCmd.Flags().StringVar(&markdownModel, "model", "", "LLM model name")
	markdownCmd.Flags().BoolVarP(&markdownQuiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(markdownCmd)
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	doc, err := parseWordDocument(args[0])
	if err != nil {
		return err
	}

	md := buildDeckMarkdown(cmd, doc, markdownLLM, markdownProvider, markdownModel, markdownQuiet)

	if markdownOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	if err := os.WriteFile(markdownOutput, []byte(md), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !markdownQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Markdown written to %s\n", markdownOutput)
	}
	return nil
}
