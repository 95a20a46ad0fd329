package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bibabu12315/word-ppt/internal/markdown"
	"github.com/bibabu12315/word-ppt/internal/pptx"
)

var (
	generateTemplate    string
	generateOutput      string
	generateMaxChapters int
	generateQuiet       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a PowerPoint deck from deck markdown",
	Long: `Generate fills the template from an existing deck markdown file,
skipping the Word parsing and LLM stages. Useful after hand-editing the
markdown produced by the markdown command.

Examples:
  word-ppt generate deck.md
  word-ppt generate deck.md -o slides.pptx --template input/template.pptx`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "template .pptx path (default \"template.pptx\")")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output .pptx path (default input name with .pptx)")
	generateCmd.Flags().IntVar(&generateMaxChapters, "max-chapters", 0, "maximum number of content chapters (default 8)")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]
	errOut := cmd.ErrOrStderr()

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read markdown: %w", err)
	}

	warn := func(format string, args ...interface{}) {
		if !generateQuiet {
			fmt.Fprintf(errOut, "warning: "+format+"\n", args...)
		}
	}
	data := markdown.ParseWithWarnings(strings.Split(string(raw), "\n"), warn)

	output := generateOutput
	if output == "" {
		output = replaceExt(input, ".pptx")
	}

	template, err := ensureTemplate(generateTemplate, errOut, generateQuiet)
	if err != nil {
		return err
	}

	gen := pptx.NewGenerator(template, output)
	if generateMaxChapters > 0 {
		gen.MaxChapters = generateMaxChapters
	}
	gen.Warnf = warn
	if err := gen.Generate(data); err != nil {
		return fmt.Errorf("failed to generate presentation: %w", err)
	}

	if !generateQuiet {
		fmt.Fprintf(errOut, "Generated %s (%d chapters)\n", output, len(data.Slides))
	}
	return nil
}
