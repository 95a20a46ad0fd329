package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bibabu12315/word-ppt/internal/config"
	"github.com/bibabu12315/word-ppt/internal/document"
	"github.com/bibabu12315/word-ppt/internal/markdown"
	"github.com/bibabu12315/word-ppt/internal/pptx"
)

var (
	convertTemplate     string
	convertOutput       string
	convertLLM          bool
	convertProvider     string
	convertModel        string
	convertKeepMarkdown bool
	convertMaxChapters  int
	convertVerbose      bool
	convertQuiet        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a Word document to a PowerPoint deck",
	Long: `Convert runs the full pipeline: parse the .docx, build deck markdown
(optionally restructured by an LLM), and fill the template into a .pptx.

When the template file does not exist, a built-in demo template is
created at the template path first.

Examples:
  word-ppt convert report.docx
  word-ppt convert report.docx -o slides.pptx --template input/template.pptx
  word-ppt convert report.docx --llm --provider anthropic
  word-ppt convert report.docx --llm --keep-markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTemplate, "template", "", "template .pptx path (default \"template.pptx\")")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output .pptx path (default input name with .pptx)")
	convertCmd.Flags().BoolVar(&convertLLM, "llm", false, "restructure content with an LLM")
	convertCmd.Flags().StringVar(&convertProvider, "provider", "", "LLM provider (qwen, openai, anthropic, gemini)")
	convertCmd.Flags().StringVar(&convertModel, "model", "", "LLM model name")
	convertCmd.Flags().BoolVar(&convertKeepMarkdown, "keep-markdown", false, "also write the intermediate deck markdown")
	convertCmd.Flags().IntVar(&convertMaxChapters, "max-chapters", 0, "maximum number of content chapters (default 8)")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "verbose output")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	errOut := cmd.ErrOrStderr()

	doc, err := parseWordDocument(input)
	if err != nil {
		return err
	}
	if convertVerbose && !convertQuiet {
		fmt.Fprintf(errOut, "Parsed %s: %d sections\n", input, len(doc.Sections))
	}

	md := buildDeckMarkdown(cmd, doc, convertLLM, convertProvider, convertModel, convertQuiet)

	output := convertOutput
	if output == "" {
		output = replaceExt(input, ".pptx")
	}

	if convertKeepMarkdown {
		mdPath := replaceExt(output, ".md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write markdown: %w", err)
		}
		if !convertQuiet {
			fmt.Fprintf(errOut, "Markdown written to %s\n", mdPath)
		}
	}

	template, err := ensureTemplate(convertTemplate, errOut, convertQuiet)
	if err != nil {
		return err
	}

	warn := func(format string, args ...interface{}) {
		if !convertQuiet {
			fmt.Fprintf(errOut, "warning: "+format+"\n", args...)
		}
	}
	data := markdown.ParseWithWarnings(strings.Split(md, "\n"), warn)
	gen := pptx.NewGenerator(template, output)
	if convertMaxChapters > 0 {
		gen.MaxChapters = convertMaxChapters
	}
	gen.Warnf = warn
	if err := gen.Generate(data); err != nil {
		return fmt.Errorf("failed to generate presentation: %w", err)
	}

	if !convertQuiet {
		fmt.Fprintf(errOut, "Generated %s (%d chapters)\n", output, len(data.Slides))
	}
	return nil
}

// buildDeckMarkdown renders deck markdown from the document, going through
// the LLM when requested and falling back to rule-based rendering on failure.
func buildDeckMarkdown(cmd *cobra.Command, doc *document.Document, useLLM bool, provider, model string, quiet bool) string {
	errOut := cmd.ErrOrStderr()
	if useLLM || config.GetEnvBool("WORDPPT_LLM") {
		md, err := restructureDocument(cmd.Context(), doc, provider, model, errOut, quiet)
		if err == nil {
			return md
		}
		fmt.Fprintf(errOut, "warning: LLM restructuring failed, using rule-based conversion: %v\n", err)
	}
	return markdown.Render(doc)
}
