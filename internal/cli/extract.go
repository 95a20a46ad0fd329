package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bibabu12315/word-ppt/internal/document"
)

var (
	extractOutput string
	extractFormat string
	extractPretty bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the structured content of a Word document",
	Long: `Extract parses the document and prints its intermediate
representation without building a deck. Useful for inspecting what the
parser saw before blaming the layout engine.

Examples:
  word-ppt extract report.docx
  word-ppt extract report.docx --format json --pretty
  word-ppt extract report.docx --format text -o report.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output path (default stdout)")
	extractCmd.Flags().StringVar(&extractFormat, "format", "json", "output format (json, text)")
	extractCmd.Flags().BoolVar(&extractPretty, "pretty", false, "indent JSON output")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	doc, err := parseWordDocument(args[0])
	if err != nil {
		return err
	}

	var out string
	switch extractFormat {
	case "json":
		var b []byte
		if extractPretty {
			b, err = json.MarshalIndent(doc, "", "  ")
		} else {
			b, err = json.Marshal(doc)
		}
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		out = string(b) + "\n"
	case "text":
		out = documentText(doc)
	default:
		return fmt.Errorf("unknown format: %s (supported: json, text)", extractFormat)
	}

	if extractOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(extractOutput, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// documentText renders the intermediate representation as indented plain text.
func documentText(doc *document.Document) string {
	var sb strings.Builder
	if doc.Meta.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", doc.Meta.Title)
	}
	if doc.Meta.Author != "" {
		fmt.Fprintf(&sb, "Author: %s\n", doc.Meta.Author)
	}
	for _, sec := range doc.Sections {
		fmt.Fprintf(&sb, "%s[%d] %s\n", strings.Repeat("  ", sec.Level), sec.Level, sec.Title)
		indent := strings.Repeat("  ", sec.Level+1)
		for _, b := range sec.Blocks {
			switch b.Type {
			case document.BlockTypeList:
				for _, item := range b.Items {
					fmt.Fprintf(&sb, "%s- %s\n", indent, item)
				}
			default:
				fmt.Fprintf(&sb, "%s%s\n", indent, b.Text)
			}
		}
	}
	return sb.String()
}
