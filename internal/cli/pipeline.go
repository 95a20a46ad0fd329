package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bibabu12315/word-ppt/internal/document"
	"github.com/bibabu12315/word-ppt/internal/parser"
	"github.com/bibabu12315/word-ppt/internal/parser/docx"
	"github.com/bibabu12315/word-ppt/internal/pptx"
)

// parseWordDocument detects the input format and parses it into the
// intermediate document representation.
func parseWordDocument(path string) (*document.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file not found: %s", path)
	}

	switch parser.DetectFormat(path) {
	case parser.FormatDocx:
		p, err := docx.New(path, parser.DefaultOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer p.Close()
		return p.Parse()
	case parser.FormatDoc:
		return nil, fmt.Errorf("legacy .doc format is not supported, convert to .docx first: %s", path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s (expected .docx)", path)
	}
}

// ensureTemplate returns the template path to use, creating the built-in demo
// template when no template exists at the given path.
func ensureTemplate(path string, errOut io.Writer, quiet bool) (string, error) {
	if path == "" {
		path = "template.pptx"
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if !quiet {
		fmt.Fprintf(errOut, "Template not found, creating demo template: %s\n", path)
	}
	if err := pptx.CreateDemoTemplate(path); err != nil {
		return "", fmt.Errorf("failed to create demo template: %w", err)
	}
	return path, nil
}

// replaceExt swaps the extension of path for newExt (including the dot).
func replaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}
