// Package parser provides interfaces and format detection for document
// parsers.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bibabu12315/word-ppt/internal/document"
)

// Parser is the interface for document parsers.
type Parser interface {
	// Parse reads the document and returns its intermediate representation.
	Parse() (*document.Document, error)

	// Close releases any resources held by the parser.
	Close() error
}

// Format represents an input document format.
type Format int

const (
	FormatUnknown Format = iota
	FormatDocx
	FormatDoc // legacy binary .doc (OLE container), detected but unsupported
	FormatMarkdown
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatDoc:
		return "doc"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDocx
	case ".doc":
		return FormatDoc
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// DetectFormatFromReader detects the format by reading magic bytes.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, 8)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < 4 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}

	// ZIP magic number (OPC container, .docx)
	if buf[0] == 'P' && buf[1] == 'K' {
		return FormatDocx, nil
	}

	// OLE/CFBF magic number (legacy .doc)
	if buf[0] == 0xD0 && buf[1] == 0xCF && buf[2] == 0x11 && buf[3] == 0xE0 {
		return FormatDoc, nil
	}

	return FormatUnknown, nil
}

// Options contains parser configuration options.
type Options struct {
	// SourceName overrides the source recorded in document metadata.
	// Defaults to the base name of the input path.
	SourceName string
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{}
}
