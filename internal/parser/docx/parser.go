// Package docx provides a parser for Word (.docx) documents. Parsing is
// rule-based: the document structure is derived purely from paragraph style
// names, no content heuristics.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bibabu12315/word-ppt/internal/document"
	"github.com/bibabu12315/word-ppt/internal/parser"
)

// Parser parses .docx documents.
type Parser struct {
	source  string
	reader  *zip.Reader
	closer  io.Closer
	options parser.Options

	styles map[string]string // styleId -> style name, from word/styles.xml
}

// New creates a parser for the given .docx file path.
func New(path string, opts parser.Options) (*Parser, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx file: %w", err)
	}

	p := &Parser{
		source:  filepath.Base(path),
		reader:  &r.Reader,
		closer:  r,
		options: opts,
		styles:  make(map[string]string),
	}
	p.init()
	return p, nil
}

// NewFromReader creates a parser over in-memory docx content.
func NewFromReader(r io.ReaderAt, size int64, opts parser.Options) (*Parser, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read docx content: %w", err)
	}

	p := &Parser{
		source:  "uploaded_file",
		reader:  zr,
		options: opts,
		styles:  make(map[string]string),
	}
	p.init()
	return p, nil
}

func (p *Parser) init() {
	if p.options.SourceName != "" {
		p.source = p.options.SourceName
	}
	// Style resolution is best-effort: a docx without styles.xml still
	// parses, with style IDs standing in for names.
	p.parseStyles()
}

// Close releases resources.
func (p *Parser) Close() error {
	if p.closer != nil {
		return p.closer.Close()
	}
	return nil
}

// Parse implements the parser.Parser interface.
func (p *Parser) Parse() (*document.Document, error) {
	doc := document.New(p.source)
	p.parseCoreProperties(doc)

	f, err := p.open("word/document.xml")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := p.parseBody(doc, xml.NewDecoder(f)); err != nil {
		return nil, fmt.Errorf("failed to parse document body: %w", err)
	}

	doc.Trim()
	return doc, nil
}

// open finds and opens a file inside the docx archive.
func (p *Parser) open(name string) (io.ReadCloser, error) {
	for _, f := range p.reader.File {
		if strings.EqualFold(f.Name, name) {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open %s: %w", name, err)
			}
			return rc, nil
		}
	}
	return nil, fmt.Errorf("archive entry not found: %s", name)
}

// parseStyles reads word/styles.xml to map style IDs to display names.
func (p *Parser) parseStyles() {
	f, err := p.open("word/styles.xml")
	if err != nil {
		return
	}
	defer f.Close()

	decoder := xml.NewDecoder(f)
	var currentID string
	for {
		token, err := decoder.Token()
		if err != nil {
			return
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "style":
				currentID = ""
				for _, attr := range t.Attr {
					if attr.Name.Local == "styleId" {
						currentID = attr.Value
					}
				}
			case "name":
				if currentID != "" {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							p.styles[currentID] = attr.Value
						}
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "style" {
				currentID = ""
			}
		}
	}
}

// parseCoreProperties reads docProps/core.xml for title/creator metadata.
func (p *Parser) parseCoreProperties(doc *document.Document) {
	f, err := p.open("docProps/core.xml")
	if err != nil {
		return
	}
	defer f.Close()

	decoder := xml.NewDecoder(f)
	for {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "title":
			text, _ := readElementText(decoder)
			doc.Meta.Title = strings.TrimSpace(text)
		case "creator":
			text, _ := readElementText(decoder)
			doc.Meta.Author = strings.TrimSpace(text)
		}
	}
}

// paragraphState accumulates one w:p element during the token walk.
type paragraphState struct {
	text      strings.Builder
	styleID   string
	numbered  bool // paragraph carries a w:numPr (list numbering reference)
	inProps   bool
}

// parseBody walks word/document.xml and appends blocks to the document.
// Table content is skipped: the deck pipeline consumes headings, lists and
// plain paragraphs only, matching the rule set of the JSON extraction.
func (p *Parser) parseBody(doc *document.Document, decoder *xml.Decoder) error {
	var para *paragraphState
	tableDepth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("XML parse error: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++

			case "p":
				if tableDepth == 0 {
					para = &paragraphState{}
				}

			case "pPr":
				if para != nil {
					para.inProps = true
				}

			case "pStyle":
				if para != nil && para.inProps {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							para.styleID = attr.Value
						}
					}
				}

			case "numPr":
				if para != nil && para.inProps {
					para.numbered = true
				}

			case "t":
				if para != nil && tableDepth == 0 {
					text, _ := readElementText(decoder)
					para.text.WriteString(text)
				}

			case "tab":
				if para != nil && tableDepth == 0 {
					para.text.WriteString("\t")
				}

			case "br":
				if para != nil && tableDepth == 0 {
					para.text.WriteString("\n")
				}
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}

			case "pPr":
				if para != nil {
					para.inProps = false
				}

			case "p":
				if para != nil && tableDepth == 0 {
					p.flushParagraph(doc, para)
				}
				para = nil
			}
		}
	}

	return nil
}

// flushParagraph classifies a completed paragraph and appends it.
func (p *Parser) flushParagraph(doc *document.Document, para *paragraphState) {
	text := strings.TrimSpace(para.text.String())
	if text == "" {
		return
	}

	styleName := para.styleID
	if name, ok := p.styles[para.styleID]; ok {
		styleName = name
	}

	kind, level := classifyStyle(styleName)
	if kind == styleNormal && para.numbered {
		// Direct numbering without a list style still reads as a list item.
		kind = styleList
	}

	switch kind {
	case styleHeading:
		doc.StartSection(level, text)
	case styleList:
		doc.Current().AddListItem(text)
	default:
		doc.Current().AddParagraph(text)
	}
}

// readElementText reads character data until the current element ends.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder

	for {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}

		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return text.String(), nil
		}
	}
}
