// Package document defines the intermediate representation of a parsed Word
// document. It is the output of Stage 1 (docx parsing) and the input for
// Stage 2 (markdown rendering, optionally through an LLM).
package document

// Document is the intermediate representation of a Word document.
type Document struct {
	Meta     Meta       `json:"meta"`
	Sections []*Section `json:"sections"`
}

// Meta carries document-level metadata.
type Meta struct {
	Source string `json:"source,omitempty"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// Section groups the blocks under one heading. Level 0 is the synthetic
// preamble section that collects content appearing before the first heading.
type Section struct {
	Level  int     `json:"level"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// BlockType identifies the kind of content block.
type BlockType string

const (
	BlockTypeParagraph BlockType = "paragraph"
	BlockTypeList      BlockType = "list"
)

// Block is a single content block. Exactly one of Text or Items is set,
// depending on Type.
type Block struct {
	Type  BlockType `json:"type"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
}

// New creates a Document with the synthetic preamble section in place.
func New(source string) *Document {
	return &Document{
		Meta: Meta{Source: source},
		Sections: []*Section{
			{Level: 0, Title: "Preamble", Blocks: make([]Block, 0)},
		},
	}
}

// StartSection begins a new section at the given heading level and makes it
// current.
func (d *Document) StartSection(level int, title string) *Section {
	s := &Section{Level: level, Title: title, Blocks: make([]Block, 0)}
	d.Sections = append(d.Sections, s)
	return s
}

// Current returns the section blocks are currently appended to.
func (d *Document) Current() *Section {
	return d.Sections[len(d.Sections)-1]
}

// Trim removes the preamble section if it stayed empty and other sections
// exist.
func (d *Document) Trim() {
	if len(d.Sections) > 1 && len(d.Sections[0].Blocks) == 0 && d.Sections[0].Level == 0 {
		d.Sections = d.Sections[1:]
	}
}

// AddParagraph appends a paragraph block to the section.
func (s *Section) AddParagraph(text string) {
	s.Blocks = append(s.Blocks, Block{Type: BlockTypeParagraph, Text: text})
}

// AddListItem appends an item to the trailing list block, starting a new list
// block if the previous block is not a list.
func (s *Section) AddListItem(text string) {
	if n := len(s.Blocks); n > 0 && s.Blocks[n-1].Type == BlockTypeList {
		s.Blocks[n-1].Items = append(s.Blocks[n-1].Items, text)
		return
	}
	s.Blocks = append(s.Blocks, Block{Type: BlockTypeList, Items: []string{text}})
}
