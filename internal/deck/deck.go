// Package deck defines the presentation data model shared between the
// markdown parser and the PPT generator.
package deck

// ContentBlock is one sub-section of a slide. It corresponds to a ### heading
// in deck markdown and to a page{N}_bullet{M} shape in a template.
type ContentBlock struct {
	Subtitle string   `json:"subtitle"`
	Bullets  []string `json:"bullets,omitempty"`
	Keyword  string   `json:"keyword,omitempty"`
}

// Slide is one chapter of the deck, corresponding to a ## heading.
type Slide struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Blocks      []ContentBlock `json:"blocks,omitempty"`

	// Index is the 1-based chapter ordinal used in template shape names
	// (page1_title, page2_bullet1, ...). It is independent of the physical
	// slide position in the generated file.
	Index int `json:"index"`
}

// Presentation is the full deck: cover metadata plus ordered chapters.
type Presentation struct {
	CoverTitle string            `json:"cover_title"`
	MetaInfo   map[string]string `json:"meta_info,omitempty"`
	Slides     []*Slide          `json:"slides"`
}

// New creates an empty Presentation.
func New() *Presentation {
	return &Presentation{
		MetaInfo: make(map[string]string),
		Slides:   make([]*Slide, 0),
	}
}

// AddSlide appends a slide and assigns its chapter ordinal.
func (p *Presentation) AddSlide(title string) *Slide {
	s := &Slide{
		Title: title,
		Index: len(p.Slides) + 1,
	}
	p.Slides = append(p.Slides, s)
	return s
}

// Truncate drops chapters beyond max and returns how many were removed.
// A max of zero or less means no limit.
func (p *Presentation) Truncate(max int) int {
	if max <= 0 || len(p.Slides) <= max {
		return 0
	}
	dropped := len(p.Slides) - max
	p.Slides = p.Slides[:max]
	return dropped
}

// AddBlock appends a content block with the given subtitle to the slide.
func (s *Slide) AddBlock(subtitle string) *ContentBlock {
	s.Blocks = append(s.Blocks, ContentBlock{Subtitle: subtitle})
	return &s.Blocks[len(s.Blocks)-1]
}

// LastBlock returns the most recently added block, or nil.
func (s *Slide) LastBlock() *ContentBlock {
	if len(s.Blocks) == 0 {
		return nil
	}
	return &s.Blocks[len(s.Blocks)-1]
}
