// Package pptx generates a PowerPoint deck from deck data by cloning and
// filling placeholder shapes in a recognized template.
//
// The template carries four slides: cover, table of contents, a content
// prototype and an end page. Fillable shapes follow a positional naming
// convention visible in PowerPoint's selection pane: cover_* on the cover,
// page{N}_title_num / page{N}_title on the TOC, and page{N}_title,
// page{N}_desc, page{N}_bullet{M}, page{N}_content{M}, page{N}_keyword{M}
// on the content prototype.
package pptx

import (
	"fmt"
	"regexp"

	gopresentation "github.com/VantageDataChat/GoPPT"
)

// Template slide positions.
const (
	slideCover   = 0
	slideTOC     = 1
	slideContent = 2
	slideEnd     = 3

	templateSlideCount = 4
)

// Highest page index probed when falling back to prototype shapes.
const prototypePages = 3

var pagePrefixPattern = regexp.MustCompile(`^page(\d+)_(.+)$`)

// roleIndexPattern splits a role like "bullet2" into its base and index.
var roleIndexPattern = regexp.MustCompile(`^([a-z_]+?)(\d+)$`)

// bodyRolePattern matches the per-block body roles of a content slide.
var bodyRolePattern = regexp.MustCompile(`^(?:bullet|content|keyword)\d+$`)

func shapeName(page int, role string) string {
	return fmt.Sprintf("page%d_%s", page, role)
}

// shapeIndex is a name -> shape lookup for one slide.
type shapeIndex struct {
	byName map[string]gopresentation.Shape
}

func indexShapes(slide *gopresentation.Slide) *shapeIndex {
	ix := &shapeIndex{byName: make(map[string]gopresentation.Shape)}
	for _, shape := range slide.GetShapes() {
		name := shape.GetName()
		if name == "" {
			continue
		}
		ix.byName[name] = shape
	}
	return ix
}

func (ix *shapeIndex) get(name string) (gopresentation.Shape, bool) {
	s, ok := ix.byName[name]
	return s, ok
}

func (ix *shapeIndex) richText(name string) (*gopresentation.RichTextShape, bool) {
	s, ok := ix.byName[name]
	if !ok {
		return nil, false
	}
	rts, ok := s.(*gopresentation.RichTextShape)
	return rts, ok
}

// findSameRole resolves a logical role for a page without changing the
// role's index. A direct page{page}_{role} match wins; otherwise the same
// role is probed on the page1..page3 prototypes.
func (ix *shapeIndex) findSameRole(page int, role string) (gopresentation.Shape, bool) {
	if s, ok := ix.get(shapeName(page, role)); ok {
		return s, true
	}
	for p := 1; p <= prototypePages; p++ {
		if p == page {
			continue
		}
		if s, ok := ix.get(shapeName(p, role)); ok {
			return s, true
		}
	}
	return nil, false
}

// find resolves a logical role for a page: the same role on the page itself
// or a page1..page3 prototype, then with the role's index reset to 1.
func (ix *shapeIndex) find(page int, role string) (gopresentation.Shape, bool) {
	if s, ok := ix.findSameRole(page, role); ok {
		return s, true
	}
	if m := roleIndexPattern.FindStringSubmatch(role); m != nil && m[2] != "1" {
		return ix.find(page, m[1]+"1")
	}
	return nil, false
}

// findRichText is find restricted to rich text shapes.
func (ix *shapeIndex) findRichText(page int, role string) (*gopresentation.RichTextShape, bool) {
	s, ok := ix.find(page, role)
	if !ok {
		return nil, false
	}
	rts, ok := s.(*gopresentation.RichTextShape)
	return rts, ok
}

// claim resolves a role for a page and renames the shape it lands on to the
// page's own name. Only the claimed shape is renamed; prototype shapes left
// for other pages keep their names, so a slide never carries two shapes
// under one name. Renaming cannot collide: had the target name existed, the
// direct lookup would have returned it.
func (ix *shapeIndex) claim(page int, role string) (*gopresentation.RichTextShape, bool) {
	s, ok := ix.findSameRole(page, role)
	if !ok {
		return nil, false
	}
	rts, ok := s.(*gopresentation.RichTextShape)
	if !ok {
		return nil, false
	}
	want := shapeName(page, role)
	if old := rts.GetName(); old != want {
		delete(ix.byName, old)
		rts.SetName(want)
		ix.byName[want] = rts
	}
	return rts, true
}
