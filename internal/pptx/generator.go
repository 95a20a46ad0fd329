package pptx

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gopresentation "github.com/VantageDataChat/GoPPT"

	"github.com/bibabu12315/word-ppt/internal/deck"
)

// DefaultMaxChapters is the hard cap on chapter slides.
const DefaultMaxChapters = 8

// coverMetaAliases maps cover shape names to the metadata keys that fill
// them. The Chinese keys match the deck markdown produced upstream.
var coverMetaAliases = []struct {
	shape string
	keys  []string
}{
	{"cover_project", []string{"项目名称", "项目", "project", "Project"}},
	{"cover_presenter", []string{"汇报人", "presenter", "Presenter"}},
	{"cover_dept", []string{"部门 / 团队", "部门", "团队", "department", "Department", "team", "Team"}},
	{"cover_date", []string{"日期", "date", "Date"}},
	{"cover_company", []string{"公司名称", "公司", "company", "Company"}},
}

var presenterKeys = []string{"汇报人", "presenter", "Presenter"}

// Generator fills a recognized four-slide template from deck data and
// writes the result. Missing template shapes degrade to warnings; the
// template file itself is never modified.
type Generator struct {
	TemplatePath string
	OutputPath   string

	// MaxChapters caps the number of chapter slides; <= 0 means
	// DefaultMaxChapters.
	MaxChapters int

	// Warnf receives non-fatal shape warnings. Defaults to stderr.
	Warnf func(format string, args ...interface{})
}

// NewGenerator creates a generator for the given template and output paths.
func NewGenerator(templatePath, outputPath string) *Generator {
	return &Generator{
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		MaxChapters:  DefaultMaxChapters,
	}
}

func (g *Generator) warnf(format string, args ...interface{}) {
	if g.Warnf != nil {
		g.Warnf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Generate runs the fill: cover, table of contents, one chapter slide per
// deck slide (the content prototype is cloned for chapters beyond the
// first), end page. The output deck always has 2+len(slides)+1 slides.
func (g *Generator) Generate(data *deck.Presentation) error {
	if data == nil {
		return fmt.Errorf("nil presentation data")
	}
	if _, err := os.Stat(g.TemplatePath); err != nil {
		return fmt.Errorf("template file not found: %w", err)
	}

	pres, err := gopresentation.Open(g.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	if count := pres.GetSlideCount(); count < templateSlideCount {
		return fmt.Errorf("template has %d slides, want %d (cover, toc, content, end)", count, templateSlideCount)
	}

	max := g.MaxChapters
	if max <= 0 {
		max = DefaultMaxChapters
	}
	if dropped := data.Truncate(max); dropped > 0 {
		g.warnf("chapter count exceeds %d, dropped %d trailing chapters", max, dropped)
	}

	coverSlide, err := pres.GetSlide(slideCover)
	if err != nil {
		return fmt.Errorf("failed to read cover slide: %w", err)
	}
	g.fillCover(coverSlide, data)

	tocSlide, err := pres.GetSlide(slideTOC)
	if err != nil {
		return fmt.Errorf("failed to read TOC slide: %w", err)
	}
	g.fillTOC(pres, tocSlide, data)

	n := len(data.Slides)
	if n == 0 {
		if err := pres.RemoveSlideByIndex(slideContent); err != nil {
			return fmt.Errorf("failed to drop content prototype: %w", err)
		}
	} else {
		// Clone the pristine prototype for every chapter after the first,
		// then fill. Filling first would corrupt the clone source.
		for i := 1; i < n; i++ {
			dup, err := pres.CopySlide(slideContent)
			if err != nil {
				return fmt.Errorf("failed to clone content slide: %w", err)
			}
			detachRichTextShapes(dup)
			if err := pres.MoveSlide(pres.GetSlideCount()-1, slideContent+i); err != nil {
				return fmt.Errorf("failed to order chapter slide: %w", err)
			}
		}
		for i, sd := range data.Slides {
			slide, err := pres.GetSlide(slideContent + i)
			if err != nil {
				return fmt.Errorf("failed to read chapter slide: %w", err)
			}
			g.fillChapter(slide, sd, slideContent+i+1)
		}
	}

	endSlide, err := pres.GetSlide(pres.GetSlideCount() - 1)
	if err != nil {
		return fmt.Errorf("failed to read end slide: %w", err)
	}
	g.fillEnd(endSlide, data)

	if dir := filepath.Dir(g.OutputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := pres.Save(g.OutputPath); err != nil {
		return fmt.Errorf("failed to save presentation: %w", err)
	}
	return nil
}

// fillCover sets the cover title and metadata shapes. Shapes whose metadata
// is absent keep their template text, matching selection-pane previews.
func (g *Generator) fillCover(slide *gopresentation.Slide, data *deck.Presentation) {
	ix := indexShapes(slide)
	if rts, ok := ix.richText("cover_title"); ok && data.CoverTitle != "" {
		setShapeText(rts, data.CoverTitle)
	}
	for _, alias := range coverMetaAliases {
		value := metaValue(data.MetaInfo, alias.keys)
		if value == "" {
			continue
		}
		if rts, ok := ix.richText(alias.shape); ok {
			setShapeText(rts, value)
		}
	}
}

// fillTOC fills one numbered entry per chapter, cloning the page1 prototypes
// for chapters without their own, stacked along the prototype flow.
func (g *Generator) fillTOC(pres *gopresentation.Presentation, slide *gopresentation.Slide, data *deck.Presentation) {
	ix := indexShapes(slide)
	titleProto, ok := ix.richText(shapeName(1, "title"))
	if !ok {
		g.warnf("shape %q not found on TOC slide, skipping table of contents", shapeName(1, "title"))
		return
	}
	numProto, _ := ix.richText(shapeName(1, "title_num"))

	layout := pres.GetLayout()
	var second gopresentation.Shape
	if s, found := ix.get(shapeName(2, "title")); found {
		second = s
	}
	flow := newTOCFlow(titleProto, second, layout.CX, layout.CY)

	for _, sd := range data.Slides {
		dx, dy := flow.delta(sd.Index - 1)

		if rts, found := ix.richText(shapeName(sd.Index, "title")); found {
			setShapeText(rts, sd.Title)
		} else {
			clone := cloneRichText(slide, titleProto, shapeName(sd.Index, "title"))
			clone.SetOffsetX(titleProto.GetOffsetX() + dx).SetOffsetY(titleProto.GetOffsetY() + dy)
			setShapeText(clone, sd.Title)
		}

		num := fmt.Sprintf("%02d", sd.Index)
		if rts, found := ix.richText(shapeName(sd.Index, "title_num")); found {
			setShapeText(rts, num)
		} else if numProto != nil {
			clone := cloneRichText(slide, numProto, shapeName(sd.Index, "title_num"))
			clone.SetOffsetX(numProto.GetOffsetX() + dx).SetOffsetY(numProto.GetOffsetY() + dy)
			setShapeText(clone, num)
		}
	}

	// Prototypes past the last chapter stay on the slide but lose their text.
	for p := len(data.Slides) + 1; ; p++ {
		rts, found := ix.richText(shapeName(p, "title"))
		if !found {
			break
		}
		blankShape(rts)
		if nrts, nfound := ix.richText(shapeName(p, "title_num")); nfound {
			blankShape(nrts)
		}
	}
}

// fillChapter fills one content slide. Each role is claimed through the
// locator, which renames only the shape actually filled; prototype shapes
// serving other pages keep their names. Body prototypes the chapter leaves
// unclaimed are blanked at the end.
func (g *Generator) fillChapter(slide *gopresentation.Slide, sd *deck.Slide, pageNumber int) {
	page := sd.Index
	ix := indexShapes(slide)
	claimed := make(map[string]bool)

	if rts, ok := ix.claim(page, "title"); ok {
		setShapeText(rts, sd.Title)
	} else {
		g.warnf("shape %q not found in template", shapeName(page, "title"))
	}

	if rts, ok := ix.claim(page, "desc"); ok {
		if sd.Description != "" {
			setShapeText(rts, sd.Description)
		} else {
			blankShape(rts)
		}
	}

	// Keep a handle on the pristine bullet prototype before any fill
	// replaces it, so overflow blocks clone the template styling.
	bulletProto, _ := ix.findRichText(page, "bullet1")

	var prev *gopresentation.RichTextShape
	for j, block := range sd.Blocks {
		idx := j + 1
		bulletName := shapeName(page, fmt.Sprintf("bullet%d", idx))
		rts, found := ix.claim(page, fmt.Sprintf("bullet%d", idx))
		if !found {
			if crts, cfound := ix.claim(page, fmt.Sprintf("content%d", idx)); cfound {
				g.fillPlainBody(slide, crts, block)
				claimed[shapeName(page, fmt.Sprintf("content%d", idx))] = true
				g.fillKeyword(ix, page, idx, block.Keyword, claimed)
				continue
			}
			if bulletProto == nil {
				g.warnf("shape %q not found in template (for content %q)", bulletName, block.Subtitle)
				continue
			}
			rts = cloneRichText(slide, bulletProto, bulletName)
			if prev != nil {
				rts.SetOffsetY(prev.GetOffsetY() + prev.GetHeight() + blockGap)
			}
		}
		claimed[bulletName] = true

		size := fontSizeOf(firstRunFont(rts))
		filled := fillBulletBody(slide, rts, block.Subtitle, block.Bullets)
		if est := estimateTextHeight(blockLines(block), filled.GetWidth(), size); est > filled.GetHeight() {
			filled.SetHeight(est)
		}
		prev = filled
		g.fillKeyword(ix, page, idx, block.Keyword, claimed)
	}

	// Blank body prototypes no block claimed, whatever page index their
	// names still carry.
	for _, shape := range slide.GetShapes() {
		rts, ok := shape.(*gopresentation.RichTextShape)
		if !ok {
			continue
		}
		name := rts.GetName()
		if claimed[name] {
			continue
		}
		m := pagePrefixPattern.FindStringSubmatch(name)
		if m == nil || !bodyRolePattern.MatchString(m[2]) {
			continue
		}
		blankShape(rts)
	}

	applyPageNumber(slide, pageNumber)
}

func (g *Generator) fillKeyword(ix *shapeIndex, page, idx int, keyword string, claimed map[string]bool) {
	rts, ok := ix.claim(page, fmt.Sprintf("keyword%d", idx))
	if !ok {
		return
	}
	claimed[shapeName(page, fmt.Sprintf("keyword%d", idx))] = true
	if keyword != "" {
		setShapeText(rts, keyword)
	} else {
		blankShape(rts)
	}
}

// fillBulletBody rebuilds a bullet body shape: a bolded subtitle paragraph
// followed by one indented paragraph per bullet, all carrying the prototype
// run font. The prototype shape is replaced by the rebuilt one.
func fillBulletBody(slide *gopresentation.Slide, proto *gopresentation.RichTextShape, subtitle string, bullets []string) *gopresentation.RichTextShape {
	font := firstRunFont(proto)
	if font == nil {
		font = gopresentation.NewFont()
		font.Size = defaultBodyFontSize
	}

	fresh := slide.CreateRichTextShape()
	copyShapeFormat(fresh, proto)

	first := true
	if subtitle != "" {
		run := fresh.GetActiveParagraph().CreateTextRun(subtitle)
		f := *font
		f.Bold = true
		run.SetFont(&f)
		first = false
	}
	for _, bullet := range bullets {
		var para *gopresentation.Paragraph
		if first {
			para = fresh.GetActiveParagraph()
			first = false
		} else {
			para = fresh.CreateParagraph()
		}
		para.GetAlignment().Level = 1
		run := para.CreateTextRun(bullet)
		f := *font
		run.SetFont(&f)
	}

	slide.RemoveShapeByPointer(proto)
	return fresh
}

// fillPlainBody rebuilds a content shape as plain paragraphs, one per line,
// without bolding or indentation.
func (g *Generator) fillPlainBody(slide *gopresentation.Slide, proto *gopresentation.RichTextShape, block deck.ContentBlock) {
	font := firstRunFont(proto)
	if font == nil {
		font = gopresentation.NewFont()
		font.Size = defaultBodyFontSize
	}

	fresh := slide.CreateRichTextShape()
	copyShapeFormat(fresh, proto)

	first := true
	for _, line := range blockLines(block) {
		var para *gopresentation.Paragraph
		if first {
			para = fresh.GetActiveParagraph()
			first = false
		} else {
			para = fresh.CreateParagraph()
		}
		run := para.CreateTextRun(line)
		f := *font
		run.SetFont(&f)
	}

	size := fontSizeOf(font)
	if est := estimateTextHeight(blockLines(block), fresh.GetWidth(), size); est > fresh.GetHeight() {
		fresh.SetHeight(est)
	}
	slide.RemoveShapeByPointer(proto)
}

// fillEnd fills the presenter shape on the closing slide when present.
func (g *Generator) fillEnd(slide *gopresentation.Slide, data *deck.Presentation) {
	ix := indexShapes(slide)
	rts, ok := ix.richText("cover_presenter")
	if !ok {
		return
	}
	if v := metaValue(data.MetaInfo, presenterKeys); v != "" {
		setShapeText(rts, v)
	}
}

// applyPageNumber sets the page-number box: a shape named page_num, or any
// rich text shape whose text contains the {page} placeholder.
func applyPageNumber(slide *gopresentation.Slide, number int) {
	for _, shape := range slide.GetShapes() {
		rts, ok := shape.(*gopresentation.RichTextShape)
		if !ok {
			continue
		}
		if rts.GetName() == "page_num" {
			setShapeText(rts, strconv.Itoa(number))
			continue
		}
		if text := shapeText(rts); strings.Contains(text, "{page}") {
			setShapeText(rts, strings.ReplaceAll(text, "{page}", strconv.Itoa(number)))
		}
	}
}

func blockLines(block deck.ContentBlock) []string {
	lines := make([]string, 0, len(block.Bullets)+1)
	if block.Subtitle != "" {
		lines = append(lines, block.Subtitle)
	}
	lines = append(lines, block.Bullets...)
	return lines
}

func fontSizeOf(f *gopresentation.Font) int {
	if f == nil || f.Size <= 0 {
		return defaultBodyFontSize
	}
	return f.Size
}

func metaValue(meta map[string]string, keys []string) string {
	for _, k := range keys {
		if v, ok := meta[k]; ok && v != "" {
			return v
		}
	}
	return ""
}
