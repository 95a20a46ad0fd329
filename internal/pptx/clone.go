package pptx

import (
	"strings"

	gopresentation "github.com/VantageDataChat/GoPPT"
)

// cloneRichText duplicates a rich text shape onto the slide with a new name.
// Geometry, fill, border, anchoring, word wrap and the full paragraph/run
// content (fonts, alignment, bullets, spacing) are copied so the clone is
// independent of the source.
func cloneRichText(slide *gopresentation.Slide, src *gopresentation.RichTextShape, name string) *gopresentation.RichTextShape {
	dst := slide.CreateRichTextShape()
	copyShapeFormat(dst, src)
	dst.SetName(name)

	for i, para := range src.GetParagraphs() {
		var target *gopresentation.Paragraph
		if i == 0 {
			target = dst.GetActiveParagraph()
		} else {
			target = dst.CreateParagraph()
		}
		copyParagraph(target, para)
	}
	return dst
}

// copyShapeFormat copies geometry and shape-level styling from src to dst.
// Paragraph content is not touched.
func copyShapeFormat(dst, src *gopresentation.RichTextShape) {
	dst.SetOffsetX(src.GetOffsetX()).
		SetOffsetY(src.GetOffsetY()).
		SetWidth(src.GetWidth()).
		SetHeight(src.GetHeight())
	dst.SetName(src.GetName())

	fill := *src.GetFill()
	dst.SetFill(&fill)
	border := *src.GetBorder()
	dst.SetBorder(&border)

	dst.SetWordWrap(src.GetWordWrap())
	dst.SetAutoFit(src.GetAutoFit())
	dst.SetTextAnchor(src.GetTextAnchor())
}

func copyParagraph(dst, src *gopresentation.Paragraph) {
	if a := src.GetAlignment(); a != nil {
		alignment := *a
		dst.SetAlignment(&alignment)
	}
	if b := src.GetBullet(); b != nil {
		bullet := *b
		dst.SetBullet(&bullet)
	}
	dst.SetLineSpacing(src.GetLineSpacing())
	dst.SetSpaceBefore(src.GetSpaceBefore())
	dst.SetSpaceAfter(src.GetSpaceAfter())

	for _, elem := range src.GetElements() {
		switch e := elem.(type) {
		case *gopresentation.TextRun:
			run := dst.CreateTextRun(e.GetText())
			if f := e.GetFont(); f != nil {
				font := *f
				run.SetFont(&font)
			}
		case *gopresentation.BreakElement:
			dst.CreateBreak()
		}
	}
}

// detachRichTextShapes replaces every rich text shape on the slide with an
// independent clone. CopySlide copies the shapes slice shallowly, so without
// this step editing a copied slide's text would also edit the source slide.
func detachRichTextShapes(slide *gopresentation.Slide) {
	shapes := append([]gopresentation.Shape(nil), slide.GetShapes()...)
	for _, shape := range shapes {
		src, ok := shape.(*gopresentation.RichTextShape)
		if !ok {
			continue
		}
		cloneRichText(slide, src, src.GetName())
		slide.RemoveShapeByPointer(src)
	}
}

// firstRunFont returns the font of the first text run in the shape, or nil.
func firstRunFont(rts *gopresentation.RichTextShape) *gopresentation.Font {
	for _, para := range rts.GetParagraphs() {
		for _, elem := range para.GetElements() {
			if run, ok := elem.(*gopresentation.TextRun); ok {
				return run.GetFont()
			}
		}
	}
	return nil
}

// shapeText returns the concatenated text of all runs in the shape.
func shapeText(rts *gopresentation.RichTextShape) string {
	var sb strings.Builder
	for _, para := range rts.GetParagraphs() {
		for _, elem := range para.GetElements() {
			if run, ok := elem.(*gopresentation.TextRun); ok {
				sb.WriteString(run.GetText())
			}
		}
	}
	return sb.String()
}

// setShapeText replaces the shape's text while keeping the template styling.
// The first run is reused so its font survives; every other run is blanked.
func setShapeText(rts *gopresentation.RichTextShape, text string) {
	var first *gopresentation.TextRun
	for _, para := range rts.GetParagraphs() {
		for _, elem := range para.GetElements() {
			run, ok := elem.(*gopresentation.TextRun)
			if !ok {
				continue
			}
			if first == nil {
				first = run
				continue
			}
			run.SetText("")
		}
	}
	if first == nil {
		rts.GetActiveParagraph().CreateTextRun(text)
		return
	}
	first.SetText(text)
}

// blankShape clears all run text in the shape without removing it, so the
// template's visual framing stays in place.
func blankShape(rts *gopresentation.RichTextShape) {
	setShapeText(rts, "")
}
