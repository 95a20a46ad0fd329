package pptx

import (
	"math"

	gopresentation "github.com/VantageDataChat/GoPPT"
)

// Layout estimation works in EMU and never measures real glyphs. Wrapped
// line counts come from a character-count heuristic: CJK runes take one
// font-size width unit, everything else a bit over half of one. The result
// is good enough to stack generated text boxes without overlap.

const (
	// Default text box insets in EMU (matches the OOXML defaults).
	insetHorizontal = 91440
	insetVertical   = 45720

	// Font size assumed when a prototype run carries no explicit size.
	defaultBodyFontSize = 18

	// Weight of a non-CJK rune relative to the font size.
	narrowRuneWeight = 0.55

	// Line height multiplier over the font size.
	lineHeightFactor = 1.2
)

// blockGap is the vertical gap inserted between stacked content blocks.
var blockGap = gopresentation.Point(12)

func isWideRune(r rune) bool {
	switch {
	case r >= 0x1100 && r <= 0x115F: // Hangul Jamo
		return true
	case r >= 0x2E80 && r <= 0x9FFF: // CJK radicals, Kana, Han
		return true
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK compatibility ideographs
		return true
	case r >= 0xFF00 && r <= 0xFF60: // fullwidth forms
		return true
	}
	return false
}

// estimateLineCount returns the number of wrapped lines the text needs in a
// box of the given width at the given font size. Always at least 1.
func estimateLineCount(text string, widthEMU int64, fontSize int) int {
	if fontSize <= 0 {
		fontSize = defaultBodyFontSize
	}
	usable := widthEMU - 2*insetHorizontal
	if usable <= 0 {
		return 1
	}
	unitsPerLine := float64(usable) / float64(gopresentation.Point(float64(fontSize)))
	if unitsPerLine < 1 {
		unitsPerLine = 1
	}
	var units float64
	for _, r := range text {
		if isWideRune(r) {
			units++
		} else {
			units += narrowRuneWeight
		}
	}
	lines := int(math.Ceil(units / unitsPerLine))
	if lines < 1 {
		lines = 1
	}
	return lines
}

// estimateTextHeight returns the estimated box height for the given lines of
// text, including vertical insets.
func estimateTextHeight(lines []string, widthEMU int64, fontSize int) int64 {
	if fontSize <= 0 {
		fontSize = defaultBodyFontSize
	}
	total := 0
	for _, line := range lines {
		total += estimateLineCount(line, widthEMU, fontSize)
	}
	if total == 0 {
		total = 1
	}
	lineHeight := gopresentation.Point(float64(fontSize) * lineHeightFactor)
	return int64(total)*lineHeight + 2*insetVertical
}

// tocFlow distributes table-of-contents entries over the geometry of the
// template prototypes. The flow direction and step come from the first two
// prototypes when both exist, otherwise from the first prototype's height.
type tocFlow struct {
	originX, originY int64
	stepX, stepY     int64
	perColumn        int
	horizontal       bool
	perRow           int
}

// newTOCFlow builds a flow from the first prototype's geometry, the second
// prototype's geometry when present (nil geometry means absent), and the
// slide dimensions.
func newTOCFlow(first, second gopresentation.Shape, slideCX, slideCY int64) *tocFlow {
	f := &tocFlow{
		originX: first.GetOffsetX(),
		originY: first.GetOffsetY(),
	}
	height := first.GetHeight()
	if height <= 0 {
		height = gopresentation.Point(24 * lineHeightFactor)
	}

	if second != nil {
		dx := second.GetOffsetX() - f.originX
		dy := second.GetOffsetY() - f.originY
		if dy <= 0 && dx > 0 {
			// Prototypes sit side by side: horizontal flow, wrap to rows.
			f.horizontal = true
			f.stepX = dx
			f.stepY = height * 3 / 2
			f.perRow = flowCapacity(f.originX, dx, first.GetWidth(), slideCX)
			return f
		}
		if dy > 0 {
			f.stepY = dy
			f.stepX = dx
		}
	}
	if f.stepY <= 0 {
		f.stepY = height * 3 / 2
	}
	f.perColumn = flowCapacity(f.originY, f.stepY, height, slideCY)
	if f.stepX <= 0 {
		// Second column mirrors the first at the horizontal midpoint.
		f.stepX = slideCX / 2
	}
	return f
}

// flowCapacity returns how many entries fit along one axis, starting at
// origin with the given step, keeping the last entry's extent on the slide.
func flowCapacity(origin, step, extent, limit int64) int {
	if step <= 0 {
		return 1
	}
	n := int((limit-origin-extent)/step) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// delta returns the offset of entry i (0-based) relative to the first
// prototype's position.
func (f *tocFlow) delta(i int) (dx, dy int64) {
	if f.horizontal {
		row := i / f.perRow
		col := i % f.perRow
		return int64(col) * f.stepX, int64(row) * f.stepY
	}
	col := i / f.perColumn
	row := i % f.perColumn
	return int64(col) * f.stepX, int64(row) * f.stepY
}
