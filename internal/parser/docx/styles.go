package docx

import (
	"strconv"
	"strings"
)

// styleKind classifies a resolved paragraph style name.
type styleKind int

const (
	styleNormal styleKind = iota
	styleHeading
	styleList
)

// classifyStyle maps a style name (as shown in Word's style gallery, resolved
// through styles.xml) to a kind and, for headings, a level.
//
// Word names built-in styles "Heading 1".."Heading 9"; style IDs drop the
// space ("Heading1"). Both forms are accepted, along with the "List Bullet" /
// "List Paragraph" families.
func classifyStyle(name string) (styleKind, int) {
	trimmed := strings.TrimSpace(name)

	if strings.HasPrefix(trimmed, "Heading") {
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "Heading"))
		level, err := strconv.Atoi(rest)
		if err != nil || level < 1 || level > 9 {
			level = 1
		}
		return styleHeading, level
	}

	if strings.Contains(trimmed, "List Bullet") || strings.HasPrefix(trimmed, "List") {
		return styleList, 0
	}

	return styleNormal, 0
}
