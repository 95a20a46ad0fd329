package markdown

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bibabu12315/word-ppt/internal/deck"
)

// Line matchers, compiled once. The deck dialect is a small line-oriented
// subset of markdown, so a regex per construct is all the parsing needed.
var (
	reH1       = regexp.MustCompile(`^#\s+(.+)$`)
	reH2       = regexp.MustCompile(`^##\s+(.+)$`)
	reH3       = regexp.MustCompile(`^###\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^-\s+(.+)$`)
	reKeyValue = regexp.MustCompile(`^([^：:]+)[：:]\s*(.+)$`)
	reKeyword  = regexp.MustCompile(`^\*\*\s*(?:关键词|[Kk]eywords?)[：:]\s*(.+?)\s*\*\*$`)
)

// ParseFile reads and parses a deck markdown file.
func ParseFile(path string) (*deck.Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown file: %w", err)
	}
	return Parse(strings.Split(string(data), "\n")), nil
}

// ParseString parses deck markdown from a string.
func ParseString(content string) *deck.Presentation {
	return Parse(strings.Split(content, "\n"))
}

// Parse converts deck markdown lines into a Presentation. Parsing never
// fails: unrecognized lines are treated as plain text or dropped, so a
// hand-edited or LLM-produced document always yields a usable deck.
func Parse(lines []string) *deck.Presentation {
	return ParseWithWarnings(lines, nil)
}

// ParseWithWarnings is Parse with a hook for non-fatal diagnostics. Dropped
// constructs are reported through warnf; a nil warnf discards them.
func ParseWithWarnings(lines []string, warnf func(format string, args ...interface{})) *deck.Presentation {
	if warnf == nil {
		warnf = func(string, ...interface{}) {}
	}
	data := deck.New()

	var currentSlide *deck.Slide
	var currentBlock *deck.ContentBlock
	inCover := true // before the first ## heading

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" || line == "---" {
			continue
		}
		if strings.HasPrefix(line, "<!--") {
			continue
		}

		if m := reH1.FindStringSubmatch(line); m != nil {
			data.CoverTitle = strings.TrimSpace(m[1])
			continue
		}

		if m := reH2.FindStringSubmatch(line); m != nil {
			inCover = false
			currentSlide = data.AddSlide(strings.TrimSpace(m[1]))
			currentBlock = nil
			continue
		}

		if m := reH3.FindStringSubmatch(line); m != nil {
			if currentSlide == nil {
				// A ### before any ## has no page to live on.
				warnf("subtitle %q appears before any chapter heading, dropped", strings.TrimSpace(m[1]))
				continue
			}
			currentBlock = currentSlide.AddBlock(strings.TrimSpace(m[1]))
			continue
		}

		if m := reBullet.FindStringSubmatch(line); m != nil {
			content := strings.TrimSpace(m[1])
			switch {
			case currentBlock != nil:
				currentBlock.Bullets = append(currentBlock.Bullets, content)
			case currentSlide != nil:
				// Bullets directly under a ## get an anonymous block.
				if len(currentSlide.Blocks) == 0 {
					currentBlock = currentSlide.AddBlock("")
					currentBlock.Bullets = append(currentBlock.Bullets, content)
				} else {
					last := currentSlide.LastBlock()
					last.Bullets = append(last.Bullets, content)
				}
			}
			// Bullets in the cover region are ignored.
			continue
		}

		if m := reKeyword.FindStringSubmatch(line); m != nil {
			if currentBlock != nil {
				currentBlock.Keyword = strings.TrimSpace(m[1])
			}
			continue
		}

		if inCover {
			if m := reKeyValue.FindStringSubmatch(line); m != nil {
				data.MetaInfo[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
			}
			continue
		}

		// Plain text: page description until the first ###, block content
		// after.
		if currentSlide == nil {
			continue
		}
		if currentBlock == nil {
			if currentSlide.Description != "" {
				currentSlide.Description += "\n" + line
			} else {
				currentSlide.Description = line
			}
		} else {
			currentBlock.Bullets = append(currentBlock.Bullets, line)
		}
	}

	return data
}
