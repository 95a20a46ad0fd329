// Package markdown renders the document IR to deck markdown and parses deck
// markdown into the presentation data model.
//
// Deck markdown is the contract between the two pipeline halves:
//
//	# Cover title
//	Key: Value            (cover metadata)
//	---
//	## Chapter title
//	Chapter description.
//	### Block subtitle
//	- bullet
//	**关键词：keyword**
package markdown

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bibabu12315/word-ppt/internal/document"
)

// DefaultTitle is used when the document has no level-1 opening section.
const DefaultTitle = "项目成果汇报"

// Render converts a parsed document into deck markdown using the direct
// rule-based mapping.
func Render(doc *document.Document) string {
	var sb strings.Builder

	mainTitle := DefaultTitle
	if len(doc.Sections) > 0 && doc.Sections[0].Level == 1 {
		mainTitle = doc.Sections[0].Title
	}
	fmt.Fprintf(&sb, "# %s\n\n", mainTitle)

	for i, section := range doc.Sections {
		switch {
		case section.Level == 0:
			// Preamble: plain paragraphs only (typically cover metadata).
			for _, block := range section.Blocks {
				if block.Type == document.BlockTypeParagraph {
					sb.WriteString(block.Text + "\n")
				}
			}
			sb.WriteString("\n")
			continue

		case section.Level == 1:
			if i == 0 {
				// The opening section provided the cover title; its blocks
				// are emitted below as bare Key: Value lines.
			} else {
				sb.WriteString("\n---\n\n")
				fmt.Fprintf(&sb, "## %s\n\n", section.Title)
			}

		case section.Level == 2:
			fmt.Fprintf(&sb, "\n### %s\n\n", section.Title)

		default:
			prefix := strings.Repeat("#", section.Level+1)
			fmt.Fprintf(&sb, "\n%s %s\n\n", prefix, section.Title)
		}

		writeBlocks(&sb, section.Blocks)
	}

	sb.WriteString("\n---\n")
	return sb.String()
}

func writeBlocks(sb *strings.Builder, blocks []document.Block) {
	for _, block := range blocks {
		switch block.Type {
		case document.BlockTypeParagraph:
			sb.WriteString(block.Text + "\n\n")
		case document.BlockTypeList:
			for _, item := range block.Items {
				sb.WriteString("- " + item + "\n")
			}
			sb.WriteString("\n")
		}
	}
}

// Flatten converts a document into tagged plain text for LLM restructuring.
// Section boundaries are preserved as bracketed markers so the model can see
// the original hierarchy.
func Flatten(doc *document.Document) string {
	var sb strings.Builder

	if doc.Meta != (document.Meta{}) {
		if data, err := json.Marshal(doc.Meta); err == nil {
			fmt.Fprintf(&sb, "[Document metadata]\n%s\n", data)
		}
	}

	for _, section := range doc.Sections {
		title := section.Title
		if title == "" {
			title = "Untitled section"
		}
		fmt.Fprintf(&sb, "\n[Section (Level %d): %s]\n", section.Level, title)

		for _, block := range section.Blocks {
			switch block.Type {
			case document.BlockTypeParagraph:
				sb.WriteString(block.Text + "\n")
			case document.BlockTypeList:
				for _, item := range block.Items {
					sb.WriteString("- " + item + "\n")
				}
			}
		}
	}

	return sb.String()
}
