package pptx

import (
	"fmt"
	"os"
	"path/filepath"

	gopresentation "github.com/VantageDataChat/GoPPT"
)

// CreateDemoTemplate writes a minimal four-slide template (cover, table of
// contents, content prototype, end page) with the expected shape naming.
// Used when no real template is available.
func CreateDemoTemplate(path string) error {
	pres := gopresentation.New()

	cover, err := pres.GetSlide(0)
	if err != nil {
		return fmt.Errorf("failed to build demo template: %w", err)
	}
	toc := pres.CreateSlide()
	content := pres.CreateSlide()
	end := pres.CreateSlide()

	inch := gopresentation.Inch

	// Cover
	title := demoTextBox(cover, "cover_title", "Cover Title Placeholder", inch(1), inch(2), inch(8), inch(1.5), 44)
	centerText(title)
	metaFields := []string{"cover_company", "cover_project", "cover_presenter", "cover_dept", "cover_date"}
	for i, field := range metaFields {
		tb := demoTextBox(cover, field, field, inch(1), inch(4)+int64(i)*inch(0.5), inch(8), inch(0.5), 12)
		centerText(tb)
	}

	// Table of contents
	demoTextBox(toc, "", "Table of Contents", inch(0.5), inch(0.5), inch(3), inch(1), 32)
	numProto := demoTextBox(toc, "page1_title_num", "01", inch(1), inch(2), inch(1), inch(0.5), 24)
	if f := firstRunFont(numProto); f != nil {
		f.Color = gopresentation.ColorRed
	}
	demoTextBox(toc, "page1_title", "Chapter Title Prototype", inch(2.2), inch(2), inch(6), inch(0.5), 24)

	// Content prototype
	nav := demoTextBox(content, "page1_title", "Nav Item", inch(0.5), inch(0.5), inch(2), inch(0.5), 14)
	if f := firstRunFont(nav); f != nil {
		f.Bold = true
	}
	desc := demoTextBox(content, "page1_desc", "Description text goes here...", inch(0.5), inch(1.5), inch(9), inch(1), 12)
	if f := firstRunFont(desc); f != nil {
		f.Italic = true
	}
	demoTextBox(content, "page1_bullet1", "Content Body Placeholder", inch(0.5), inch(3), inch(9), inch(4), 18)

	// End page
	thanks := demoTextBox(end, "", "Thank You", inch(1), inch(3), inch(8), inch(2), 50)
	centerText(thanks)
	presenter := demoTextBox(end, "cover_presenter", "Presenter Name", inch(1), inch(5), inch(8), inch(1), 12)
	centerText(presenter)

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create template directory: %w", err)
		}
	}
	if err := pres.Save(path); err != nil {
		return fmt.Errorf("failed to save demo template: %w", err)
	}
	return nil
}

func demoTextBox(slide *gopresentation.Slide, name, text string, x, y, w, h int64, fontSize int) *gopresentation.RichTextShape {
	tb := slide.CreateRichTextShape()
	tb.SetOffsetX(x).SetOffsetY(y).SetWidth(w).SetHeight(h)
	if name != "" {
		tb.SetName(name)
	}
	run := tb.CreateTextRun(text)
	run.GetFont().SetSize(fontSize)
	return tb
}

func centerText(rts *gopresentation.RichTextShape) {
	rts.GetActiveParagraph().GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
}
