package pptx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gopresentation "github.com/VantageDataChat/GoPPT"

	"github.com/bibabu12315/word-ppt/internal/deck"
)

func demoDeck(chapters int) *deck.Presentation {
	data := deck.New()
	data.CoverTitle = "项目成果汇报"
	data.MetaInfo["项目名称"] = "智能质检平台"
	data.MetaInfo["汇报人"] = "张三"
	data.MetaInfo["日期"] = "2026-08"

	for i := 1; i <= chapters; i++ {
		slide := data.AddSlide(fmt.Sprintf("第%d章", i))
		slide.Description = "本章概述"
		block := slide.AddBlock("核心成果")
		block.Bullets = append(block.Bullets, "完成模型上线", "准确率提升至 98%")
		block.Keyword = "质检"
	}
	return data
}

func generateDeck(t *testing.T, data *deck.Presentation) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pptx")
	outputPath := filepath.Join(dir, "out", "result.pptx")

	if err := CreateDemoTemplate(templatePath); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	var warnings []string
	g := NewGenerator(templatePath, outputPath)
	g.Warnf = func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	if err := g.Generate(data); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	return outputPath, warnings
}

func slideTexts(t *testing.T, slide *gopresentation.Slide) string {
	t.Helper()
	var sb strings.Builder
	for _, s := range slide.GetShapes() {
		if rts, ok := s.(*gopresentation.RichTextShape); ok {
			sb.WriteString(shapeText(rts))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func TestGenerator_SlideCount(t *testing.T) {
	out, _ := generateDeck(t, demoDeck(3))

	pres, err := gopresentation.Open(out)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	// cover + toc + 3 chapters + end
	if got := pres.GetSlideCount(); got != 6 {
		t.Errorf("expected 6 slides, got %d", got)
	}
}

func TestGenerator_CoverFilled(t *testing.T) {
	out, _ := generateDeck(t, demoDeck(1))

	pres, _ := gopresentation.Open(out)
	cover, _ := pres.GetSlide(slideCover)
	ix := indexShapes(cover)

	title, ok := ix.richText("cover_title")
	if !ok {
		t.Fatal("expected cover_title in output")
	}
	if got := shapeText(title); got != "项目成果汇报" {
		t.Errorf("expected cover title filled, got %q", got)
	}

	presenter, ok := ix.richText("cover_presenter")
	if !ok {
		t.Fatal("expected cover_presenter in output")
	}
	if got := shapeText(presenter); got != "张三" {
		t.Errorf("expected presenter filled, got %q", got)
	}

	// No company metadata: template text stays.
	company, ok := ix.richText("cover_company")
	if !ok {
		t.Fatal("expected cover_company in output")
	}
	if got := shapeText(company); got != "cover_company" {
		t.Errorf("expected untouched placeholder, got %q", got)
	}
}

func TestGenerator_TOCEntries(t *testing.T) {
	out, _ := generateDeck(t, demoDeck(3))

	pres, _ := gopresentation.Open(out)
	toc, _ := pres.GetSlide(slideTOC)
	ix := indexShapes(toc)

	for i := 1; i <= 3; i++ {
		title, ok := ix.richText(shapeName(i, "title"))
		if !ok {
			t.Fatalf("expected TOC entry page%d_title", i)
		}
		if got := shapeText(title); got != fmt.Sprintf("第%d章", i) {
			t.Errorf("TOC entry %d: expected chapter title, got %q", i, got)
		}
		num, ok := ix.richText(shapeName(i, "title_num"))
		if !ok {
			t.Fatalf("expected TOC number page%d_title_num", i)
		}
		if got := shapeText(num); got != fmt.Sprintf("%02d", i) {
			t.Errorf("TOC number %d: expected %02d, got %q", i, i, got)
		}
	}

	// Cloned entries must not overlap the prototype.
	first, _ := ix.richText(shapeName(1, "title"))
	secondEntry, _ := ix.richText(shapeName(2, "title"))
	if secondEntry.GetOffsetY() <= first.GetOffsetY() && secondEntry.GetOffsetX() <= first.GetOffsetX() {
		t.Error("expected the cloned TOC entry to be offset from the prototype")
	}
}

func TestGenerator_ChapterSlides(t *testing.T) {
	out, _ := generateDeck(t, demoDeck(2))

	pres, _ := gopresentation.Open(out)

	for i := 0; i < 2; i++ {
		slide, err := pres.GetSlide(slideContent + i)
		if err != nil {
			t.Fatalf("failed to read chapter slide %d: %v", i, err)
		}
		ix := indexShapes(slide)
		page := i + 1

		title, ok := ix.richText(shapeName(page, "title"))
		if !ok {
			t.Fatalf("expected page%d_title on chapter slide %d", page, i)
		}
		if got := shapeText(title); got != fmt.Sprintf("第%d章", page) {
			t.Errorf("chapter %d title: got %q", page, got)
		}

		body, ok := ix.richText(shapeName(page, "bullet1"))
		if !ok {
			t.Fatalf("expected page%d_bullet1 on chapter slide %d", page, i)
		}
		text := shapeText(body)
		if !strings.Contains(text, "核心成果") || !strings.Contains(text, "完成模型上线") {
			t.Errorf("chapter %d body missing content: %q", page, text)
		}
		paras := body.GetParagraphs()
		if len(paras) != 3 {
			t.Fatalf("expected subtitle + 2 bullets = 3 paragraphs, got %d", len(paras))
		}
		if f := firstRunFont(body); f == nil || !f.Bold {
			t.Error("expected bolded subtitle run")
		}
		if paras[1].GetAlignment().Level != 1 {
			t.Error("expected bullet paragraphs at indent level 1")
		}
	}
}

func TestGenerator_ChapterSlidesIndependent(t *testing.T) {
	out, _ := generateDeck(t, demoDeck(2))

	pres, _ := gopresentation.Open(out)
	first, _ := pres.GetSlide(slideContent)
	second, _ := pres.GetSlide(slideContent + 1)

	t1 := slideTexts(t, first)
	t2 := slideTexts(t, second)
	if !strings.Contains(t1, "第1章") || strings.Contains(t1, "第2章") {
		t.Errorf("first chapter slide has wrong titles: %q", t1)
	}
	if !strings.Contains(t2, "第2章") || strings.Contains(t2, "第1章") {
		t.Errorf("second chapter slide has wrong titles: %q", t2)
	}
}

func TestGenerator_TruncatesChapters(t *testing.T) {
	data := demoDeck(10)
	out, warnings := generateDeck(t, data)

	pres, _ := gopresentation.Open(out)
	// cover + toc + 8 chapters + end
	if got := pres.GetSlideCount(); got != 11 {
		t.Errorf("expected 11 slides after truncation, got %d", got)
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w, "dropped") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a truncation warning, got %v", warnings)
	}
}

func TestGenerator_EmptyDeck(t *testing.T) {
	data := deck.New()
	data.CoverTitle = "空演示"
	out, _ := generateDeck(t, data)

	pres, _ := gopresentation.Open(out)
	// cover + toc + end, no content prototype left behind
	if got := pres.GetSlideCount(); got != 3 {
		t.Errorf("expected 3 slides for an empty deck, got %d", got)
	}
}

func TestGenerator_TemplateNotModified(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pptx")
	if err := CreateDemoTemplate(templatePath); err != nil {
		t.Fatalf("failed to create template: %v", err)
	}
	before, err := os.ReadFile(templatePath)
	if err != nil {
		t.Fatal(err)
	}

	g := NewGenerator(templatePath, filepath.Join(dir, "out.pptx"))
	g.Warnf = func(string, ...interface{}) {}
	if err := g.Generate(demoDeck(3)); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	after, err := os.ReadFile(templatePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("template file must not be modified")
	}
}

func TestGenerator_MissingTemplate(t *testing.T) {
	g := NewGenerator(filepath.Join(t.TempDir(), "absent.pptx"), "out.pptx")
	if err := g.Generate(deck.New()); err == nil {
		t.Error("expected error for a missing template")
	}
}

func TestGenerator_NilData(t *testing.T) {
	g := NewGenerator("template.pptx", "out.pptx")
	if err := g.Generate(nil); err == nil {
		t.Error("expected error for nil data")
	}
}

// writeNavTemplate builds a template whose content prototype carries nav
// labels for several pages on the one slide, the way designed templates
// often do.
func writeNavTemplate(t *testing.T, path string) {
	t.Helper()
	pres := gopresentation.New()

	cover, err := pres.GetSlide(0)
	if err != nil {
		t.Fatal(err)
	}
	namedShape(cover, "cover_title")

	toc := pres.CreateSlide()
	namedShape(toc, "page1_title")
	namedShape(toc, "page1_title_num")

	content := pres.CreateSlide()
	namedShape(content, "page1_title")
	namedShape(content, "page2_title")
	namedShape(content, "page3_title")
	namedShape(content, "page1_desc")
	namedShape(content, "page1_bullet1")

	end := pres.CreateSlide()
	namedShape(end, "cover_presenter")

	if err := pres.Save(path); err != nil {
		t.Fatalf("failed to save nav template: %v", err)
	}
}

func TestGenerator_NavTemplateUniqueNames(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pptx")
	outputPath := filepath.Join(dir, "out.pptx")
	writeNavTemplate(t, templatePath)

	g := NewGenerator(templatePath, outputPath)
	g.Warnf = func(string, ...interface{}) {}
	if err := g.Generate(demoDeck(3)); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	pres, err := gopresentation.Open(outputPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}

	for i := 0; i < 3; i++ {
		slide, err := pres.GetSlide(slideContent + i)
		if err != nil {
			t.Fatalf("failed to read chapter slide %d: %v", i, err)
		}
		page := i + 1

		seen := make(map[string]int)
		for _, s := range slide.GetShapes() {
			if name := s.GetName(); name != "" {
				seen[name]++
			}
		}
		for name, n := range seen {
			if n > 1 {
				t.Errorf("chapter %d: shape name %q appears %d times", page, name, n)
			}
		}

		ix := indexShapes(slide)
		title, ok := ix.richText(shapeName(page, "title"))
		if !ok {
			t.Fatalf("chapter %d: expected page%d_title", page, page)
		}
		if got := shapeText(title); got != fmt.Sprintf("第%d章", page) {
			t.Errorf("chapter %d title: got %q", page, got)
		}

		// Nav labels belonging to other pages keep their template text.
		for p := 1; p <= 3; p++ {
			if p == page {
				continue
			}
			if nav, found := ix.richText(shapeName(p, "title")); found {
				if got := shapeText(nav); got != shapeName(p, "title") {
					t.Errorf("chapter %d: nav label page%d_title overwritten with %q", page, p, got)
				}
			}
		}
	}
}

func TestGenerator_MissingShapesWarnNotError(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pptx")

	// Four slides with none of the fillable shapes.
	pres := gopresentation.New()
	pres.CreateSlide()
	pres.CreateSlide()
	pres.CreateSlide()
	if err := pres.Save(templatePath); err != nil {
		t.Fatalf("failed to save template: %v", err)
	}

	var warnings []string
	g := NewGenerator(templatePath, filepath.Join(dir, "out.pptx"))
	g.Warnf = func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}
	if err := g.Generate(demoDeck(1)); err != nil {
		t.Fatalf("missing shapes must degrade to warnings, got error: %v", err)
	}

	joined := strings.Join(warnings, "\n")
	for _, want := range []string{"page1_title", "page1_bullet1"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected a warning naming %q, got %v", want, warnings)
		}
	}
	if !strings.Contains(joined, "table of contents") {
		t.Errorf("expected a TOC warning, got %v", warnings)
	}
}
