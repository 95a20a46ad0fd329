package document

import "testing"

func TestNew(t *testing.T) {
	doc := New("report.docx")

	if doc.Meta.Source != "report.docx" {
		t.Errorf("unexpected source: %q", doc.Meta.Source)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected preamble section, got %d sections", len(doc.Sections))
	}
	if doc.Sections[0].Level != 0 {
		t.Errorf("expected preamble level 0, got %d", doc.Sections[0].Level)
	}
}

func TestStartSection(t *testing.T) {
	doc := New("a.docx")
	s := doc.StartSection(2, "小节")

	if doc.Current() != s {
		t.Error("expected new section to be current")
	}
	if s.Level != 2 || s.Title != "小节" {
		t.Errorf("unexpected section: level %d title %q", s.Level, s.Title)
	}
}

func TestTrim(t *testing.T) {
	doc := New("a.docx")
	doc.StartSection(1, "第一章")
	doc.Trim()

	if len(doc.Sections) != 1 {
		t.Fatalf("expected empty preamble removed, got %d sections", len(doc.Sections))
	}
	if doc.Sections[0].Title != "第一章" {
		t.Errorf("unexpected first section: %q", doc.Sections[0].Title)
	}
}

func TestTrim_KeepsNonEmptyPreamble(t *testing.T) {
	doc := New("a.docx")
	doc.Current().AddParagraph("封面说明")
	doc.StartSection(1, "第一章")
	doc.Trim()

	if len(doc.Sections) != 2 {
		t.Fatalf("expected preamble kept, got %d sections", len(doc.Sections))
	}
}

func TestTrim_OnlyPreamble(t *testing.T) {
	doc := New("a.docx")
	doc.Trim()

	if len(doc.Sections) != 1 {
		t.Fatalf("expected lone preamble kept, got %d sections", len(doc.Sections))
	}
}

func TestAddListItem_Merging(t *testing.T) {
	doc := New("a.docx")
	s := doc.Current()

	s.AddListItem("一")
	s.AddListItem("二")
	s.AddParagraph("中断")
	s.AddListItem("三")

	if len(s.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(s.Blocks))
	}
	if len(s.Blocks[0].Items) != 2 {
		t.Errorf("expected first list to hold 2 items, got %d", len(s.Blocks[0].Items))
	}
	if s.Blocks[1].Type != BlockTypeParagraph {
		t.Errorf("expected paragraph block, got %s", s.Blocks[1].Type)
	}
	if len(s.Blocks[2].Items) != 1 {
		t.Errorf("expected new list after paragraph, got %d items", len(s.Blocks[2].Items))
	}
}
