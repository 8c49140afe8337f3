package render

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

// docxPart unzips one part of a rendered DOCX package.
func docxPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s missing from package", name)
	return ""
}

func renderDocx(t *testing.T, title, md string) []byte {
	t.Helper()
	data, err := ToDocx(title, md)
	if err != nil {
		t.Fatalf("ToDocx: %v", err)
	}
	return data
}

func TestDocxPackageParts(t *testing.T) {
	data := renderDocx(t, "Meeting Notes", "## Attendees\n\n- John Smith")
	for _, part := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/numbering.xml",
		"word/document.xml",
	} {
		docxPart(t, data, part)
	}
}

func TestDocxTitleCentered(t *testing.T) {
	doc := docxPart(t, renderDocx(t, "Meeting Notes", ""), "word/document.xml")
	if !strings.Contains(doc, `<w:pStyle w:val="Title"/><w:jc w:val="center"/>`) {
		t.Errorf("title paragraph is not a centered Title style:\n%s", doc)
	}
	if !strings.Contains(doc, ">Meeting Notes</w:t>") {
		t.Errorf("title text missing from document body")
	}
}

func TestDocxHeadingsAndLists(t *testing.T) {
	md := "# One\n## Two\n### Three\n- bullet\n1. numbered"
	doc := docxPart(t, renderDocx(t, "T", md), "word/document.xml")

	for _, want := range []string{
		`<w:pStyle w:val="Heading1"/>`,
		`<w:pStyle w:val="Heading2"/>`,
		`<w:pStyle w:val="Heading3"/>`,
		`<w:numId w:val="1"/>`,
		`<w:numId w:val="2"/>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %s", want)
		}
	}
}

func TestDocxBoldRuns(t *testing.T) {
	doc := docxPart(t, renderDocx(t, "T", "pay **50%** upfront"), "word/document.xml")
	if !strings.Contains(doc, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">50%</w:t>`) {
		t.Errorf("bold range did not become a bold run:\n%s", doc)
	}
	if strings.Contains(doc, "**") {
		t.Errorf("literal ** markers leaked into the document")
	}
}

// Tables and spacers have no flow-format mapping and are dropped.
func TestDocxDropsTablesAndSpacers(t *testing.T) {
	md := "before\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\nafter"
	doc := docxPart(t, renderDocx(t, "T", md), "word/document.xml")
	if strings.Contains(doc, "<w:tbl>") {
		t.Errorf("table rendered despite flow-format drop")
	}
	if !strings.Contains(doc, ">before</w:t>") || !strings.Contains(doc, ">after</w:t>") {
		t.Errorf("surrounding paragraphs missing")
	}
}

func TestDocxEscapesMarkup(t *testing.T) {
	doc := docxPart(t, renderDocx(t, "T", "5 < 6 & 7 > 2"), "word/document.xml")
	if !strings.Contains(doc, "5 &lt; 6 &amp; 7 &gt; 2") {
		t.Errorf("text was not XML-escaped:\n%s", doc)
	}
}

func TestDocxDeterministic(t *testing.T) {
	a := renderDocx(t, "Doc", sampleMarkdown)
	b := renderDocx(t, "Doc", sampleMarkdown)
	if !bytes.Equal(a, b) {
		t.Errorf("two renders of the same document differ")
	}
}
