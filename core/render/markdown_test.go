package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/docpress/core"
	"github.com/gaurav-prasanna/docpress/core/parse"
)

func TestMarkdownRenderer(t *testing.T) {
	doc := &core.Document{
		Title: "Notes",
		Blocks: []core.Block{
			core.Heading{Level: 2, Text: parse.Inline("Agenda")},
			core.Spacer{Height: 6},
			core.BulletList{Items: []core.InlineSpan{parse.Inline("**budget** review")}},
			core.NumberedList{Items: []core.InlineSpan{parse.Inline("first"), parse.Inline("second")}},
			core.Table{Rows: [][]string{{"A", "B"}, {"1", "2"}}},
		},
	}

	data, err := NewMarkdownRenderer().Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(data)

	want := "# Notes\n\n" +
		"## Agenda\n" +
		"\n" +
		"- **budget** review\n" +
		"1. first\n" +
		"2. second\n" +
		"| A | B |\n" +
		"|---|---|\n" +
		"| 1 | 2 |\n"
	if got != want {
		t.Errorf("markdown output:\n%q\nwant:\n%q", got, want)
	}
}

// Rendering to markdown and re-parsing reproduces the same block structure
// for canonical input.
func TestMarkdownRoundTrip(t *testing.T) {
	original := parse.Blocks(sampleMarkdown)

	data, err := NewMarkdownRenderer().Render(&core.Document{Blocks: original})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	reparsed := parse.Blocks(string(data))

	if !reflect.DeepEqual(original, reparsed) {
		t.Errorf("round trip changed the block structure:\n%#v\nvs\n%#v", original, reparsed)
	}
}

func TestMarkdownContentType(t *testing.T) {
	r := NewMarkdownRenderer()
	if r.Extension() != ".md" {
		t.Errorf("Extension() = %q", r.Extension())
	}
	if !strings.HasPrefix(r.ContentType(), "text/markdown") {
		t.Errorf("ContentType() = %q", r.ContentType())
	}
}
