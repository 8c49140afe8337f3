// Markdown renderer. Serializes a Document back to canonical markdown,
// reinserting ** delimiters around recorded bold ranges. Used for the
// --markdown output format and for HTML/URL inputs where markdown is the
// requested artifact.
package render

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/docpress/core"
)

// MarkdownRenderer writes the canonical markdown form of a Document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render serializes the document as markdown bytes.
func (r *MarkdownRenderer) Render(doc *core.Document) ([]byte, error) {
	var b strings.Builder
	if doc.Title != "" {
		b.WriteString("# ")
		b.WriteString(doc.Title)
		b.WriteString("\n\n")
	}

	for _, blk := range doc.Blocks {
		switch v := blk.(type) {
		case core.Heading:
			b.WriteString(strings.Repeat("#", v.Level))
			b.WriteString(" ")
			b.WriteString(spanMarkdown(v.Text))
			b.WriteString("\n")
		case core.Paragraph:
			b.WriteString(spanMarkdown(v.Text))
			b.WriteString("\n")
		case core.BulletList:
			for _, item := range v.Items {
				b.WriteString("- ")
				b.WriteString(spanMarkdown(item))
				b.WriteString("\n")
			}
		case core.NumberedList:
			for i, item := range v.Items {
				b.WriteString(strconv.Itoa(i+1) + ". ")
				b.WriteString(spanMarkdown(item))
				b.WriteString("\n")
			}
		case core.Table:
			writeTableMarkdown(&b, v)
		case core.Spacer:
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// ContentType returns the MIME type for markdown output.
func (r *MarkdownRenderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// spanMarkdown re-wraps bold segments in ** delimiters.
func spanMarkdown(span core.InlineSpan) string {
	var b strings.Builder
	for _, seg := range span.Segments() {
		if seg.Bold {
			b.WriteString("**")
			b.WriteString(seg.Text)
			b.WriteString("**")
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func writeTableMarkdown(b *strings.Builder, t core.Table) {
	for ri, row := range t.Rows {
		b.WriteString("| ")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString(" |\n")
		if ri == 0 {
			b.WriteString("|")
			for range row {
				b.WriteString("---|")
			}
			b.WriteString("\n")
		}
	}
}
