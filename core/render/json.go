// JSON renderer. Marshals the parsed Document plus structural counts for
// inspection pipelines. The output reflects the block model, not a re-parse
// of the markdown source.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/docpress/core"
)

// JSONRenderer produces a structured JSON view of a Document.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

type blockJSON struct {
	Kind   string           `json:"kind"`
	Level  int              `json:"level,omitempty"`
	Text   string           `json:"text,omitempty"`
	Bold   []core.BoldRange `json:"bold,omitempty"`
	Items  []string         `json:"items,omitempty"`
	Rows   [][]string       `json:"rows,omitempty"`
	Height float64          `json:"height,omitempty"`
}

type structureJSON struct {
	Headings   int `json:"headings"`
	Paragraphs int `json:"paragraphs"`
	Lists      int `json:"lists"`
	Tables     int `json:"tables"`
}

type documentJSON struct {
	Title     string        `json:"title"`
	Theme     string        `json:"theme"`
	Blocks    []blockJSON   `json:"blocks"`
	Structure structureJSON `json:"structure"`
}

// Render marshals the document with indentation.
func (r *JSONRenderer) Render(doc *core.Document) ([]byte, error) {
	out := documentJSON{
		Title:  doc.Title,
		Theme:  doc.Theme.String(),
		Blocks: make([]blockJSON, 0, len(doc.Blocks)),
	}

	for _, b := range doc.Blocks {
		switch v := b.(type) {
		case core.Heading:
			out.Structure.Headings++
			out.Blocks = append(out.Blocks, blockJSON{
				Kind:  "heading",
				Level: v.Level,
				Text:  v.Text.Text,
				Bold:  v.Text.Bold,
			})
		case core.Paragraph:
			out.Structure.Paragraphs++
			out.Blocks = append(out.Blocks, blockJSON{
				Kind: "paragraph",
				Text: v.Text.Text,
				Bold: v.Text.Bold,
			})
		case core.BulletList:
			out.Structure.Lists++
			out.Blocks = append(out.Blocks, blockJSON{
				Kind:  "bullet_list",
				Items: itemTexts(v.Items),
			})
		case core.NumberedList:
			out.Structure.Lists++
			out.Blocks = append(out.Blocks, blockJSON{
				Kind:  "numbered_list",
				Items: itemTexts(v.Items),
			})
		case core.Table:
			out.Structure.Tables++
			out.Blocks = append(out.Blocks, blockJSON{
				Kind: "table",
				Rows: v.Rows,
			})
		case core.Spacer:
			out.Blocks = append(out.Blocks, blockJSON{
				Kind:   "spacer",
				Height: v.Height,
			})
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// ContentType returns the MIME type for JSON output.
func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

func itemTexts(items []core.InlineSpan) []string {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return texts
}
