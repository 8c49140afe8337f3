// Package core defines the document model and renderer contract for docpress.
// A Document is the canonical intermediate form: every input is parsed into
// it exactly once, and every renderer consumes it without re-reading the
// source text.
package core

// BoldRange marks a run of bold text inside an InlineSpan.
// Offsets are rune positions into Text, half-open [Start, End).
type BoldRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// InlineSpan is a text run plus the sub-ranges rendered in bold weight.
type InlineSpan struct {
	Text string
	Bold []BoldRange
}

// Segment is a maximal run of an InlineSpan with uniform weight.
type Segment struct {
	Text string
	Bold bool
}

// Segments splits the span into maximal runs of uniform weight, in order.
// An empty span yields no segments.
func (s InlineSpan) Segments() []Segment {
	if len(s.Bold) == 0 {
		if s.Text == "" {
			return nil
		}
		return []Segment{{Text: s.Text}}
	}

	runes := []rune(s.Text)
	var segs []Segment
	pos := 0
	for _, r := range s.Bold {
		if r.Start > pos {
			segs = append(segs, Segment{Text: string(runes[pos:r.Start])})
		}
		segs = append(segs, Segment{Text: string(runes[r.Start:r.End]), Bold: true})
		pos = r.End
	}
	if pos < len(runes) {
		segs = append(segs, Segment{Text: string(runes[pos:])})
	}
	return segs
}

// Block is one structural unit of a parsed document. The set of
// implementations is closed: every renderer switches exhaustively over it,
// so adding a block kind is a compile-time obligation in each renderer.
type Block interface {
	block()
}

// Heading is a level 1-3 section heading.
type Heading struct {
	Level int
	Text  InlineSpan
}

// Paragraph is a plain body paragraph.
type Paragraph struct {
	Text InlineSpan
}

// BulletList groups contiguous "- " / "* " items into one list.
type BulletList struct {
	Items []InlineSpan
}

// NumberedList groups contiguous "1. "-style items into one list.
type NumberedList struct {
	Items []InlineSpan
}

// Table holds rows of plain-text cells. The first row is the header.
type Table struct {
	Rows [][]string
}

// Spacer is fixed vertical whitespace, in points.
type Spacer struct {
	Height float64
}

func (Heading) block()      {}
func (Paragraph) block()    {}
func (BulletList) block()   {}
func (NumberedList) block() {}
func (Table) block()        {}
func (Spacer) block()       {}

// Document is the parsed form of one conversion request. It is constructed
// fresh per request and owned by the single render call that consumes it;
// nothing mutates it after construction.
type Document struct {
	Title  string
	Theme  Theme
	Blocks []Block
}

// Renderer converts a Document into a final binary format.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
	// ContentType returns the MIME type served for this format.
	ContentType() string
}
