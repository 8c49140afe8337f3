package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/docpress/core"
)

// boldRe matches one **bold** span, shortest match, left to right.
// No nesting and no escaping; an unpaired ** stays literal text.
var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Inline strips paired ** delimiters from text and records each enclosed
// run as a bold range over rune offsets in the output text. Text already
// free of delimiters passes through unchanged, so the transform is
// idempotent.
func Inline(text string) core.InlineSpan {
	matches := boldRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return core.InlineSpan{Text: text}
	}

	var b strings.Builder
	var bold []core.BoldRange
	runes := 0
	pos := 0
	for _, m := range matches {
		// m[0]:m[1] is the full match, m[2]:m[3] the enclosed text,
		// all in byte offsets.
		before := text[pos:m[0]]
		b.WriteString(before)
		runes += utf8.RuneCountInString(before)

		inner := text[m[2]:m[3]]
		b.WriteString(inner)
		n := utf8.RuneCountInString(inner)
		bold = append(bold, core.BoldRange{Start: runes, End: runes + n})
		runes += n

		pos = m[1]
	}
	b.WriteString(text[pos:])

	return core.InlineSpan{Text: b.String(), Bold: bold}
}
