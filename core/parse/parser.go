// Package parse turns a constrained markdown subset into the core block
// model. Recognition is line-oriented: each line is classified by the first
// matcher that accepts it, and the list/table matchers greedily consume all
// immediately-contiguous matching lines before the cursor advances. Parsing
// never fails; unrecognized constructs degrade to plain paragraphs.
package parse

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/docpress/core"
)

var (
	numberedRe  = regexp.MustCompile(`^\d+\. `)
	separatorRe = regexp.MustCompile(`^\|[-:\s|]+\|$`)
)

// spacerHeight is the vertical gap a blank line becomes, in points.
const spacerHeight = 6

// matcher pairs a line predicate with the consume step that builds a block
// from it. A consume step may advance the cursor past several lines.
type matcher struct {
	name    string
	matches func(line string) bool
	consume func(c *cursor) core.Block
}

// blockMatchers is the recognition chain, highest priority first. The order
// is part of the grammar: the bold-paragraph rule yields to list and table
// prefixes, and the final paragraph rule accepts anything. New matchers
// must be inserted deliberately, not appended.
var blockMatchers = []matcher{
	{"spacer", isBlank, consumeSpacer},
	{"heading3", prefixMatch("### "), consumeHeading(3, "### ")},
	{"heading2", prefixMatch("## "), consumeHeading(2, "## ")},
	{"heading1", prefixMatch("# "), consumeHeading(1, "# ")},
	{"bold-paragraph", isBoldParagraph, consumeParagraph},
	{"bullet-list", isBulletItem, consumeBulletList},
	{"numbered-list", isNumberedItem, consumeNumberedList},
	{"table", isTableRow, consumeTable},
	{"paragraph", func(string) bool { return true }, consumeParagraph},
}

// Blocks parses markdown into an ordered block sequence. Every non-blank
// input line is consumed by exactly one block; blank lines become spacers,
// and table separator rows are discarded.
func Blocks(markdown string) []core.Block {
	trimmed := strings.TrimSpace(markdown)
	if trimmed == "" {
		return nil
	}

	c := &cursor{lines: strings.Split(trimmed, "\n")}
	var blocks []core.Block
	for !c.done() {
		line := c.line()
		for _, m := range blockMatchers {
			if m.matches(line) {
				blocks = append(blocks, m.consume(c))
				break
			}
		}
	}
	return blocks
}

// Document parses one conversion request into the model shared by all
// renderers.
func Document(title, markdown string, theme core.Theme) *core.Document {
	return &core.Document{
		Title:  title,
		Theme:  theme,
		Blocks: Blocks(markdown),
	}
}

// cursor walks the input lines. Lines are classified and consumed in
// whitespace-trimmed form.
type cursor struct {
	lines []string
	i     int
}

func (c *cursor) done() bool {
	return c.i >= len(c.lines)
}

func (c *cursor) line() string {
	return strings.TrimSpace(c.lines[c.i])
}

// --- Predicates ---

func isBlank(line string) bool {
	return line == ""
}

func prefixMatch(prefix string) func(string) bool {
	return func(line string) bool {
		return strings.HasPrefix(line, prefix)
	}
}

func isBulletItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func isNumberedItem(line string) bool {
	return numberedRe.MatchString(line)
}

func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|")
}

// isBoldParagraph accepts lines carrying ** markers unless the line opens a
// more specific construct, whose own rule must win.
func isBoldParagraph(line string) bool {
	return strings.Contains(line, "**") &&
		!isBulletItem(line) && !isNumberedItem(line) && !isTableRow(line)
}

// --- Consume steps ---

func consumeSpacer(c *cursor) core.Block {
	c.i++
	return core.Spacer{Height: spacerHeight}
}

func consumeHeading(level int, prefix string) func(*cursor) core.Block {
	return func(c *cursor) core.Block {
		text := strings.TrimPrefix(c.line(), prefix)
		c.i++
		return core.Heading{Level: level, Text: Inline(text)}
	}
}

func consumeParagraph(c *cursor) core.Block {
	line := c.line()
	c.i++
	return core.Paragraph{Text: Inline(line)}
}

func consumeBulletList(c *cursor) core.Block {
	var items []core.InlineSpan
	for !c.done() && isBulletItem(c.line()) {
		items = append(items, Inline(c.line()[2:]))
		c.i++
	}
	return core.BulletList{Items: items}
}

func consumeNumberedList(c *cursor) core.Block {
	var items []core.InlineSpan
	for !c.done() && isNumberedItem(c.line()) {
		items = append(items, Inline(numberedRe.ReplaceAllString(c.line(), "")))
		c.i++
	}
	return core.NumberedList{Items: items}
}

func consumeTable(c *cursor) core.Block {
	var rows [][]string
	for !c.done() && isTableRow(c.line()) {
		line := c.line()
		c.i++
		if separatorRe.MatchString(line) {
			continue
		}
		fields := strings.Split(line, "|")
		// The leading and trailing pipe produce empty first/last fields.
		cells := make([]string, 0, len(fields))
		for _, f := range fields[1 : len(fields)-1] {
			cells = append(cells, strings.TrimSpace(f))
		}
		rows = append(rows, cells)
	}
	return core.Table{Rows: rows}
}
