// Conversion entry points. Each call parses the markdown exactly once and
// hands the resulting Document to a single renderer; the Document is not
// shared across renders.
package render

import (
	"github.com/gaurav-prasanna/docpress/core"
	"github.com/gaurav-prasanna/docpress/core/parse"
)

// ToPDF converts markdown into paginated PDF bytes. Unknown theme names
// silently fall back to the default theme.
func ToPDF(title, markdown, theme string) ([]byte, error) {
	doc := parse.Document(title, markdown, core.ParseTheme(theme))
	return NewPDFRenderer().Render(doc)
}

// ToDocx converts markdown into DOCX bytes. The flow format takes no theme.
func ToDocx(title, markdown string) ([]byte, error) {
	doc := parse.Document(title, markdown, core.ThemeDefault)
	return NewDocxRenderer().Render(doc)
}
