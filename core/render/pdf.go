// Package render provides the output renderers for docpress. Every renderer
// consumes the parsed core.Document; none of them re-reads markdown source.
//
// This file implements the paginated PDF renderer using gofpdf: US Letter
// pages, 0.75 inch margins, automatic page breaks, and per-theme colors.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/docpress/core"
)

const (
	pageMargin = 54 // 0.75 inch in points

	bodySize    = 11
	bodyLeading = 16
	listIndent  = 20

	tableFontSize  = 10
	tableHeaderRow = 32.0
	tableBodyRow   = 28.0
	tableCellPad   = 10.0
)

// headingStyle holds per-level type size and vertical spacing in points.
type headingStyle struct {
	size, before, after float64
}

var headingStyles = map[int]headingStyle{
	1: {size: 18, before: 20, after: 12},
	2: {size: 14, before: 16, after: 8},
	3: {size: 12, before: 12, after: 6},
}

// pdfCreationDate pins the /CreationDate stamp gofpdf embeds in its output.
// Together with catalog sorting it makes rendering the same Document twice
// yield byte-identical files; gofpdf otherwise emits its resource catalog in
// map iteration order.
var pdfCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer renders a Document as a themed, paginated PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the document into PDF bytes. It performs no I/O beyond
// producing the byte buffer.
func (r *PDFRenderer) Render(doc *core.Document) ([]byte, error) {
	pal := doc.Theme.Colors()

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCreationDate(pdfCreationDate)
	pdf.SetCatalogSort(true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if doc.Title != "" {
		setTextHex(pdf, pal.Title)
		pdf.SetFont("Helvetica", "B", 24)
		pdf.MultiCell(0, 28, tr(doc.Title), "", "L", false)
		pdf.Ln(12)
	}

	for _, b := range doc.Blocks {
		switch blk := b.(type) {
		case core.Heading:
			r.heading(pdf, tr, pal, blk)
		case core.Paragraph:
			pdf.Ln(6)
			setTextHex(pdf, pal.Body)
			r.writeSpan(pdf, tr, blk.Text, bodySize)
			pdf.Ln(bodyLeading)
			pdf.Ln(6)
		case core.BulletList:
			r.list(pdf, tr, pal, blk.Items, func(int) string { return "• " })
		case core.NumberedList:
			r.list(pdf, tr, pal, blk.Items, func(i int) string {
				return fmt.Sprintf("%d. ", i+1)
			})
		case core.Table:
			r.table(pdf, tr, pal, blk)
		case core.Spacer:
			pdf.Ln(blk.Height)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("building pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// ContentType returns the MIME type for PDF output.
func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (r *PDFRenderer) heading(pdf *gofpdf.Fpdf, tr func(string) string, pal core.Palette, h core.Heading) {
	style, ok := headingStyles[h.Level]
	if !ok {
		style = headingStyles[3]
	}
	pdf.Ln(style.before)
	setTextHex(pdf, pal.Heading)
	pdf.SetFont("Helvetica", "B", style.size)
	pdf.MultiCell(0, style.size*1.3, tr(h.Text.Text), "", "L", false)
	pdf.Ln(style.after)
}

// writeSpan flows the span across line breaks, switching to bold weight for
// the recorded ranges.
func (r *PDFRenderer) writeSpan(pdf *gofpdf.Fpdf, tr func(string) string, span core.InlineSpan, size float64) {
	for _, seg := range span.Segments() {
		style := ""
		if seg.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.Write(bodyLeading, tr(seg.Text))
	}
}

func (r *PDFRenderer) list(pdf *gofpdf.Fpdf, tr func(string) string, pal core.Palette, items []core.InlineSpan, marker func(int) string) {
	setTextHex(pdf, pal.Body)
	// Shift the left margin so wrapped item lines keep the indent.
	pdf.SetLeftMargin(pageMargin + listIndent)
	pdf.SetX(pageMargin + listIndent)
	for i, item := range items {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", bodySize)
		pdf.Write(bodyLeading, tr(marker(i)))
		r.writeSpan(pdf, tr, item, bodySize)
		pdf.Ln(bodyLeading)
	}
	pdf.Ln(4)
	pdf.SetLeftMargin(pageMargin)
	pdf.SetX(pageMargin)
}

// table draws a bordered grid with a shaded, bold header row. Column widths
// fit the widest cell and scale down when they exceed the content width.
// A table left with zero rows after separator stripping draws nothing.
func (r *PDFRenderer) table(pdf *gofpdf.Fpdf, tr func(string) string, pal core.Palette, t core.Table) {
	if len(t.Rows) == 0 {
		return
	}
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	widths := make([]float64, cols)
	for ri, row := range t.Rows {
		style := ""
		if ri == 0 {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, tableFontSize)
		for ci, cell := range row {
			w := pdf.GetStringWidth(tr(cell)) + 2*tableCellPad
			if w > widths[ci] {
				widths[ci] = w
			}
		}
	}

	pageW, _ := pdf.GetPageSize()
	avail := pageW - 2*pageMargin
	total := 0.0
	for _, w := range widths {
		total += w
	}
	if total > avail {
		scale := avail / total
		for i := range widths {
			widths[i] *= scale
		}
	}

	pdf.SetLineWidth(0.5)
	setDrawHex(pdf, "#e5e7eb")

	pdf.Ln(10)
	for ri, row := range t.Rows {
		rowH := tableBodyRow
		if ri == 0 {
			rowH = tableHeaderRow
			setFillHex(pdf, "#f8f9fa")
			setTextHex(pdf, "#374151")
			pdf.SetFont("Helvetica", "B", tableFontSize)
		} else {
			setFillHex(pdf, "#ffffff")
			setTextHex(pdf, pal.Body)
			pdf.SetFont("Helvetica", "", tableFontSize)
		}
		for ci := 0; ci < cols; ci++ {
			cell := ""
			if ci < len(row) {
				cell = row[ci]
			}
			pdf.CellFormat(widths[ci], rowH, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(10)
}

// hexRGB parses "#rrggbb" into color components. Malformed values come out
// black rather than failing a render.
func hexRGB(hex string) (red, green, blue int) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func setTextHex(pdf *gofpdf.Fpdf, hex string) {
	pdf.SetTextColor(hexRGB(hex))
}

func setFillHex(pdf *gofpdf.Fpdf, hex string) {
	pdf.SetFillColor(hexRGB(hex))
}

func setDrawHex(pdf *gofpdf.Fpdf, hex string) {
	pdf.SetDrawColor(hexRGB(hex))
}
