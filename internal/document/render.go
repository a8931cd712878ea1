package document

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily  = "Helvetica"
	pageSize    = "A4"
	pageMargin  = 15.0 // mm
	cellPadX    = 1.5
	cellPadY    = 1.2
	gridWidth   = 0.2
	titleSize   = 16.0
	headingSize = 13.0
	sectionGap  = 7.5
	titleGap    = 12.0

	ptToMM  = 25.4 / 72
	leading = 1.25
)

func lineHeight(fontSize float64) float64 {
	return fontSize * ptToMM * leading
}

// renderer draws a Layout onto a single fpdf document.
type renderer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	left   float64
	width  float64
	bottom float64
}

func newRenderer(pdf *fpdf.Fpdf) *renderer {
	pageW, pageH := pdf.GetPageSize()
	return &renderer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		left:   pageMargin,
		width:  pageW - 2*pageMargin,
		bottom: pageH - pageMargin,
	}
}

func (r *renderer) title(text string) {
	r.pdf.SetFont(fontFamily, "B", titleSize)
	r.setTextColor(Black)
	r.pdf.CellFormat(r.width, lineHeight(titleSize), r.tr(text), "", 1, "C", false, 0, "")
	r.pdf.Ln(titleGap)
}

// section draws one heading and its table. A row that cannot fit on an empty page
// below the repeated header is an error: rows are never split.
func (r *renderer) section(s Section) error {
	widths := r.columnWidths(s.Table.Style.Columns)

	var header renderedRow
	if len(s.Table.Header) > 0 {
		header = r.layoutRow(s.Table.Header, widths, s.Table.Style.Header, s.Table.Style.HeaderPadding)
	}

	if s.Heading != "" {
		hh := lineHeight(headingSize) + 2
		// keep the heading with the table header
		r.ensure(hh + header.height)
		r.pdf.SetFont(fontFamily, "B", headingSize)
		r.setTextColor(Black)
		r.pdf.CellFormat(r.width, lineHeight(headingSize), r.tr(s.Heading), "", 1, "L", false, 0, "")
		r.pdf.Ln(2)
	}

	if len(s.Table.Header) > 0 {
		r.ensure(header.height)
		r.draw(header, s.Table.Style.Grid)
	}
	room := r.bottom - pageMargin - header.height
	for i, cells := range s.Table.Rows {
		row := r.layoutRow(cells, widths, s.Table.Style.BodyStyle(i), 0)
		if row.height > room {
			return fmt.Errorf("row %d is %.1fmm tall, a page holds %.1fmm", i+1, row.height, room)
		}
		if r.pdf.GetY()+row.height > r.bottom {
			r.pdf.AddPage()
			if len(s.Table.Header) > 0 {
				r.draw(header, s.Table.Style.Grid)
			}
		}
		r.draw(row, s.Table.Style.Grid)
	}
	r.pdf.Ln(sectionGap)
	return nil
}

// ensure starts a new page when h does not fit below the cursor.
func (r *renderer) ensure(h float64) {
	if r.pdf.GetY()+h > r.bottom {
		r.pdf.AddPage()
	}
}

func (r *renderer) columnWidths(props []float64) []float64 {
	var total float64
	for _, p := range props {
		total += p
	}
	out := make([]float64, len(props))
	for i, p := range props {
		out[i] = r.width * p / total
	}
	return out
}

type renderedRow struct {
	style  CellStyle
	widths []float64
	lines  [][][]byte
	height float64
}

func (r *renderer) setFont(cs CellStyle) {
	style := ""
	if cs.Bold {
		style = "B"
	}
	r.pdf.SetFont(fontFamily, style, cs.FontSize)
}

func (r *renderer) setTextColor(c Color) {
	r.pdf.SetTextColor(c.R, c.G, c.B)
}

// layoutRow wraps every cell and computes the row height; nothing is drawn.
func (r *renderer) layoutRow(cells []string, widths []float64, cs CellStyle, padBottom float64) renderedRow {
	r.setFont(cs)
	row := renderedRow{style: cs, widths: widths, lines: make([][][]byte, len(cells))}
	maxLines := 1
	for i, c := range cells {
		row.lines[i] = r.pdf.SplitLines([]byte(r.tr(c)), widths[i]-2*cellPadX)
		if n := len(row.lines[i]); n > maxLines {
			maxLines = n
		}
	}
	row.height = float64(maxLines)*lineHeight(cs.FontSize) + 2*cellPadY + padBottom
	return row
}

func (r *renderer) draw(row renderedRow, grid Color) {
	r.setFont(row.style)
	r.pdf.SetFillColor(row.style.Fill.R, row.style.Fill.G, row.style.Fill.B)
	r.pdf.SetDrawColor(grid.R, grid.G, grid.B)
	r.pdf.SetLineWidth(gridWidth)
	r.setTextColor(row.style.Text)

	lh := lineHeight(row.style.FontSize)
	x, y := r.left, r.pdf.GetY()
	for i, w := range row.widths {
		r.pdf.Rect(x, y, w, row.height, "FD")
		for j, line := range row.lines[i] {
			r.pdf.SetXY(x+cellPadX, y+cellPadY+float64(j)*lh)
			r.pdf.CellFormat(w-2*cellPadX, lh, string(line), "", 0, "L", false, 0, "")
		}
		x += w
	}
	r.pdf.SetXY(r.left, y+row.height)
}
