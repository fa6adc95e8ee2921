// Package reports renders Player and Match records into paginated PDF
// documents with the fixed Analysis Hub visual template: decorated
// header/footer on every page, a centered title, and colored section grids.
package reports

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	inch = 72.0 // points

	marginLeft   = 0.75 * inch
	marginRight  = 0.75 * inch
	marginTop    = 1.0 * inch
	marginBottom = 0.75 * inch

	brandText = "ANALYSIS HUB"

	cellPadX   = 10.0
	cellPadY   = 8.0
	lineH      = 14.0
	headingH   = 18.0
	headingGap = 16.0
	sectionGap = 0.2 * inch
)

// Template palette.
var (
	colorTitle     = rgb{76, 175, 80}   // #4CAF50
	colorHeading   = rgb{33, 33, 33}    // #212121
	colorLabelFill = rgb{76, 175, 80}   // #4CAF50
	colorLabelText = rgb{255, 255, 255} // #FFFFFF
	colorBodyText  = rgb{79, 79, 79}    // #4F4F4F
	colorGridLine  = rgb{163, 202, 155} // #A3CA9B
	colorBrandText = rgb{6, 64, 43}     // #06402B
	colorRuleLine  = rgb{227, 222, 222} // #E3DEDE
)

type rgb struct{ r, g, b int }

type row struct {
	label string
	value string
	rich  bool // justified paragraph flow instead of a plain value
}

type vitalsRow [4]string

// doc wraps an fpdf instance with the shared page geometry.
type doc struct {
	pdf      *fpdf.Fpdf
	pageW    float64
	pageH    float64
	contentW float64
}

func newDoc(logoPath string) *doc {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	// Rows are paginated by hand so a grid row never splits across pages.
	pdf.SetAutoPageBreak(false, marginBottom)

	pageW, pageH := pdf.GetPageSize()
	d := &doc{
		pdf:      pdf,
		pageW:    pageW,
		pageH:    pageH,
		contentW: pageW - marginLeft - marginRight,
	}

	pdf.SetHeaderFunc(func() { d.drawHeader(logoPath) })
	pdf.SetFooterFunc(func() { d.drawFooter() })
	pdf.AddPage()

	return d
}

// drawHeader draws the fixed page header: a hairline rule 0.7in from the top
// edge, brand text on the left, the current date on the right, symmetric
// vertical separators, and an optional centered logo.
func (d *doc) drawHeader(logoPath string) {
	pdf := d.pdf

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorBrandText.r, colorBrandText.g, colorBrandText.b)
	pdf.SetDrawColor(colorRuleLine.r, colorRuleLine.g, colorRuleLine.b)
	pdf.SetLineWidth(0.5)

	lineY := 0.7 * inch
	textY := lineY - 0.1*inch

	pdf.Line(marginLeft, lineY, d.pageW-marginRight, lineY)

	pdf.Text(marginLeft, textY, brandText)
	dateText := "Date: " + time.Now().Format("02/01/2006")
	pdf.Text(d.pageW-marginRight-pdf.GetStringWidth(dateText), textY, dateText)

	sideColumnW := 2.2 * inch
	sepTopY := lineY - 0.3*inch
	pdf.Line(marginLeft+sideColumnW, lineY, marginLeft+sideColumnW, sepTopY)
	pdf.Line(d.pageW-marginRight-sideColumnW, lineY, d.pageW-marginRight-sideColumnW, sepTopY)

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			logoSize := 0.4 * inch
			pdf.ImageOptions(
				logoPath,
				d.pageW/2-logoSize/2,
				textY-logoSize+4,
				logoSize,
				logoSize,
				false,
				fpdf.ImageOptions{ImageType: imageType(logoPath), AllowNegativePosition: true},
				0,
				"",
			)
		}
	}
}

// drawFooter draws the fixed page footer: a hairline rule 0.75in from the
// bottom edge, brand text on the left, and the page number on the right.
func (d *doc) drawFooter() {
	pdf := d.pdf

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorBrandText.r, colorBrandText.g, colorBrandText.b)
	pdf.SetDrawColor(colorRuleLine.r, colorRuleLine.g, colorRuleLine.b)
	pdf.SetLineWidth(0.5)

	lineY := d.pageH - 0.75*inch
	textY := lineY + 0.2*inch

	pdf.Line(marginLeft, lineY, d.pageW-marginRight, lineY)
	pdf.Text(marginLeft, textY, brandText)
	pageText := "Page: " + strconv.Itoa(pdf.PageNo())
	pdf.Text(d.pageW-marginRight-pdf.GetStringWidth(pageText), textY, pageText)
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}

// breakLimit is the Y position below which no grid row may start or extend.
func (d *doc) breakLimit() float64 {
	return d.pageH - marginBottom - 12
}

func (d *doc) ensureRoom(height float64) {
	if d.pdf.GetY()+height > d.breakLimit() {
		d.pdf.AddPage()
	}
}

// title draws the centered report title.
func (d *doc) title(text string) {
	pdf := d.pdf
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(colorTitle.r, colorTitle.g, colorTitle.b)
	pdf.CellFormat(d.contentW, 28, text, "", 1, "C", false, 0, "")
	pdf.Ln(0.3 * inch)
}

// sectionHeading draws a grid's heading, kept on the same page as the first
// row of the grid (firstRowH).
func (d *doc) sectionHeading(text string, firstRowH float64) {
	d.ensureRoom(headingH + headingGap + firstRowH)

	pdf := d.pdf
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(colorHeading.r, colorHeading.g, colorHeading.b)
	pdf.SetX(marginLeft)
	pdf.CellFormat(d.contentW, headingH, text, "", 1, "L", false, 0, "")
	pdf.SetY(pdf.GetY() + headingGap - 10)
}

// cellHeight measures the box height needed for text wrapped to width.
func (d *doc) cellHeight(text string, width float64) float64 {
	if text == "" {
		return lineH + 2*cellPadY
	}
	lines := d.pdf.SplitText(text, width-2*cellPadX)
	h := float64(len(lines))*lineH + 2*cellPadY
	if h < lineH+2*cellPadY {
		h = lineH + 2*cellPadY
	}
	return h
}

// drawCell draws a bordered box with wrapped text. Fill selects the colored
// label treatment; align is any MultiCell alignment; middle vertically
// centers the text block in the box.
func (d *doc) drawCell(x, y, w, h float64, text string, fill bool, align string, middle bool) {
	pdf := d.pdf

	pdf.SetDrawColor(colorGridLine.r, colorGridLine.g, colorGridLine.b)
	pdf.SetLineWidth(0.25)
	if fill {
		pdf.SetFillColor(colorLabelFill.r, colorLabelFill.g, colorLabelFill.b)
		pdf.Rect(x, y, w, h, "FD")
		pdf.SetTextColor(colorLabelText.r, colorLabelText.g, colorLabelText.b)
	} else {
		pdf.Rect(x, y, w, h, "D")
		pdf.SetTextColor(colorBodyText.r, colorBodyText.g, colorBodyText.b)
	}

	if text == "" {
		return
	}

	textH := d.cellHeight(text, w) - 2*cellPadY
	textY := y + cellPadY
	if middle && textH < h-2*cellPadY {
		textY = y + (h-textH)/2
	}
	pdf.SetXY(x+cellPadX, textY-2)
	pdf.MultiCell(w-2*cellPadX, lineH, text, "", align, false)
}

// sectionTable draws a two-column label/value grid. Labels get the colored
// treatment; rich rows flow as justified paragraphs, plain rows are
// middle-aligned values.
func (d *doc) sectionTable(title string, rows []row) {
	pdf := d.pdf
	pdf.SetFont("Helvetica", "", 10)

	labelW := d.contentW * 0.3
	valueW := d.contentW * 0.7

	firstH := d.rowHeight(rows[0], labelW, valueW)
	d.sectionHeading(title, firstH)

	for _, r := range rows {
		h := d.rowHeight(r, labelW, valueW)
		d.ensureRoom(h)

		y := pdf.GetY()
		d.drawCell(marginLeft, y, labelW, h, r.label, true, "L", true)
		align := "L"
		middle := true
		if r.rich {
			align = "J"
			middle = false
		}
		d.drawCell(marginLeft+labelW, y, valueW, h, r.value, false, align, middle)
		pdf.SetXY(marginLeft, y+h)
	}

	pdf.Ln(sectionGap)
}

func (d *doc) rowHeight(r row, labelW, valueW float64) float64 {
	d.pdf.SetFont("Helvetica", "", 10)
	h := d.cellHeight(r.label, labelW)
	if vh := d.cellHeight(r.value, valueW); vh > h {
		h = vh
	}
	return h
}

// vitalsTable draws a four-column grid of label/value pairs, two pairs per
// row, with both label columns colored.
func (d *doc) vitalsTable(title string, rows []vitalsRow) {
	pdf := d.pdf
	pdf.SetFont("Helvetica", "", 10)

	widths := [4]float64{
		d.contentW * 0.16,
		d.contentW * 0.34,
		d.contentW * 0.16,
		d.contentW * 0.34,
	}

	firstH := d.vitalsRowHeight(rows[0], widths)
	d.sectionHeading(title, firstH)

	for _, r := range rows {
		h := d.vitalsRowHeight(r, widths)
		d.ensureRoom(h)

		y := pdf.GetY()
		x := marginLeft
		for col := 0; col < 4; col++ {
			fill := col%2 == 0
			d.drawCell(x, y, widths[col], h, r[col], fill, "L", true)
			x += widths[col]
		}
		pdf.SetXY(marginLeft, y+h)
	}

	pdf.Ln(sectionGap)
}

func (d *doc) vitalsRowHeight(r vitalsRow, widths [4]float64) float64 {
	d.pdf.SetFont("Helvetica", "", 10)
	h := lineH + 2*cellPadY
	for col := 0; col < 4; col++ {
		if ch := d.cellHeight(r[col], widths[col]); ch > h {
			h = ch
		}
	}
	return h
}

func (d *doc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
