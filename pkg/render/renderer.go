// Package render binds the document tree to the PDF layout engine and
// defines the dispatch actions applied to the finished artifact.
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/bilingual-invoicing/pkg/document"
	"github.com/bilingual-invoicing/pkg/fonts"
)

// fallbackFamily is the engine's built-in Latin family used when no font
// bundle is available. Arabic text then renders without proper glyphs;
// the degradation is reported through Result, never as an error.
const fallbackFamily = "Arial"

// Result reports render-call observations the caller may want to act on.
type Result struct {
	UsedFallbackFont bool
}

// PDF renders an assembled document into PDF bytes. A construction
// failure surfaces as a single error with no partial output retained.
func PDF(doc document.Document, bundle *fonts.Bundle) ([]byte, Result, error) {
	res := Result{UsedFallbackFont: bundle == nil}

	size := doc.Page.Size
	if size == "" {
		size = "A4"
	}
	margin := doc.Page.Margin
	if margin <= 0 {
		margin = 15
	}

	pdf := gofpdf.New("P", "mm", size, "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)

	family := fallbackFamily
	if bundle != nil {
		pdf.AddUTF8FontFromBytes(bundle.Family, "", bundle.Regular)
		pdf.AddUTF8FontFromBytes(bundle.Family, "B", bundle.Bold)
		family = bundle.Family
	}

	w := walker{pdf: pdf, styles: doc.Styles, family: family, margin: margin}
	pdf.AddPage()
	for _, n := range doc.Content {
		if err := w.node(n); err != nil {
			return nil, res, err
		}
	}
	if pdf.Err() {
		return nil, res, fmt.Errorf("render: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, res, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), res, nil
}

// walker emits document nodes onto the engine page cursor, top to bottom.
type walker struct {
	pdf    *gofpdf.Fpdf
	styles map[string]document.Style
	family string
	margin float64
}

func (w *walker) node(n document.Node) error {
	switch v := n.(type) {
	case document.Text:
		w.text(v)
	case document.Table:
		w.table(v)
	case document.Rule:
		w.rule(v)
	case document.Spacer:
		w.pdf.Ln(v.Height)
	case document.PageBreak:
		w.pdf.AddPage()
	default:
		return fmt.Errorf("render: unsupported node %T", n)
	}
	return nil
}

// applyStyle activates the named style and returns a line height for it.
func (w *walker) applyStyle(name string, override *document.Color) float64 {
	st := w.styles[name]
	size := st.Font.Size
	if size == 0 {
		size = 10
	}
	family := st.Font.Family
	if family == "" {
		family = w.family
	}
	w.pdf.SetFont(family, st.Font.Style, size)

	color := override
	if color == nil {
		color = st.Color
	}
	if color != nil {
		w.pdf.SetTextColor(color.R, color.G, color.B)
	} else {
		w.pdf.SetTextColor(33, 37, 41)
	}
	return size*0.45 + 2
}

func alignStr(a document.Alignment) string {
	if a == "" {
		return "L"
	}
	return string(a)
}

func (w *walker) text(t document.Text) {
	h := w.applyStyle(t.Style, t.Color)
	w.pdf.CellFormat(0, h, visual(t.Content), "", 1, alignStr(t.Align), false, 0, "")
}

func (w *walker) widths(cols []document.Column) []float64 {
	pageW, _ := w.pdf.GetPageSize()
	avail := pageW - 2*w.margin
	var total float64
	for _, c := range cols {
		if c.Width > 0 {
			total += c.Width
		} else {
			total++
		}
	}
	out := make([]float64, len(cols))
	for i, c := range cols {
		weight := c.Width
		if weight <= 0 {
			weight = 1
		}
		out[i] = avail * weight / total
	}
	return out
}

func (w *walker) table(t document.Table) {
	widths := w.widths(t.Columns)

	border := func(c document.Cell) string {
		if t.Borders {
			return "1"
		}
		if c.TopBorder {
			return "T"
		}
		return ""
	}
	align := func(i int, c document.Cell) string {
		if c.Align != "" {
			return string(c.Align)
		}
		if i < len(t.Columns) {
			return alignStr(t.Columns[i].Align)
		}
		return "L"
	}

	if len(t.Header) > 0 {
		fill := t.HeaderFill != nil
		if fill {
			w.pdf.SetFillColor(t.HeaderFill.R, t.HeaderFill.G, t.HeaderFill.B)
		}
		for i, c := range t.Header {
			w.applyStyle(c.Style, c.Color)
			w.pdf.CellFormat(widths[i], 9, visual(c.Content), border(c), 0, align(i, c), fill, 0, "")
		}
		w.pdf.Ln(-1)
	}

	for ri, row := range t.Rows {
		fill := t.ZebraFill != nil && ri%2 == 1
		if fill {
			w.pdf.SetFillColor(t.ZebraFill.R, t.ZebraFill.G, t.ZebraFill.B)
		}
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			w.applyStyle(c.Style, c.Color)
			w.pdf.CellFormat(widths[i], 8, visual(c.Content), border(c), 0, align(i, c), fill, 0, "")
		}
		w.pdf.Ln(-1)
	}
}

func (w *walker) rule(r document.Rule) {
	thickness := r.Thickness
	if thickness <= 0 {
		thickness = 0.3
	}
	if r.Color != nil {
		w.pdf.SetDrawColor(r.Color.R, r.Color.G, r.Color.B)
	} else {
		w.pdf.SetDrawColor(160, 160, 160)
	}
	w.pdf.SetLineWidth(thickness)
	pageW, _ := w.pdf.GetPageSize()
	y := w.pdf.GetY() + 1
	w.pdf.Line(w.margin, y, pageW-w.margin, y)
	w.pdf.Ln(thickness + 2)
	w.pdf.SetDrawColor(0, 0, 0)
	w.pdf.SetLineWidth(0.2)
}
