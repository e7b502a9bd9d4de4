// Package builder turns an invoice and a language selection into the
// document tree handed to the rendering backend. Each section builder is a
// pure function of (invoice, language); Arabic output mirrors alignment
// and table column order for right-to-left reading.
package builder

import "github.com/bilingual-invoicing/pkg/document"

// Named styles registered on every assembled document.
const (
	StyleTitle       = "title"
	StyleCompany     = "company"
	StyleBold        = "bold"
	StyleTableHeader = "tableHeader"
	StyleGrandTotal  = "grandTotal"
)

var (
	colorAccent  = document.Color{R: 0, G: 70, B: 127}
	colorWarning = document.Color{R: 192, G: 57, B: 43}
	colorGray    = document.Color{R: 100, G: 100, B: 100}
	colorWhite   = document.Color{R: 255, G: 255, B: 255}
	colorZebra   = document.Color{R: 241, G: 243, B: 245}
)

func defaultStyles() map[string]document.Style {
	return map[string]document.Style{
		StyleTitle:       {Font: document.Font{Style: "B", Size: 22}, Color: &colorAccent},
		StyleCompany:     {Font: document.Font{Style: "B", Size: 15}},
		StyleBold:        {Font: document.Font{Style: "B", Size: 10}},
		StyleTableHeader: {Font: document.Font{Style: "B", Size: 10}, Color: &colorWhite},
		StyleGrandTotal:  {Font: document.Font{Style: "B", Size: 12}, Color: &colorAccent},
	}
}
