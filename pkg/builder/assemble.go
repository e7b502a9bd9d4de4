package builder

import (
	"fmt"

	"github.com/bilingual-invoicing/pkg/document"
	"github.com/bilingual-invoicing/pkg/i18n"
	"github.com/bilingual-invoicing/pkg/invoice"
)

// Assemble composes the section builders into a full document tree. A
// single-language selection yields one document section; Bilingual yields
// the English section, one explicit page break, then the Arabic section.
// The two halves are structurally independent.
func Assemble(inv invoice.Invoice, sel i18n.Selection) (document.Document, error) {
	doc := document.Document{
		Page:   document.PageSettings{Size: "A4", Margin: 15},
		Styles: defaultStyles(),
	}
	switch s := sel.(type) {
	case i18n.Single:
		doc.Content = Section(inv, s.Lang)
	case i18n.Bilingual:
		doc.Content = append(Section(inv, i18n.English), document.PageBreak{})
		doc.Content = append(doc.Content, Section(inv, i18n.Arabic)...)
	default:
		return document.Document{}, fmt.Errorf("assemble: %w (%T)", i18n.ErrUnknownSelection, sel)
	}
	return doc, nil
}

// Section builds one complete single-language invoice in the fixed order:
// company info, header, line-item table, payment summary, footer.
func Section(inv invoice.Invoice, lang i18n.Language) []document.Node {
	var nodes []document.Node
	nodes = append(nodes, CompanyInfo(inv, lang)...)
	nodes = append(nodes, Header(inv, lang)...)
	nodes = append(nodes, ItemsTable(inv, lang))
	nodes = append(nodes, Summary(inv, lang)...)
	nodes = append(nodes, Footer(inv, lang)...)
	return nodes
}
