package builder

import (
	"strconv"
	"strings"

	"github.com/bilingual-invoicing/pkg/document"
	"github.com/bilingual-invoicing/pkg/i18n"
	"github.com/bilingual-invoicing/pkg/invoice"
)

func alignFor(lang i18n.Language) document.Alignment {
	if lang.RTL() {
		return document.AlignRight
	}
	return document.AlignLeft
}

func labeled(key i18n.LabelKey, lang i18n.Language, value string) string {
	return i18n.Label(key, lang) + ": " + value
}

// CompanyInfo renders the company name plus a single line joining address,
// phone and email with " | ", skipping missing fields. The whole block is
// absent when no company field is set.
func CompanyInfo(inv invoice.Invoice, lang i18n.Language) []document.Node {
	if !inv.HasCompanyInfo() {
		return nil
	}
	a := alignFor(lang)
	var nodes []document.Node
	if inv.CompanyName != "" {
		nodes = append(nodes, document.Text{Content: inv.CompanyName, Style: StyleCompany, Align: a})
	}
	var parts []string
	for _, p := range []string{inv.CompanyAddress, inv.CompanyPhone, inv.CompanyEmail} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		nodes = append(nodes, document.Text{
			Content: strings.Join(parts, " | "),
			Align:   a,
			Color:   &colorGray,
		})
	}
	return append(nodes, document.Spacer{Height: 4})
}

// Header renders the page title, a rule, the invoice number and date, and
// the customer block: name first, then each optional contact field on its
// own line.
func Header(inv invoice.Invoice, lang i18n.Language) []document.Node {
	a := alignFor(lang)
	nodes := []document.Node{
		document.Text{Content: i18n.Label(i18n.KeyInvoiceTitle, lang), Style: StyleTitle, Align: a},
		document.Rule{Thickness: 0.6, Color: &colorAccent},
		document.Spacer{Height: 2},
		document.Text{Content: labeled(i18n.KeyInvoiceNumber, lang, inv.InvoiceNumber), Style: StyleBold, Align: a},
		document.Text{Content: labeled(i18n.KeyDate, lang, inv.Date), Align: a, Color: &colorGray},
		document.Spacer{Height: 3},
		document.Text{Content: i18n.Label(i18n.KeyBillTo, lang), Style: StyleBold, Align: a, Color: &colorAccent},
		document.Text{Content: inv.ClientName, Align: a},
	}
	optional := []struct {
		key   i18n.LabelKey
		value string
	}{
		{i18n.KeyEmail, inv.ClientEmail},
		{i18n.KeyPhone, inv.ClientPhone},
		{i18n.KeyAddress, inv.ClientAddress},
	}
	for _, f := range optional {
		if f.value != "" {
			nodes = append(nodes, document.Text{
				Content: labeled(f.key, lang, f.value),
				Align:   a,
				Color:   &colorGray,
			})
		}
	}
	return append(nodes, document.Spacer{Height: 4})
}

// ItemsTable renders the four-column line-item table. For Arabic the
// column order is reversed (total, price, quantity, description) so the
// reading order follows the RTL text flow, and all cells align right.
func ItemsTable(inv invoice.Invoice, lang i18n.Language) document.Table {
	a := alignFor(lang)
	sym := inv.Symbol()

	columns := []document.Column{
		{Width: 5, Align: a},
		{Width: 2, Align: a},
		{Width: 2.5, Align: a},
		{Width: 2.5, Align: a},
	}
	header := []document.Cell{
		{Content: i18n.Label(i18n.KeyDescription, lang), Style: StyleTableHeader},
		{Content: i18n.Label(i18n.KeyQuantity, lang), Style: StyleTableHeader},
		{Content: i18n.Label(i18n.KeyUnitPrice, lang), Style: StyleTableHeader},
		{Content: i18n.Label(i18n.KeyLineTotal, lang), Style: StyleTableHeader},
	}
	rows := make([][]document.Cell, 0, len(inv.Items))
	for _, it := range inv.Items {
		rows = append(rows, []document.Cell{
			{Content: it.Description},
			{Content: strconv.Itoa(it.Quantity)},
			{Content: invoice.FormatAmount(it.UnitPrice, sym)},
			{Content: invoice.FormatAmount(it.Total(), sym)},
		})
	}

	if lang.RTL() {
		reverse(columns)
		reverse(header)
		for _, row := range rows {
			reverse(row)
		}
	}

	return document.Table{
		Columns:    columns,
		Header:     header,
		Rows:       rows,
		HeaderFill: &colorAccent,
		ZebraFill:  &colorZebra,
		Borders:    true,
	}
}

// Summary renders the payment summary pinned to the visual right of the
// page regardless of language. Row order is fixed: subtotal, shipping,
// tax, discount, grand total. Shipping, tax and discount appear only when
// positive; the discount carries a leading minus and the warning color;
// the grand total is separated by a rule above it.
func Summary(inv invoice.Invoice, lang i18n.Language) []document.Node {
	sym := inv.Symbol()
	var rows [][]document.Cell

	addRow := func(key i18n.LabelKey, value, style string, color *document.Color, topBorder bool) {
		rows = append(rows, []document.Cell{
			{},
			{Content: i18n.Label(key, lang), Style: style, Align: document.AlignRight, TopBorder: topBorder},
			{Content: value, Style: style, Align: document.AlignRight, Color: color, TopBorder: topBorder},
		})
	}

	addRow(i18n.KeySubtotal, invoice.FormatAmount(inv.EffectiveSubtotal(), sym), StyleBold, nil, false)
	if inv.ShippingCost.IsPositive() {
		addRow(i18n.KeyShipping, invoice.FormatAmount(inv.ShippingCost, sym), "", nil, false)
	}
	if inv.TaxAmount.IsPositive() {
		addRow(i18n.KeyTax, invoice.FormatAmount(inv.TaxAmount, sym), "", nil, false)
	}
	if inv.Discount.IsPositive() {
		addRow(i18n.KeyDiscount, invoice.FormatAmount(inv.Discount.Neg(), sym), "", &colorWarning, false)
	}
	addRow(i18n.KeyGrandTotal, invoice.FormatAmount(inv.GrandTotal(), sym), StyleGrandTotal, nil, true)

	return []document.Node{
		document.Spacer{Height: 3},
		document.Table{
			Columns: []document.Column{
				{Width: 6},
				{Width: 3, Align: document.AlignRight},
				{Width: 3, Align: document.AlignRight},
			},
			Rows: rows,
		},
	}
}

// Footer renders the optional payment-method and notes lines; each is
// omitted entirely when its field is absent.
func Footer(inv invoice.Invoice, lang i18n.Language) []document.Node {
	a := alignFor(lang)
	var nodes []document.Node
	if inv.PaymentMethod != "" {
		nodes = append(nodes,
			document.Spacer{Height: 5},
			document.Text{Content: labeled(i18n.KeyPaymentMethod, lang, inv.PaymentMethod), Style: StyleBold, Align: a},
		)
	}
	if inv.Notes != "" {
		if len(nodes) == 0 {
			nodes = append(nodes, document.Spacer{Height: 5})
		}
		nodes = append(nodes, document.Text{
			Content: labeled(i18n.KeyNotes, lang, inv.Notes),
			Align:   a,
			Color:   &colorGray,
		})
	}
	return nodes
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
