// pkg/invoice/invoice.go

// Package invoice holds the invoice data model and the financial
// aggregation rules applied to it before rendering.
package invoice

import "github.com/shopspring/decimal"

// DefaultCurrencySymbol is used when an invoice does not name one.
const DefaultCurrencySymbol = "$"

// Invoice represents the invoice data model. It is an immutable snapshot
// supplied wholesale by the caller; nothing in this module mutates it.
type Invoice struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Date          string `json:"date"`

	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail,omitempty"`
	ClientPhone   string `json:"clientPhone,omitempty"`
	ClientAddress string `json:"clientAddress,omitempty"`

	CompanyName    string `json:"companyName,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
	CompanyPhone   string `json:"companyPhone,omitempty"`
	CompanyEmail   string `json:"companyEmail,omitempty"`

	Items []LineItem `json:"items"`

	CurrencySymbol string `json:"currencySymbol,omitempty"`
	PaymentMethod  string `json:"paymentMethod,omitempty"`

	// Subtotal, when present, overrides the sum of the line totals.
	Subtotal     *decimal.Decimal `json:"subtotal,omitempty"`
	ShippingCost decimal.Decimal  `json:"shippingCost"`
	TaxAmount    decimal.Decimal  `json:"taxAmount"`
	Discount     decimal.Decimal  `json:"discount"`

	Notes string `json:"notes,omitempty"`
}

// LineItem represents one purchased product entry on the invoice.
// Description is free text, already localized by the caller.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Total returns quantity times unit price.
func (it LineItem) Total() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Symbol returns the invoice currency symbol, defaulting to "$".
func (inv Invoice) Symbol() string {
	if inv.CurrencySymbol == "" {
		return DefaultCurrencySymbol
	}
	return inv.CurrencySymbol
}

// HasCompanyInfo reports whether any of the four company fields is set.
func (inv Invoice) HasCompanyInfo() bool {
	return inv.CompanyName != "" || inv.CompanyAddress != "" ||
		inv.CompanyPhone != "" || inv.CompanyEmail != ""
}
