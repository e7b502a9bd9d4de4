package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilingual-invoicing/pkg/builder"
	"github.com/bilingual-invoicing/pkg/i18n"
	"github.com/bilingual-invoicing/pkg/invoice"
)

func sampleInvoice() invoice.Invoice {
	return invoice.Invoice{
		InvoiceNumber: "INV-42",
		Date:          "2024-05-01",
		ClientName:    "Acme Electric Co.",
		Items: []invoice.LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: decimal.RequireFromString("50")},
		},
		ShippingCost: decimal.RequireFromString("10"),
		TaxAmount:    decimal.RequireFromString("15"),
		Discount:     decimal.RequireFromString("5"),
	}
}

// With no font bundle the render still succeeds on the default font and
// the fallback is reported, never surfaced as an error.
func TestPDFFallbackFont(t *testing.T) {
	doc, err := builder.Assemble(sampleInvoice(), i18n.Single{Lang: i18n.English})
	require.NoError(t, err)

	data, result, err := PDF(doc, nil)
	require.NoError(t, err)
	assert.True(t, result.UsedFallbackFont)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFBilingual(t *testing.T) {
	doc, err := builder.Assemble(sampleInvoice(), i18n.Bilingual{})
	require.NoError(t, err)

	data, _, err := PDF(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"", ActionDownload},
		{"download", ActionDownload},
		{"print", ActionPrint},
		{"open", ActionOpen},
	}
	for _, tt := range tests {
		t.Run("value "+tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAction("email")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice-INV-42.pdf", Filename("INV-42"))
}

func TestVisualKeepsLatin(t *testing.T) {
	for _, s := range []string{"", "hello", "$ 12.50", "Invoice No: INV-42"} {
		assert.Equal(t, s, visual(s))
	}
}

func TestVisualReversesArabicRun(t *testing.T) {
	in := "سلام"
	got := visual(in)
	assert.Equal(t, reverseRunes(in), got)
	assert.ElementsMatch(t, []rune(in), []rune(got))
}
