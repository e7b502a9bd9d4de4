package invoice

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleItems() []LineItem {
	return []LineItem{
		{Description: "Widget", Quantity: 2, UnitPrice: dec("50")},
		{Description: "Cable", Quantity: 1, UnitPrice: dec("100")},
	}
}

func TestLineItemTotal(t *testing.T) {
	it := LineItem{Description: "Breaker", Quantity: 3, UnitPrice: dec("19.99")}
	assert.True(t, it.Total().Equal(dec("59.97")), "got %s", it.Total())
}

func TestItemsSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{"empty sequence", nil, "0"},
		{"two items", sampleItems(), "200"},
		{"zero quantity contributes nothing", []LineItem{{Quantity: 0, UnitPrice: dec("99")}}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemsSubtotal(tt.items)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestEffectiveSubtotalOverride(t *testing.T) {
	override := dec("999")
	inv := Invoice{Items: sampleItems(), Subtotal: &override}
	assert.True(t, inv.EffectiveSubtotal().Equal(override))

	inv.Subtotal = nil
	assert.True(t, inv.EffectiveSubtotal().Equal(dec("200")))
}

func TestGrandTotal(t *testing.T) {
	tests := []struct {
		name string
		inv  Invoice
		want string
	}{
		{
			name: "subtotal plus adjustments",
			inv: Invoice{
				Items:        sampleItems(),
				ShippingCost: dec("10"),
				TaxAmount:    dec("15"),
				Discount:     dec("5"),
			},
			want: "220",
		},
		{
			name: "discount exceeding charges goes negative",
			inv: Invoice{
				Items:    sampleItems(),
				Discount: dec("500"),
			},
			want: "-300",
		},
		{
			name: "empty items with adjustments",
			inv: Invoice{
				ShippingCost: dec("10"),
				TaxAmount:    dec("15"),
				Discount:     dec("5"),
			},
			want: "20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.inv.GrandTotal()
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestGrandTotalIdentity(t *testing.T) {
	inv := Invoice{
		Items:        sampleItems(),
		ShippingCost: dec("12.34"),
		TaxAmount:    dec("7.5"),
		Discount:     dec("3.21"),
	}
	want := inv.EffectiveSubtotal().
		Add(inv.ShippingCost).
		Add(inv.TaxAmount).
		Sub(inv.Discount)
	assert.True(t, inv.GrandTotal().Equal(want))
}

func TestFormatAmount(t *testing.T) {
	pattern := regexp.MustCompile(`^\$ -?\d+\.\d{2}$`)
	for _, s := range []string{"0", "12.5", "-3", "1234.567", "0.004"} {
		got := FormatAmount(dec(s), "$")
		require.Regexp(t, pattern, got)
	}

	assert.Equal(t, "$ 12.50", FormatAmount(dec("12.5"), "$"))
	assert.Equal(t, "$ -3.00", FormatAmount(dec("-3"), "$"))
	assert.Equal(t, "EGP 1.01", FormatAmount(dec("1.005"), "EGP"))
}

func TestSymbolDefault(t *testing.T) {
	assert.Equal(t, "$", Invoice{}.Symbol())
	assert.Equal(t, "SAR", Invoice{CurrencySymbol: "SAR"}.Symbol())
}

func TestHasCompanyInfo(t *testing.T) {
	assert.False(t, Invoice{}.HasCompanyInfo())
	assert.True(t, Invoice{CompanyPhone: "+20 100"}.HasCompanyInfo())
	assert.True(t, Invoice{CompanyName: "Kahraba Supplies"}.HasCompanyInfo())
}
