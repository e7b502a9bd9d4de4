package invoice

import "github.com/shopspring/decimal"

// ItemsSubtotal sums the line totals of items. An empty sequence yields zero.
func ItemsSubtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// EffectiveSubtotal returns the explicit subtotal override when present,
// otherwise the sum of the line totals.
func (inv Invoice) EffectiveSubtotal() decimal.Decimal {
	if inv.Subtotal != nil {
		return *inv.Subtotal
	}
	return ItemsSubtotal(inv.Items)
}

// GrandTotal is subtotal + shipping + tax - discount. A discount exceeding
// the other charges yields a negative total, which is rendered as-is.
func (inv Invoice) GrandTotal() decimal.Decimal {
	return inv.EffectiveSubtotal().
		Add(inv.ShippingCost).
		Add(inv.TaxAmount).
		Sub(inv.Discount)
}
