package invoice

import "github.com/shopspring/decimal"

// FormatAmount renders an amount as "<symbol> <value>" with exactly two
// decimal places, e.g. "$ 12.50". Negative amounts carry the usual leading
// minus sign on the value: "$ -3.00". No thousands separators are applied.
func FormatAmount(amount decimal.Decimal, symbol string) string {
	return symbol + " " + amount.StringFixed(2)
}
