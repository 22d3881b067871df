package response

import "github.com/shopspring/decimal"

// Reais renders a centavos amount as a fixed two-decimal string ("28.00").
func Reais(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
