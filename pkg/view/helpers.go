package view

import "github.com/shopspring/decimal"

// Rupees formats an amount as a plain two-decimal rupee value, e.g. "₹1250.00".
func Rupees(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}
