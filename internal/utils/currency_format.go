package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary value for display with two decimal places.
// All internal arithmetic stays exact; rounding happens only here, at the
// presentation boundary.
// Example: 12.3456 returns "12.35", 500 returns "500.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatWithPrecision renders a monetary value with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
