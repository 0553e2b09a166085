package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMinorUnits renders an integer amount in minor currency units as a
// display string with two decimal places, e.g. 1234567 -> "£12345.67".
// Amounts are stored and summed as integers; decimal is used only at the
// display boundary so no floating-point arithmetic ever touches the value.
func FormatMinorUnits(amount int64, symbol string) string {
	return symbol + decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).StringFixed(2)
}
