// Package money formats engine amounts for display. Prices are computed in
// float64 and only rounded here, at the edge.
package money

import "github.com/shopspring/decimal"

// Round rounds v half away from zero to cents.
func Round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Format renders v with exactly two decimals, e.g. "509.90".
func Format(v float64) string {
	return Round(v).StringFixed(2)
}

// Percent renders a discount percentage without trailing zeros, e.g. "15" or "12.5".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
