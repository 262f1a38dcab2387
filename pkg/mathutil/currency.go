// Package mathutil provides currency-display helpers. Results keep full
// floating precision internally; these helpers exist for rendering and for
// tolerant comparisons only, never for further computation.
package mathutil

import (
	"fmt"
	"math"
)

// Round2 rounds a value to two decimals, i.e. to represent real currency.
func Round2(val float64) float64 {
	return math.Round(val*100) / 100
}

// FormatBRL renders a value the way the UI shows money.
func FormatBRL(val float64) string {
	return fmt.Sprintf("R$ %.2f", Round2(val))
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
