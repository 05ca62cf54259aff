package measure

import (
	"math"
	"strconv"
)

// Decimal places used when displaying CBM values. Order editing shows
// four places, quotation and print contexts show two. The stored value
// is never rounded.
const (
	OrderCBMPlaces = 4
	PrintCBMPlaces = 2
)

// CBM computes the cubic-meter volume of an item from centimeter
// dimensions. Negative or non-finite inputs degrade to 0 per axis;
// the calculation never fails.
func CBM(heightCM, depthCM, widthCM float64) float64 {
	return numeric(heightCM) * numeric(depthCM) * numeric(widthCM) / 1_000_000
}

func numeric(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatCBM renders a CBM value with the given number of decimal places.
func FormatCBM(v float64, places int) string {
	return strconv.FormatFloat(numeric(v), 'f', places, 64)
}

// FormatDimension renders a centimeter dimension without trailing
// zeros, the way the editing screens display it.
func FormatDimension(v float64) string {
	return strconv.FormatFloat(numeric(v), 'f', -1, 64)
}

// FormatMoney renders a unit price or line total with two decimals.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
