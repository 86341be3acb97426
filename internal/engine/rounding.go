package engine

import "math"

// snapEpsilon is how close a quotient must be to an integer to be treated
// as that integer. Inputs are entered with at most a few decimals, so any
// smaller distance is binary floating-point noise (2.7/0.9, 14.8*100, ...).
const snapEpsilon = 1e-9

// snap returns the nearest integer when x is within snapEpsilon of it.
func snap(x float64) float64 {
	r := math.Round(x)
	if math.Abs(x-r) <= snapEpsilon*math.Max(1, math.Abs(x)) {
		return r
	}
	return x
}

// floorDiv returns floor(a / b) for b > 0, snapping noise first.
func floorDiv(a, b float64) int {
	return int(math.Floor(snap(a / b)))
}

// ceilDiv returns ceil(a / b) for b > 0, snapping noise first.
func ceilDiv(a, b float64) int {
	return int(math.Ceil(snap(a / b)))
}

// ceilIntDiv returns ceil(a / b) for a >= 0, b > 0.
func ceilIntDiv(a, b int) int {
	return (a + b - 1) / b
}

// withMargin returns ceil(n * 1.1) computed exactly as ceil(n * 11 / 10).
func withMargin(n int) int {
	return ceilIntDiv(n*marginNumerator, marginDenominator)
}

// roundUpToMultiple returns the smallest multiple of step that is >= x.
func roundUpToMultiple(x, step float64) float64 {
	return float64(ceilDiv(x, step)) * step
}
