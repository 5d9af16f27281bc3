// SPDX-License-Identifier: MIT

package scalar

import "math"

// Plus returns x + y.
// Overflow wraps around per two's complement; no checking is performed.
// Complexity: O(1).
func Plus(x, y int32) int32 {
	return x + y
}

// Times returns x * y with wrap-around on overflow.
// The signature matches a fold operator, e.g. series.Fold(seq, 1, Times).
// Complexity: O(1).
func Times(x, y int64) int64 {
	return x * y
}

// Abs returns |x|.
//
// math.MinInt32 has no positive counterpart and is returned unchanged
// (negation wraps). Callers must avoid the minimum value.
// Complexity: O(1).
func Abs(x int32) int32 {
	if x < 0 {
		return -x // wraps for MinInt32
	}

	return x
}

// Tolerance converts a decimal-place count into the absolute bound 10^(-places).
//
//	Tolerance(5) == 1e-5
//
// Complexity: O(1).
func Tolerance(places float64) float64 {
	return math.Pow(10, -places)
}

// IsAlmostEqual reports whether |x - y| < 10^(-places).
//
// places is a decimal-places exponent, not an absolute tolerance:
// places=5 means "x and y agree to 5 decimal places". The comparison is strict,
// so a difference exactly equal to the bound is not "almost equal".
// NaN never compares almost-equal to anything.
//
// Complexity: O(1).
func IsAlmostEqual(x, y, places float64) bool {
	return math.Abs(x-y) < Tolerance(places)
}
