// SPDX-License-Identifier: MIT

package vector

import "math"

// isqrtMax is floor(sqrt(math.MaxInt64)); (isqrtMax+1)² overflows int64.
const isqrtMax = 3037000499

// panicNegativeSqrt is raised by ISqrt on negative input (programmer error).
const panicNegativeSqrt = "vector: ISqrt of negative number"

// ISqrt returns floor(sqrt(n)) for n >= 0. It panics on negative n.
//
// The float64 estimate may be off by one for n above 2^52; the two correction
// loops settle it exactly without overflowing.
// Complexity: O(1).
func ISqrt(n int64) int64 {
	if n < 0 {
		panic(panicNegativeSqrt)
	}
	r := int64(math.Sqrt(float64(n)))
	if r > isqrtMax {
		r = isqrtMax
	}
	for r*r > n {
		r--
	}
	for r < isqrtMax && (r+1)*(r+1) <= n {
		r++
	}

	return r
}
