// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"math/bits"
)

// Multiply returns the element-wise product of a and b.
//
// Truncating zip: the result has min(len(a), len(b)) elements and the tail of
// the longer input is silently dropped. A mismatch is not an error.
// Complexity: O(min(len(a), len(b))).
func Multiply(a, b []int64) []int64 {
	n := min(len(a), len(b))
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] * b[i]
	}

	return out
}

// MultiplyScalar returns a fresh slice with a[i]*s for every i.
// Complexity: O(len(a)).
func MultiplyScalar(a []int64, s int64) []int64 {
	out := make([]int64, len(a))
	for i, x := range a {
		out[i] = x * s
	}

	return out
}

// Dot returns a·b = a0*b0 + a1*b1 + a2*b2. Overflow wraps.
func Dot(a, b Vec3) int64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the right-handed cross product a × b.
// Cross(a, b) == Cross(b, a).Neg() for every a, b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Length returns floor(sqrt(x² + y² + z²)) using integer arithmetic.
//
//	Length(Vec3{0, 4, -3}) == 5
//	Length(Vec3{1, 1, 1})  == 1   // sqrt(3) truncated
//
// The squared length wraps like Dot: a wrap to a negative value panics (via
// ISqrt), a wrap to a non-negative value yields a wrong result. Use
// LengthChecked for untrusted input.
func Length(a Vec3) int64 {
	return ISqrt(Dot(a, a))
}

// LengthChecked is Length with overflow detection. It returns ErrOverflow when
// x²+y²+z² exceeds math.MaxInt64.
func LengthChecked(a Vec3) (int64, error) {
	var sum, carry uint64
	for _, x := range a {
		u := uint64(x)
		if x < 0 {
			u = -u // MinInt64 maps to 2^63
		}
		hi, lo := bits.Mul64(u, u)
		sum, carry = bits.Add64(sum, lo, 0)
		if hi != 0 || carry != 0 || sum > math.MaxInt64 {
			return 0, fmt.Errorf("LengthChecked(%v): %w", a, ErrOverflow)
		}
	}

	return ISqrt(int64(sum)), nil
}

// Normalize returns a unit vector in the direction of a.
// If the squared length is 0 the input is returned unchanged.
func Normalize(a Vec3f) Vec3f {
	sq := a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
	if sq == 0 {
		return a // arrays are values: this is already a copy
	}
	l := math.Sqrt(sq)

	return Vec3f{a[0] / l, a[1] / l, a[2] / l}
}

// Norm returns the float64 Euclidean magnitude of a.
func (a Vec3f) Norm() float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}
