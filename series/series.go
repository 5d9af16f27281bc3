// SPDX-License-Identifier: MIT

package series

import (
	"iter"

	"github.com/katalvlaran/numkit/scalar"
)

// nestedFactor is the constant multiplier applied to each i·j term in NestedSum.
const nestedFactor = 3

// Range yields lo, lo+1, ..., hi-1. An empty sequence is produced when hi <= lo.
// Complexity: O(hi-lo) over the full iteration, O(1) memory.
func Range(lo, hi int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for k := lo; k < hi; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// Fold reduces seq from the left: op(...op(op(init, x0), x1)..., xn).
// The direction matters only for non-commutative operators.
// Complexity: O(len(seq)) calls of op.
func Fold[T, A any](seq iter.Seq[T], init A, op func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = op(acc, v)
	}

	return acc
}

// Sum adds every value of seq, starting from zero.
func Sum(seq iter.Seq[int64]) int64 {
	return Fold(seq, int64(0), func(acc, v int64) int64 { return acc + v })
}

// SumToN returns the n-th triangular number n(n+1)/2 in floating point.
// The result is exact for integer-valued n while n(n+1) stays within the
// 53-bit mantissa.
// Complexity: O(1).
func SumToN(n float64) float64 {
	return (n * (n + 1)) / 2
}

// IterSum returns 0 + 1 + ... + (n-1), i.e. n(n-1)/2, by iteration.
// Returns 0 for n <= 0.
func IterSum(n int64) int64 {
	return Sum(Range(0, n))
}

// IterSum2 returns the sum of the first n odd numbers, Σ_{k<n} (2k+1) = n², by
// iteration. Returns 0 for n <= 0.
func IterSum2(n int64) int64 {
	var total int64
	for k := range Range(0, n) {
		total += 2*k + 1
	}

	return total
}

// NestedSum returns Σ_{i∈[a,b)} Σ_{j∈[c,d)} 3·i·j, accumulating row by row in
// ascending i, then ascending j.
// Either range being empty yields 0. Overflow wraps.
// Complexity: O((b-a)·(d-c)).
func NestedSum(a, b, c, d int64) int64 {
	var total int64
	for i := range Range(a, b) {
		for j := range Range(c, d) {
			total += nestedFactor * i * j
		}
	}

	return total
}

// Factorial returns n! as a left fold of scalar.Times over 1..n.
// n <= 0 yields 1 (the empty product). Overflow wraps beyond 20!.
func Factorial(n int64) int64 {
	return Fold(Range(1, n+1), int64(1), scalar.Times)
}
