// Package series computes sums over integer ranges, both in closed form and by
// explicit iteration, plus a generic left fold over iter.Seq.
//
// ✨ Key features:
//   - SumToN: triangular numbers n(n+1)/2 in floating point
//   - IterSum / IterSum2: iterative sums of 0..n and of the first n odd numbers
//   - NestedSum: double accumulation Σi Σj 3·i·j over half-open ranges
//   - Range / Fold / Sum: half-open iterators and a left fold (Factorial is built on it)
//
// Ranges are always half-open [lo, hi): Range(1, 7) yields 1..6, so
// Fold(Range(1, 7), 1, scalar.Times) == 720.
//
// Performance:
//
//   - IterSum, IterSum2: O(n)
//   - NestedSum: O((b-a)·(d-c))
//   - SumToN: O(1)
package series
