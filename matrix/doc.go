// Package matrix provides a small dense matrix type and determinant kernels.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix behind the Matrix interface, with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Constructors: NewDense (zeros), NewIdentity, NewFromRows.
//   - Det2 for the closed-form 2×2 case and Det for any square matrix
//     (direct formulas up to 2×2, LU with partial pivoting beyond).
//   - LU, exposing the P·A = L·U factorization used by Det.
//   - Central validators (ValidateNotNil, ValidateSquare) and sentinel errors.
//
// The determinant of an n×n identity matrix is exactly 1 for every n: the LU
// kernel performs no row swaps and no rounding on it.
//
// See the examples in this package for usage patterns.
package matrix
