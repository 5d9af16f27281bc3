// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// LUFactors holds the result of an LU factorization with partial pivoting:
//
//	P·A = L·U
//
// where L is unit lower triangular, U is upper triangular and P is the row
// permutation recorded in Perm (row i of P·A is row Perm[i] of A).
type LUFactors struct {
	L    *Dense  // unit lower triangular, n×n
	U    *Dense  // upper triangular, n×n
	Perm []int   // row permutation, len n
	Sign float64 // +1 for an even number of row swaps, -1 for odd
}
