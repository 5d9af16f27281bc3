// SPDX-License-Identifier: MIT
// Package matrix: determinant and LU kernels.
//
// Purpose:
//   - Det2: closed-form ad − bc.
//   - Det:  direct formulas for 1×1 and 2×2 at zero pivot tolerance, LU with
//     partial pivoting otherwise.
//   - LU:   P·A = L·U factorization exposed for callers that need the factors.
//
// Determinism:
//   - Fixed k→i→j loop order; pivot ties resolve to the smallest row index.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDet      = "Det"
	opLU       = "LU"
	opFromRows = "NewFromRows"
	opIdentity = "IdentityLike"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Det2 returns the determinant of the 2×2 matrix [[a, b], [c, d]]: ad − bc.
// Complexity: O(1).
func Det2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: with the default zero pivot tolerance, n==1 → m[0,0] and
//     n==2 → Det2; otherwise copy into a flat buffer and run in-place LU with
//     partial pivoting, multiplying the pivots.
//
// Behavior highlights:
//   - A singular matrix (no pivot above the tolerance) yields (0, nil).
//   - The input is never mutated.
//   - Identity matrices of any size yield exactly 1.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Det").
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)

	a, err := flatCopy(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := m.Rows()
	// The closed forms skip the pivot test, so they only apply at zero tolerance.
	if o.pivotTol == 0 {
		switch n {
		case 1:
			return a[0], nil
		case 2:
			return Det2(a[0], a[1], a[2], a[3]), nil
		}
	}

	perm := make([]int, n)
	sign, err := luInPlace(a, n, perm, o.pivotTol)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	// det(A) = sign(P) · Π U[i,i]
	det := sign
	for i := 0; i < n; i++ {
		det *= a[i*n+i]
	}

	return det, nil
}

// LU factors a square matrix as P·A = L·U with partial pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "LU").
//
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	a, err := flatCopy(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	perm := make([]int, n)
	sign, err := luInPlace(a, n, perm, o.pivotTol)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	// Split the packed factors: strict lower part → L (unit diagonal), upper → U.
	L, _ := NewDense(n, n) // n > 0 guaranteed by validation
	U, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = a[i*n+j]
			case j == i:
				L.data[i*n+j] = 1
				U.data[i*n+j] = a[i*n+j]
			default:
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// flatCopy returns the row-major contents of m in a fresh slice.
// *Dense takes the single-copy fast path; other implementations go through At.
func flatCopy(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if out[i*cols+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// luInPlace runs Doolittle elimination with partial pivoting on the n×n
// row-major buffer a. On return a packs L (strictly below the diagonal) and
// U (on and above it), perm holds the row order and the returned sign is the
// parity of the permutation.
//
// Returns ErrSingular when the best pivot of a column satisfies |p| <= tol.
func luInPlace(a []float64, n int, perm []int, tol float64) (float64, error) {
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p  int
		best, v, f  float64
		rowK, rowI  int
		pivotRowOff int
	)
	for k = 0; k < n; k++ {
		// Choose the pivot: largest |a[i,k]| for i ≥ k, first index on ties.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return 0, fmt.Errorf("column %d: %w", k, ErrSingular)
		}

		// Swap rows k and p.
		if p != k {
			rowK, pivotRowOff = k*n, p*n
			for j = 0; j < n; j++ {
				a[rowK+j], a[pivotRowOff+j] = a[pivotRowOff+j], a[rowK+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// Eliminate below the pivot; store multipliers in place of the zeros.
		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			f = a[rowI+k] / a[rowK+k]
			a[rowI+k] = f
			if f == 0 {
				continue // nothing to subtract
			}
			for j = k + 1; j < n; j++ {
				a[rowI+j] -= f * a[rowK+j]
			}
		}
	}

	return sign, nil
}
