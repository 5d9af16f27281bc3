// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel should panic
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with matrixErrorf(op, ErrX) at the kernel boundary; callers still match
// with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged indicates that row slices passed to NewFromRows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required by
	// the numeric policy (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by LU when no usable pivot exists in a column.
	// Det reports such matrices as having determinant 0 instead.
	ErrSingular = errors.New("matrix: singular matrix")
)
