// SPDX-License-Identifier: MIT
// Public API facades over the canonical constructors and kernels.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructions.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Usage notes:
//   - Use NewIdentity to build matrices with explicit shape and neutral elements.
//   - Prefer passing *Dense to Det/LU to unlock the single-copy fast path.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// Determinant is an alias for Det with default options.
func Determinant(m Matrix) (float64, error) { return Det(m) }
