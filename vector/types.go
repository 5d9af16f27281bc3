// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Dim is the number of components of every geometric vector in this package.
const Dim = 3

var (
	// ErrWrongDimension is returned when a slice does not have exactly Dim components.
	ErrWrongDimension = errors.New("vector: wrong dimension")

	// ErrOverflow is returned when an integer result does not fit in int64.
	ErrOverflow = errors.New("vector: int64 overflow")
)

// Vec3 is an integer 3-vector (x, y, z). Value type; copying is cheap.
type Vec3 [Dim]int64

// Vec3f is a floating-point 3-vector (x, y, z).
type Vec3f [Dim]float64

// NewVec3 converts xs into a Vec3.
// Returns ErrWrongDimension (wrapped with the observed length) if len(xs) != 3.
func NewVec3(xs []int64) (Vec3, error) {
	var v Vec3
	if len(xs) != Dim {
		return v, fmt.Errorf("NewVec3: got %d components: %w", len(xs), ErrWrongDimension)
	}
	copy(v[:], xs)

	return v, nil
}

// NewVec3f converts xs into a Vec3f.
// Returns ErrWrongDimension (wrapped with the observed length) if len(xs) != 3.
func NewVec3f(xs []float64) (Vec3f, error) {
	var v Vec3f
	if len(xs) != Dim {
		return v, fmt.Errorf("NewVec3f: got %d components: %w", len(xs), ErrWrongDimension)
	}
	copy(v[:], xs)

	return v, nil
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Float converts v to float64 components.
func (v Vec3) Float() Vec3f {
	return Vec3f{float64(v[0]), float64(v[1]), float64(v[2])}
}

// String renders v as "[x y z]".
func (v Vec3) String() string {
	return fmt.Sprintf("[%d %d %d]", v[0], v[1], v[2])
}

// String renders v as "[x y z]" using %g.
func (v Vec3f) String() string {
	return fmt.Sprintf("[%g %g %g]", v[0], v[1], v[2])
}
