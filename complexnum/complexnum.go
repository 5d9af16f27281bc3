// SPDX-License-Identifier: MIT

package complexnum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/numkit/scalar"
)

// Real is the set of component types accepted by New.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// New returns re + im·i. Integer parts are converted to float64 exactly as long
// as they fit the 53-bit mantissa.
func New[T Real](re, im T) complex128 {
	return complex(float64(re), float64(im))
}

// FromInts is New specialised to int64 parts.
func FromInts(re, im int64) complex128 {
	return New(re, im)
}

// Sqrt returns the principal square root of z (real part >= 0).
// On the negative real axis the sign of the imaginary part of z selects the
// side of the cut: Sqrt(-4+0i) = 2i, Sqrt(-4-0i) = -2i.
func Sqrt(z complex128) complex128 {
	return cmplx.Sqrt(z)
}

// SqrtReal returns the square root of a real number as a complex value, so that
// negative inputs yield a purely imaginary result instead of NaN.
func SqrtReal(x float64) complex128 {
	return cmplx.Sqrt(complex(x, 0))
}

// Equal reports whether both components of a and b are equal.
func Equal(a, b complex128) bool {
	return real(a) == real(b) && imag(a) == imag(b)
}

// AlmostEqual reports whether both components agree to the given number of
// decimal places (see scalar.IsAlmostEqual).
func AlmostEqual(a, b complex128, places float64) bool {
	return scalar.IsAlmostEqual(real(a), real(b), places) &&
		scalar.IsAlmostEqual(imag(a), imag(b), places)
}

// Format renders z as "a+bi" or "a-bi" using %g for each part.
//
//	Format(3+4i)  == "3+4i"
//	Format(0-2i)  == "0-2i"
//	Format(1.5)   == "1.5+0i"
func Format(z complex128) string {
	re, im := real(z), imag(z)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}

	return fmt.Sprintf("%g%s%gi", re, sign, im)
}
