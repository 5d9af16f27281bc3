// SPDX-License-Identifier: MIT
// Package complexnum_test contains unit tests for complex construction and roots.
package complexnum_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/numkit/complexnum"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	assert.Equal(t, complex(3, 4), complexnum.New(3, 4))
	assert.Equal(t, complex(3, 4), complexnum.New(int32(3), int32(4)))
	assert.Equal(t, complex(-1.5, 0.25), complexnum.New(-1.5, 0.25))
	assert.Equal(t, complex(7, -2), complexnum.FromInts(7, -2))
}

// TestSqrt_Principal checks known roots and that the real part is never negative.
func TestSqrt_Principal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   complex128
		want complex128
	}{
		{"positive real", 4, 2},
		{"negative real", -4, 2i},
		{"minus one", -1, 1i},
		{"zero", 0, 0},
		{"3+4i", 3 + 4i, 2 + 1i},
		{"3-4i", 3 - 4i, 2 - 1i},
		{"-3+4i", -3 + 4i, 1 + 2i},
		{"pure imaginary", 2i, 1 + 1i},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := complexnum.Sqrt(tc.in)
			assert.Truef(t, complexnum.AlmostEqual(tc.want, got, 12),
				"Sqrt(%s) = %s, want %s", complexnum.Format(tc.in), complexnum.Format(got), complexnum.Format(tc.want))
			assert.GreaterOrEqual(t, real(got), 0.0)
		})
	}
}

// TestSqrt_SquaresBack checks r*r ≈ z over a small grid.
func TestSqrt_SquaresBack(t *testing.T) {
	t.Parallel()

	for re := -5; re <= 5; re++ {
		for im := -5; im <= 5; im++ {
			z := complexnum.New(re, im)
			r := complexnum.Sqrt(z)
			assert.GreaterOrEqual(t, real(r), 0.0)
			assert.InDeltaf(t, 0.0, cmplx.Abs(r*r-z), 1e-12, "z=%s", complexnum.Format(z))
		}
	}
}

func TestSqrtReal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, complex(0, 2), complexnum.SqrtReal(-4))
	assert.Equal(t, complex(3, 0), complexnum.SqrtReal(9))
	assert.True(t, complexnum.AlmostEqual(complex(math.Sqrt2, 0), complexnum.SqrtReal(2), 14))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, complexnum.Equal(1+2i, complexnum.New(1, 2)))
	assert.False(t, complexnum.Equal(1+2i, 1-2i))
	assert.False(t, complexnum.Equal(1+2i, 2+2i))
	nan := complex(math.NaN(), 0)
	assert.False(t, complexnum.Equal(nan, nan))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   complex128
		want string
	}{
		{3 + 4i, "3+4i"},
		{-2i, "0-2i"},
		{1.5, "1.5+0i"},
		{-0.5 + 0.25i, "-0.5+0.25i"},
		{complex(0, math.Copysign(0, -1)), "0-0i"},
		{complex(math.Inf(1), 1), "+Inf+1i"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, complexnum.Format(tc.in))
	}
}
