// Package scalar holds the smallest building blocks of numkit: fixed-width
// integer arithmetic and decimal-place approximate equality.
//
// 🚀 What's inside?
//
//	Plus, Times, Abs: native fixed-width integer arithmetic (wraps on overflow)
//	IsAlmostEqual: |x-y| < 10^(-places), a decimal-place comparison
//	Tolerance: the 10^(-places) transform used by IsAlmostEqual
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/scalar"
//
//	scalar.Plus(1, 1)                              // 2
//	scalar.IsAlmostEqual(3.14159265, 3.14159, 5)    // true  (agree to 5 places)
//	scalar.IsAlmostEqual(3.14159265, 3.14159, 7)    // false (differ at the 6th)
//
// Note the third argument of IsAlmostEqual is NOT an absolute tolerance: it is
// the number of decimal places two values must agree on.
package scalar
