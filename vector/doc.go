// Package vector implements element-wise products over integer sequences and
// geometric operations on fixed 3-component vectors.
//
// 🚀 Two families of operations:
//
//	Sequences ([]int64, any length):
//	  • Multiply: element-wise product with truncating-zip semantics
//	  • MultiplyScalar: scale every element by s
//
//	Fixed 3-vectors (Vec3 = [3]int64, Vec3f = [3]float64):
//	  • Dot, Cross: standard right-handed formulas
//	  • Length: INTEGER floor square root of x²+y²+z²
//	  • Normalize: floating-point unit vector, zero vector passes through
//
// Length and Normalize intentionally use different square roots: Length([0,4,-3])
// is exactly 5, and for non-square sums it truncates downward, while Normalize
// works in float64 throughout.
//
// Because Vec3 and Vec3f are arrays, a "short" vector cannot exist. Slices coming
// from outside (flags, files) are converted with NewVec3/NewVec3f, which return
// ErrWrongDimension instead of faulting later on an index.
package vector
