// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/complexnum"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/scalar"
	"github.com/katalvlaran/numkit/series"
	"github.com/katalvlaran/numkit/vector"
)

const (
	// maxIterations caps the work of iterative ops (iter_sum, nested_sum, ...)
	// so a single job cannot stall a run.
	maxIterations = 1 << 24

	// MaxDetDim caps the size of matrices handed to Det.
	MaxDetDim = 512

	// twoTo63 is 2^63 as a float64, the first value outside int64.
	twoTo63 = 9223372036854775808.0
)

// Evaluate runs a single job and returns its value.
// Errors are tagged with the job name and op; a panic inside a library call is
// converted into ErrEvalPanic.
func Evaluate(j Job) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, jobErrorf(j, fmt.Errorf("%v: %w", p, ErrEvalPanic))
		}
	}()

	v, err = evaluate(j)
	if err != nil {
		return nil, jobErrorf(j, err)
	}

	return v, nil
}

// evaluate dispatches on the op.
func evaluate(j Job) (any, error) {
	switch j.Op {
	case OpPlus:
		x, y, err := int32Pair(j.Args)
		if err != nil {
			return nil, err
		}
		return scalar.Plus(x, y), nil

	case OpTimes:
		xs, err := intArgs(j.Args, 2)
		if err != nil {
			return nil, err
		}
		return scalar.Times(xs[0], xs[1]), nil

	case OpAbs:
		xs, err := intArgs(j.Args, 1)
		if err != nil {
			return nil, err
		}
		if xs[0] < math.MinInt32 || xs[0] > math.MaxInt32 {
			return nil, operandErrorf("args[0]=%d outside int32", xs[0])
		}
		return scalar.Abs(int32(xs[0])), nil

	case OpAlmostEqual:
		if len(j.Args) != 3 {
			return nil, operandErrorf("want args [x, y, places], got %d values", len(j.Args))
		}
		return scalar.IsAlmostEqual(j.Args[0], j.Args[1], j.Args[2]), nil

	case OpSumToN:
		if len(j.Args) != 1 {
			return nil, operandErrorf("want 1 arg, got %d", len(j.Args))
		}
		return series.SumToN(j.Args[0]), nil

	case OpIterSum, OpIterSum2, OpFactorial:
		xs, err := intArgs(j.Args, 1)
		if err != nil {
			return nil, err
		}
		if xs[0] > maxIterations {
			return nil, operandErrorf("n=%d exceeds %d", xs[0], maxIterations)
		}
		switch j.Op {
		case OpIterSum:
			return series.IterSum(xs[0]), nil
		case OpIterSum2:
			return series.IterSum2(xs[0]), nil
		default:
			return series.Factorial(xs[0]), nil
		}

	case OpNestedSum:
		xs, err := intArgs(j.Args, 4)
		if err != nil {
			return nil, err
		}
		rows, cols := span(xs[0], xs[1]), span(xs[2], xs[3])
		if rows > maxIterations || cols > maxIterations || rows*cols > maxIterations {
			return nil, operandErrorf("ranges span more than %d terms", maxIterations)
		}
		return series.NestedSum(xs[0], xs[1], xs[2], xs[3]), nil

	case OpMultiply:
		a, b, err := intVectors(j)
		if err != nil {
			return nil, err
		}
		return vector.Multiply(a, b), nil

	case OpMultiplyScalar:
		a, err := toInts("a", j.A)
		if err != nil {
			return nil, err
		}
		s, err := intArgs(j.Args, 1)
		if err != nil {
			return nil, err
		}
		return vector.MultiplyScalar(a, s[0]), nil

	case OpDot, OpCross:
		a, err := vec3("a", j.A)
		if err != nil {
			return nil, err
		}
		b, err := vec3("b", j.B)
		if err != nil {
			return nil, err
		}
		if j.Op == OpDot {
			return vector.Dot(a, b), nil
		}
		return vector.Cross(a, b), nil

	case OpLength:
		a, err := vec3("a", j.A)
		if err != nil {
			return nil, err
		}
		n, err := vector.LengthChecked(a)
		if err != nil {
			return nil, fmt.Errorf("operand a: %w: %w", ErrBadOperand, err)
		}
		return n, nil

	case OpNormalize:
		a, err := vector.NewVec3f(j.A)
		if err != nil {
			return nil, fmt.Errorf("operand a: %w: %w", ErrBadOperand, err)
		}
		return vector.Normalize(a), nil

	case OpSqrt:
		switch {
		case len(j.Complex) == 2:
			return complexnum.Sqrt(complexnum.New(j.Complex[0], j.Complex[1])), nil
		case len(j.Complex) == 0 && len(j.Args) == 1:
			return complexnum.SqrtReal(j.Args[0]), nil
		default:
			return nil, operandErrorf("want complex: [re, im] or args: [x]")
		}

	case OpDet:
		return evalDet(j)
	}

	return nil, ErrUnknownOp
}

// evalDet builds the matrix described by the job and returns its determinant.
func evalDet(j Job) (any, error) {
	var (
		m   *matrix.Dense
		err error
	)
	switch {
	case j.Identity != 0 && len(j.Matrix) != 0:
		return nil, operandErrorf("set either matrix or identity, not both")
	case j.Identity != 0:
		if j.Identity < 0 || j.Identity > MaxDetDim {
			return nil, operandErrorf("identity=%d outside [1, %d]", j.Identity, MaxDetDim)
		}
		m, err = matrix.NewIdentity(j.Identity)
	case len(j.Matrix) > MaxDetDim:
		return nil, operandErrorf("matrix has %d rows, limit %d", len(j.Matrix), MaxDetDim)
	default:
		m, err = matrix.NewFromRows(j.Matrix)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOperand, err)
	}

	d, err := matrix.Det(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOperand, err)
	}

	return d, nil
}

// span returns the length of [lo, hi), saturating at math.MaxInt64.
func span(lo, hi int64) int64 {
	if hi <= lo {
		return 0
	}
	if d := hi - lo; d > 0 {
		return d
	}

	return math.MaxInt64 // hi-lo overflowed
}

// toInt converts an integral float64 into int64.
func toInt(name string, v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, operandErrorf("%s=%v is not an integer", name, v)
	}
	if v < -twoTo63 || v >= twoTo63 {
		return 0, operandErrorf("%s=%v outside int64", name, v)
	}

	return int64(v), nil
}

// toInts converts every element of xs via toInt.
func toInts(name string, xs []float64) ([]int64, error) {
	out := make([]int64, len(xs))
	for i, v := range xs {
		n, err := toInt(fmt.Sprintf("%s[%d]", name, i), v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

// intArgs requires exactly n integral args.
func intArgs(args []float64, n int) ([]int64, error) {
	if len(args) != n {
		return nil, operandErrorf("want %d args, got %d", n, len(args))
	}

	return toInts("args", args)
}

// int32Pair requires exactly two integral args within int32.
func int32Pair(args []float64) (int32, int32, error) {
	xs, err := intArgs(args, 2)
	if err != nil {
		return 0, 0, err
	}
	for i, x := range xs {
		if x < math.MinInt32 || x > math.MaxInt32 {
			return 0, 0, operandErrorf("args[%d]=%d outside int32", i, x)
		}
	}

	return int32(xs[0]), int32(xs[1]), nil
}

// intVectors converts operands a and b of an element-wise op.
func intVectors(j Job) ([]int64, []int64, error) {
	a, err := toInts("a", j.A)
	if err != nil {
		return nil, nil, err
	}
	b, err := toInts("b", j.B)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// vec3 converts an operand into a fixed 3-vector.
func vec3(name string, xs []float64) (vector.Vec3, error) {
	ints, err := toInts(name, xs)
	if err != nil {
		return vector.Vec3{}, err
	}
	v, err := vector.NewVec3(ints)
	if err != nil {
		return vector.Vec3{}, fmt.Errorf("operand %s: %w: %w", name, ErrBadOperand, err)
	}

	return v, nil
}

// FormatValue renders a job value for diagnostic output.
// Complex values use complexnum.Format; everything else uses fmt defaults.
func FormatValue(v any) string {
	switch x := v.(type) {
	case complex128:
		return complexnum.Format(x)
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprint(v)
	}
}
