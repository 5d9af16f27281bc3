// SPDX-License-Identifier: MIT
package batch_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numkit/batch"
	"github.com/katalvlaran/numkit/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_Values runs one job per op and checks the typed value.
func TestEvaluate_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		job  batch.Job
		want any
	}{
		{"plus", batch.Job{Op: batch.OpPlus, Args: []float64{1, 1}}, int32(2)},
		{"plus wraps", batch.Job{Op: batch.OpPlus, Args: []float64{math.MaxInt32, 1}}, int32(math.MinInt32)},
		{"times", batch.Job{Op: batch.OpTimes, Args: []float64{6, -7}}, int64(-42)},
		{"abs", batch.Job{Op: batch.OpAbs, Args: []float64{-9}}, int32(9)},
		{"almost_equal 5", batch.Job{Op: batch.OpAlmostEqual, Args: []float64{3.14159265, 3.14159, 5}}, true},
		{"almost_equal 7", batch.Job{Op: batch.OpAlmostEqual, Args: []float64{3.14159265, 3.14159, 7}}, false},
		{"sum_to_n", batch.Job{Op: batch.OpSumToN, Args: []float64{100}}, 5050.0},
		{"iter_sum", batch.Job{Op: batch.OpIterSum, Args: []float64{101}}, int64(5050)},
		{"iter_sum_2", batch.Job{Op: batch.OpIterSum2, Args: []float64{12}}, int64(144)},
		{"factorial", batch.Job{Op: batch.OpFactorial, Args: []float64{6}}, int64(720)},
		{"nested_sum", batch.Job{Op: batch.OpNestedSum, Args: []float64{0, 3, 0, 3}}, int64(27)},
		{"multiply", batch.Job{Op: batch.OpMultiply, A: []float64{1, 2}, B: []float64{2, 3, 4}}, []int64{2, 6}},
		{"multiply_scalar", batch.Job{Op: batch.OpMultiplyScalar, A: []float64{2, 6}, Args: []float64{3}}, []int64{6, 18}},
		{"dot", batch.Job{Op: batch.OpDot, A: []float64{1, 2, 3}, B: []float64{4, 5, 6}}, int64(32)},
		{"cross", batch.Job{Op: batch.OpCross, A: []float64{1, 0, 0}, B: []float64{0, 1, 0}}, vector.Vec3{0, 0, 1}},
		{"length", batch.Job{Op: batch.OpLength, A: []float64{0, 4, -3}}, int64(5)},
		{"normalize zero", batch.Job{Op: batch.OpNormalize, A: []float64{0, 0, 0}}, vector.Vec3f{}},
		{"sqrt complex", batch.Job{Op: batch.OpSqrt, Complex: []float64{-4, 0}}, complex(0, 2)},
		{"sqrt real", batch.Job{Op: batch.OpSqrt, Args: []float64{-1}}, complex(0, 1)},
		{"det matrix", batch.Job{Op: batch.OpDet, Matrix: [][]float64{{1, 2}, {3, 4}}}, -2.0},
		{"det identity", batch.Job{Op: batch.OpDet, Identity: 100}, 1.0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := batch.Evaluate(tc.job)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEvaluate_Errors checks the sentinel reported for malformed jobs.
func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		job     batch.Job
		wantErr error
	}{
		{"unknown op", batch.Job{Name: "x", Op: "transpose"}, batch.ErrUnknownOp},
		{"empty op", batch.Job{Name: "x"}, batch.ErrUnknownOp},
		{"plus arity", batch.Job{Op: batch.OpPlus, Args: []float64{1}}, batch.ErrBadOperand},
		{"plus out of int32", batch.Job{Op: batch.OpPlus, Args: []float64{1 << 40, 1}}, batch.ErrBadOperand},
		{"fractional int", batch.Job{Op: batch.OpTimes, Args: []float64{1.5, 2}}, batch.ErrBadOperand},
		{"NaN int", batch.Job{Op: batch.OpIterSum, Args: []float64{math.NaN()}}, batch.ErrBadOperand},
		{"huge int", batch.Job{Op: batch.OpTimes, Args: []float64{1e300, 2}}, batch.ErrBadOperand},
		{"iteration cap", batch.Job{Op: batch.OpIterSum, Args: []float64{1 << 30}}, batch.ErrBadOperand},
		{"nested cap", batch.Job{Op: batch.OpNestedSum, Args: []float64{0, 1 << 13, 0, 1 << 13}}, batch.ErrBadOperand},
		{"almost_equal arity", batch.Job{Op: batch.OpAlmostEqual, Args: []float64{1, 2}}, batch.ErrBadOperand},
		{"dot short", batch.Job{Op: batch.OpDot, A: []float64{1, 2}, B: []float64{1, 2, 3}}, vector.ErrWrongDimension},
		{"cross long", batch.Job{Op: batch.OpCross, A: []float64{1, 2, 3}, B: []float64{1, 2, 3, 4}}, batch.ErrBadOperand},
		{"normalize short", batch.Job{Op: batch.OpNormalize, A: []float64{1}}, vector.ErrWrongDimension},
		{"sqrt no operands", batch.Job{Op: batch.OpSqrt}, batch.ErrBadOperand},
		{"det both", batch.Job{Op: batch.OpDet, Identity: 2, Matrix: [][]float64{{1}}}, batch.ErrBadOperand},
		{"det negative identity", batch.Job{Op: batch.OpDet, Identity: -3}, batch.ErrBadOperand},
		{"det non-square", batch.Job{Op: batch.OpDet, Matrix: [][]float64{{1, 2}}}, batch.ErrBadOperand},
		{"det ragged", batch.Job{Op: batch.OpDet, Matrix: [][]float64{{1, 2}, {3}}}, batch.ErrBadOperand},
		{"det empty", batch.Job{Op: batch.OpDet}, batch.ErrBadOperand},
		{"length overflow negative wrap", batch.Job{Op: batch.OpLength, A: []float64{3037000500, 0, 0}}, vector.ErrOverflow},
		{"length overflow zero wrap", batch.Job{Op: batch.OpLength, A: []float64{4294967296, 0, 0}}, vector.ErrOverflow},
		{"length overflow is bad operand", batch.Job{Op: batch.OpLength, A: []float64{4294967296, 0, 0}}, batch.ErrBadOperand},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := batch.Evaluate(tc.job)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.Truef(t, errors.Is(err, tc.wantErr), "want %v, got %v", tc.wantErr, err)
		})
	}
}

func TestEvaluate_ErrorNamesJob(t *testing.T) {
	t.Parallel()

	_, err := batch.Evaluate(batch.Job{Name: "broken", Op: batch.OpDot})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `job "broken" (dot)`)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0+2i", batch.FormatValue(complex(0, 2)))
	assert.Equal(t, "5050", batch.FormatValue(5050.0))
	assert.Equal(t, "[6 18]", batch.FormatValue([]int64{6, 18}))
	assert.Equal(t, "[0 0 1]", batch.FormatValue(vector.Vec3{0, 0, 1}))
	assert.Equal(t, "true", batch.FormatValue(true))

	r := batch.Result{Name: "root", Value: complex(0, 2)}
	assert.Equal(t, "root: 0+2i", r.String())
	r = batch.Result{Name: "bad", Err: batch.ErrUnknownOp}
	assert.Equal(t, "bad: error: batch: unknown op", r.String())
}
