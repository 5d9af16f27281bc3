// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"slices"
)

// Op names a library operation a job can invoke.
type Op string

// Supported operations.
const (
	OpPlus           Op = "plus"
	OpTimes          Op = "times"
	OpAbs            Op = "abs"
	OpAlmostEqual    Op = "almost_equal"
	OpSumToN         Op = "sum_to_n"
	OpIterSum        Op = "iter_sum"
	OpIterSum2       Op = "iter_sum_2"
	OpNestedSum      Op = "nested_sum"
	OpFactorial      Op = "factorial"
	OpMultiply       Op = "multiply"
	OpMultiplyScalar Op = "multiply_scalar"
	OpDot            Op = "dot"
	OpCross          Op = "cross"
	OpLength         Op = "length"
	OpNormalize      Op = "normalize"
	OpSqrt           Op = "sqrt"
	OpDet            Op = "det"
)

// knownOps lists every Op in documentation order.
var knownOps = []Op{
	OpPlus, OpTimes, OpAbs, OpAlmostEqual,
	OpSumToN, OpIterSum, OpIterSum2, OpNestedSum, OpFactorial,
	OpMultiply, OpMultiplyScalar, OpDot, OpCross, OpLength, OpNormalize,
	OpSqrt, OpDet,
}

// Ops returns all supported operations.
func Ops() []Op {
	return slices.Clone(knownOps)
}

// Valid reports whether op is supported.
func (op Op) Valid() bool {
	return slices.Contains(knownOps, op)
}

// Job is one entry of a job file.
//
// Operand fields by op:
//
//	plus, times, abs, sum_to_n, iter_sum,
//	iter_sum_2, factorial, nested_sum  → args
//	almost_equal                       → args: [x, y, places]
//	multiply, dot, cross               → a, b
//	multiply_scalar                    → a, args: [s]
//	length, normalize                  → a
//	sqrt                               → complex: [re, im]  (or args: [x])
//	det                                → matrix, or identity: n
type Job struct {
	Name     string      `yaml:"name"`
	Op       Op          `yaml:"op"`
	Args     []float64   `yaml:"args,omitempty"`
	A        []float64   `yaml:"a,omitempty"`
	B        []float64   `yaml:"b,omitempty"`
	Complex  []float64   `yaml:"complex,omitempty"`
	Matrix   [][]float64 `yaml:"matrix,omitempty"`
	Identity int         `yaml:"identity,omitempty"`
}

// File is the decoded job file.
type File struct {
	// Concurrency bounds parallel evaluation; <= 0 means GOMAXPROCS.
	Concurrency int   `yaml:"concurrency,omitempty"`
	Jobs        []Job `yaml:"jobs"`
}

// Result is the outcome of one job. Exactly one of Value and Err is meaningful.
type Result struct {
	Name  string
	Op    Op
	Value any
	Err   error
}

// String renders the result for diagnostics: "name: value" or "name: error: ...".
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Name, r.Err)
	}

	return fmt.Sprintf("%s: %s", r.Name, FormatValue(r.Value))
}
