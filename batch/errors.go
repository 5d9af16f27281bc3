// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOp is reported for a job whose op is not one of the Op constants.
	ErrUnknownOp = errors.New("batch: unknown op")

	// ErrBadOperand is reported when a job's operands are missing, have the wrong
	// count, or are not representable in the type the op requires.
	ErrBadOperand = errors.New("batch: bad operand")

	// ErrEvalPanic wraps a panic raised while evaluating a single job
	// (e.g. integer overflow reaching vector.ISqrt).
	ErrEvalPanic = errors.New("batch: evaluation panicked")

	// ErrEmptyFile is returned by Parse when the document holds no jobs.
	ErrEmptyFile = errors.New("batch: no jobs")
)

// jobErrorf tags err with the job name and op.
func jobErrorf(j Job, err error) error {
	return fmt.Errorf("job %q (%s): %w", j.Name, j.Op, err)
}

// operandErrorf builds an ErrBadOperand with a description.
func operandErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrBadOperand)
}
