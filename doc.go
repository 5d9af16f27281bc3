// Package numkit is a small library of pure numeric helpers, from integer
// arithmetic to determinants.
//
// Everything lives in subpackages:
//
//	scalar/       wrapping int32/int64 arithmetic, Abs, tolerance-based float equality
//	series/       iterator-based summation: Range, Fold, triangular numbers, factorial
//	vector/       fixed 3-component vectors: Dot, Cross, integer Length, Normalize
//	complexnum/   principal complex square roots and complex formatting
//	matrix/       Dense matrices, Det with LU partial pivoting, LU factors
//	batch/        YAML job files evaluated concurrently with structured logging
//
// The cmd/numkit binary exposes each helper as a cobra subcommand plus
// "numkit eval FILE" for batch job files:
//
//	numkit det "1,2;3,4"          # -2
//	numkit sqrt -- -4             # 0+2i
//	numkit eval jobs.yaml -c 4
//
// No function keeps state between calls, so all of them are safe for
// concurrent use.
//
//	go get github.com/katalvlaran/numkit
package numkit
