// Package complexnum builds complex128 values from integer or floating-point
// parts, takes principal square roots, and renders values as "a+bi" text.
//
// Square roots follow the conventional branch cut along the negative real axis:
// the result always has a non-negative real part, so Sqrt(-4) == 2i.
//
// Format is meant for diagnostics (CLI output, logs, test messages); there is
// no parser for its output.
package complexnum
