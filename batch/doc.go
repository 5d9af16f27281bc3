// Package batch evaluates numkit operations described in a YAML job file.
//
// A job file lists named jobs, each naming an operation and its operands:
//
//	concurrency: 4
//	jobs:
//	  - name: identity-100
//	    op: det
//	    identity: 100
//	  - name: cross
//	    op: cross
//	    a: [1, 0, 0]
//	    b: [0, 1, 0]
//
// Load/Parse decode the file, Runner.Run evaluates the jobs concurrently (bounded
// by errgroup's limit) and returns one Result per job in file order. A job with
// an unknown op or malformed operands gets its own error; the other jobs still run.
package batch
