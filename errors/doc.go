// Package errors provides structured error types for seqkit transformations.
//
// It implements a single error type, TransformError, carrying a
// machine-readable code, the name of the stage that failed, and the index of
// the offending element, so chain callers can tell which stage and element
// aborted a run.
package errors
