package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeConversion indicates a transform could not produce a value
	// for an element (e.g. parsing text that is not a number).
	ErrCodeConversion ErrorCode = "CONVERSION_FAILED"
	// ErrCodeStageAborted indicates a pipeline stage stopped early because
	// an upstream stage or a caller-supplied function returned an error.
	ErrCodeStageAborted ErrorCode = "STAGE_ABORTED"
)
