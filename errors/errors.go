package errors

import (
	stderrors "errors"
	"fmt"
)

// TransformError is the unified error type for failed transformations.
type TransformError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Stage names the operation that failed (e.g. "map", "reduce").
	Stage string `json:"stage"`
	// Index is the position of the element that triggered the failure,
	// or -1 when the failure is not tied to a single element.
	Index int `json:"index"`
	// Value is the offending element, when known.
	Value any `json:"value,omitempty"`
	// Cause is the underlying error returned by the caller's function.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *TransformError) Error() string {
	if e.Index >= 0 {
		if e.Cause != nil {
			return fmt.Sprintf("%s: stage %q failed at element %d (cause: %v)", e.Code, e.Stage, e.Index, e.Cause)
		}
		return fmt.Sprintf("%s: stage %q failed at element %d", e.Code, e.Stage, e.Index)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: stage %q failed (cause: %v)", e.Code, e.Stage, e.Cause)
	}
	return fmt.Sprintf("%s: stage %q failed", e.Code, e.Stage)
}

// Unwrap returns the underlying cause of the error.
func (e *TransformError) Unwrap() error { return e.Cause }

// WithValue records the offending element and returns the receiver.
func (e *TransformError) WithValue(v any) *TransformError {
	e.Value = v
	return e
}

// Conversion creates a TransformError for a transform that could not
// produce a value for the element at index.
func Conversion(stage string, index int, cause error) *TransformError {
	return &TransformError{
		Code:  ErrCodeConversion,
		Stage: stage,
		Index: index,
		Cause: cause,
	}
}

// StageAborted creates a TransformError for a stage that stopped because
// of an upstream or caller-supplied failure not tied to one element.
func StageAborted(stage string, cause error) *TransformError {
	return &TransformError{
		Code:  ErrCodeStageAborted,
		Stage: stage,
		Index: -1,
		Cause: cause,
	}
}

// IsConversion reports whether err is (or wraps) a conversion failure.
func IsConversion(err error) bool {
	var te *TransformError
	if stderrors.As(err, &te) {
		return te.Code == ErrCodeConversion
	}
	return false
}

// AsTransform extracts a *TransformError from err's chain, if present.
func AsTransform(err error) (*TransformError, bool) {
	var te *TransformError
	ok := stderrors.As(err, &te)
	return te, ok
}
