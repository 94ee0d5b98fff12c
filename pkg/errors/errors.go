// Package errors provides structured error types for the svgdx-pandoc filter.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the filter packages
//   - Machine-readable error codes for classifying failures at the
//     fatal/recoverable boundary
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes identify where a failure originated:
//   - INVALID_*: input or configuration the filter cannot work with
//   - RENDER_FAILED: the external svgdx renderer rejected a code block
//   - CONVERT_FAILED / NO_CONVERTER: PNG conversion problems
//   - ARTIFACT_WRITE: a temp image file could not be created
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unknown converter %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeArtifactWrite, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different failure categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Rendering errors (recoverable: surfaced inline in the document)
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Conversion errors (fatal: the run aborts rather than shipping a
	// document with missing images)
	ErrCodeConvertFailed Code = "CONVERT_FAILED"
	ErrCodeNoConverter   Code = "NO_CONVERTER"

	// Filesystem errors
	ErrCodeArtifactWrite Code = "ARTIFACT_WRITE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns ErrCodeInternal if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
