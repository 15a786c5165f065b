// Package errors provides structured error types for the Gateloom application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI surfaces
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a flat INVALID_*/UNSAT_* naming convention. Validation
// codes are raised at construction or call time; UNSAT_LAYOUT is raised only
// when a layout is solved and indicates a contradictory constraint set that
// the caller must fix — it is never retried.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGate, "equal endpoints: %d", bit)
//	if errors.Is(err, errors.ErrCodeInvalidGate) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidManifest, origErr, "load %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeInvalidGate indicates malformed gate parameters (equal
	// endpoints, negative track index). Raised at construction time.
	ErrCodeInvalidGate Code = "INVALID_GATE"

	// ErrCodeInvalidConstraint indicates a malformed alignment request
	// (self-pair, out-of-range, or unknown index). Raised at call time.
	ErrCodeInvalidConstraint Code = "INVALID_CONSTRAINT"

	// ErrCodeUnsatLayout indicates the accumulated precedence and alignment
	// constraints admit no feasible assignment. Raised at solve time; fatal.
	ErrCodeUnsatLayout Code = "UNSAT_LAYOUT"

	// ErrCodeInvalidMargin indicates a negative margin configuration.
	ErrCodeInvalidMargin Code = "INVALID_MARGIN"

	// ErrCodeInvalidManifest indicates a malformed circuit file.
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"

	// ErrCodeInvalidFormat indicates an unknown output format.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
