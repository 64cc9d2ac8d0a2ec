// Package errors provides structured error types for lifeparse.
//
// This package defines error codes and types that enable:
//   - A closed taxonomy for pattern parse failures
//   - Line numbers that point at the offending source line
//   - Machine-readable error codes for the CLI and the HTTP API
//   - Error wrapping with context preservation
//
// # Parse Errors
//
// Every parse failure carries exactly one of four codes:
//   - IO_ERROR: the underlying stream failed to yield a line
//   - INVALID_FILE_FORMAT: a #Life version tag named another format
//   - MALFORMED_LINE: a line did not match the grammar for the parser state
//   - COORDINATE_OUT_OF_RANGE: a literal or derived coordinate left int16
//
// # Usage
//
//	err := errors.MalformedLine(12)
//	if errors.Is(err, errors.ErrCodeMalformedLine) {
//	    line, _ := errors.LineOf(err) // 12
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse errors
	ErrCodeIO                   Code = "IO_ERROR"
	ErrCodeInvalidFileFormat    Code = "INVALID_FILE_FORMAT"
	ErrCodeMalformedLine        Code = "MALFORMED_LINE"
	ErrCodeCoordinateOutOfRange Code = "COORDINATE_OUT_OF_RANGE"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code, an optional source line and an
// optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Line    int    // 1-based source line, 0 when not tied to a line
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
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

// IOError reports that the input stream failed to yield a line.
func IOError(cause error) *Error {
	return Wrap(ErrCodeIO, cause, "read failed")
}

// InvalidFileFormat reports a version tag that names a different format.
func InvalidFileFormat(line int) *Error {
	return &Error{Code: ErrCodeInvalidFileFormat, Message: "invalid file format", Line: line}
}

// MalformedLine reports a line that does not match the expected grammar.
func MalformedLine(line int) *Error {
	return &Error{Code: ErrCodeMalformedLine, Message: "malformed line", Line: line}
}

// CoordinateOutOfRange reports a coordinate outside the signed 16-bit domain.
func CoordinateOutOfRange(line int) *Error {
	return &Error{Code: ErrCodeCoordinateOutOfRange, Message: "coordinate out of range", Line: line}
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

// LineOf returns the source line attached to err, if any.
func LineOf(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.Line > 0 {
		return e.Line, true
	}
	return 0, false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (with its line) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Line > 0 {
			return fmt.Sprintf("line %d: %s", e.Line, e.Message)
		}
		return e.Message
	}
	return err.Error()
}
