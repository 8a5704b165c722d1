// Package errors carries machine-readable codes through chart validation,
// rendering and both outer surfaces. The CLI prints [UserMessage] and exits
// with [ExitCode]; the HTTP API maps codes to statuses and returns the code
// in its error body.
//
//	if len(values) == 0 {
//	    return errors.New(errors.ErrCodeInvalidInput, "values cannot be empty")
//	}
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeFileNotFound, err, "read request %s", path)
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error class.
type Code string

const (
	// ErrCodeInvalidInput rejects chart data or geometry: empty, negative,
	// non-finite or zero-sum values, or an out-of-range radius or size.
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	// ErrCodeInvalidFormat names an output or request format we cannot write.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	// ErrCodeInvalidColor rejects a color token that is not safe to emit.
	ErrCodeInvalidColor Code = "INVALID_COLOR"
	// ErrCodeInvalidRequest is a request document that does not decode.
	ErrCodeInvalidRequest Code = "INVALID_REQUEST"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeTimeout Code = "TIMEOUT"

	ErrCodeInternal Code = "INTERNAL_ERROR"
	// ErrCodeUnsupported is returned when rasterizing without rsvg-convert.
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// IsValidation reports whether c describes bad caller input.
func (c Code) IsValidation() bool {
	return strings.HasPrefix(string(c), "INVALID_")
}

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

// GetCode returns the code of the first *Error in the chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the first *Error in the chain without
// its code, or err.Error() for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for validation
// errors and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case GetCode(err).IsValidation():
		return 2
	default:
		return 1
	}
}
