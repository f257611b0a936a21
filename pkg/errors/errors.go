package errors

import (
	"errors"
	"fmt"
)

// Error codes, one per failure class of a run.
const (
	CodeMissingInput = "missing_input"
	CodeTransport    = "transport"
	CodeFilesystem   = "filesystem"
)

// Sentinels matching any Error carrying the corresponding code.
var (
	ErrMissingInput = &Error{Code: CodeMissingInput}
	ErrTransport    = &Error{Code: CodeTransport}
	ErrFilesystem   = &Error{Code: CodeFilesystem}
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	default:
		return e.Code
	}
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the code sentinels declared above.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" || t.Err != nil {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// NewWithCode creates a new coded error with a message
func NewWithCode(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsMissingInput returns true if the error is a missing input error
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

// IsTransport returns true if the error is a network or HTTP status error
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsFilesystem returns true if the error is a local filesystem error
func IsFilesystem(err error) bool {
	return errors.Is(err, ErrFilesystem)
}
