package paginate

import (
	"errors"
	"fmt"
)

// Application error codes
const (
	EINVALID  = "invalid"  // Invalid caller input
	ECONFIG   = "config"   // Required collaborator or option missing
	EINTERNAL = "internal" // Unexpected failure
)

// Error represents a pagination error with structured information.
type Error struct {
	Code    string // Machine-readable error code
	Op      string // Operation that failed (e.g., "paginate.metadata")
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code of the root error, or EINTERNAL if none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "an internal error occurred"
}

// Convenience constructors for common error types

// Invalid creates a validation error.
func Invalid(op, format string, args ...interface{}) *Error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// Configuration creates an error for a missing renderer or option.
func Configuration(op, message string) *Error {
	return &Error{
		Code:    ECONFIG,
		Op:      op,
		Message: message,
	}
}

// Internal creates an internal error, wrapping the underlying error.
func Internal(err error, op, message string) *Error {
	return &Error{
		Code:    EINTERNAL,
		Op:      op,
		Message: message,
		Err:     err,
	}
}
