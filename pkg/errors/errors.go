package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Composition errors
	ErrConfigDependency ErrorCode = "CONFIG_DEPENDENCY"
	ErrMissingTag       ErrorCode = "MISSING_TAG"
	ErrPluginUnknown    ErrorCode = "PLUGIN_UNKNOWN"

	// Output errors
	ErrOutput ErrorCode = "OUTPUT"
)

// FlatlintError represents a structured error with code and details
type FlatlintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FlatlintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FlatlintError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FlatlintError) Is(target error) bool {
	var targetErr *FlatlintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FlatlintError with the given code and message
func New(code ErrorCode, message string) *FlatlintError {
	return &FlatlintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FlatlintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FlatlintError {
	return &FlatlintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FlatlintError
func Wrap(err error, code ErrorCode, message string) *FlatlintError {
	if err == nil {
		return nil
	}
	return &FlatlintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FlatlintError {
	if err == nil {
		return nil
	}
	return &FlatlintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FlatlintError) WithDetail(key string, value interface{}) *FlatlintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FlatlintError) WithDetails(details map[string]interface{}) *FlatlintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var flatErr *FlatlintError
	if errors.As(err, &flatErr) {
		return flatErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FlatlintError
func GetErrorCode(err error) ErrorCode {
	var flatErr *FlatlintError
	if errors.As(err, &flatErr) {
		return flatErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FlatlintError
func GetErrorDetails(err error) map[string]interface{} {
	var flatErr *FlatlintError
	if errors.As(err, &flatErr) {
		return flatErr.Details
	}
	return nil
}
