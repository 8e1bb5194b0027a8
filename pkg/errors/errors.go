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

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Capability database errors
	ErrTerminfoLoad ErrorCode = "TERMINFO_LOAD"

	// Parameterization errors
	ErrParamType        ErrorCode = "PARAM_TYPE"
	ErrParamCount       ErrorCode = "PARAM_COUNT"
	ErrCapabilityMisuse ErrorCode = "CAPABILITY_MISUSE"

	// Transport errors
	ErrSerialize ErrorCode = "SERIALIZE"
)

// CapstyleError represents a structured error with code and details
type CapstyleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CapstyleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CapstyleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CapstyleError) Is(target error) bool {
	var targetErr *CapstyleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CapstyleError with the given code and message
func New(code ErrorCode, message string) *CapstyleError {
	return &CapstyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CapstyleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CapstyleError {
	return &CapstyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CapstyleError
func Wrap(err error, code ErrorCode, message string) *CapstyleError {
	if err == nil {
		return nil
	}
	return &CapstyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CapstyleError {
	if err == nil {
		return nil
	}
	return &CapstyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CapstyleError) WithDetail(key string, value interface{}) *CapstyleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var capErr *CapstyleError
	if errors.As(err, &capErr) {
		return capErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CapstyleError
func GetErrorCode(err error) ErrorCode {
	var capErr *CapstyleError
	if errors.As(err, &capErr) {
		return capErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CapstyleError
func GetErrorDetails(err error) map[string]interface{} {
	var capErr *CapstyleError
	if errors.As(err, &capErr) {
		return capErr.Details
	}
	return nil
}
