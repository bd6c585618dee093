package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Option and configuration errors
	ErrInvalidOption ErrorCode = "INVALID_OPTION"
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"

	// Device errors
	ErrDeviceEnum  ErrorCode = "DEVICE_ENUM"
	ErrDeviceRead  ErrorCode = "DEVICE_READ"
	ErrDeviceWrite ErrorCode = "DEVICE_WRITE"

	// Comparison outcome
	ErrDrift ErrorCode = "DRIFT"
)

// SpanlineError represents a structured error with code and details
type SpanlineError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SpanlineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SpanlineError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SpanlineError) Is(target error) bool {
	var targetErr *SpanlineError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SpanlineError with the given code and message
func New(code ErrorCode, message string) *SpanlineError {
	return &SpanlineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SpanlineError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SpanlineError {
	return &SpanlineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SpanlineError
func Wrap(err error, code ErrorCode, message string) *SpanlineError {
	if err == nil {
		return nil
	}
	return &SpanlineError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SpanlineError {
	if err == nil {
		return nil
	}
	return &SpanlineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SpanlineError) WithDetail(key string, value interface{}) *SpanlineError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var spanlineErr *SpanlineError
	if errors.As(err, &spanlineErr) {
		return spanlineErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SpanlineError
func GetErrorCode(err error) ErrorCode {
	var spanlineErr *SpanlineError
	if errors.As(err, &spanlineErr) {
		return spanlineErr.Code
	}
	return ErrUnknown
}
