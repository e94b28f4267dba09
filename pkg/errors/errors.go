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

	// Input validation errors
	ErrArchiveNotFound ErrorCode = "ARCHIVE_NOT_FOUND"
	ErrArchiveInvalid  ErrorCode = "ARCHIVE_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Pipeline errors
	ErrExtractionFailed   ErrorCode = "EXTRACTION_FAILED"
	ErrInspectionFailed   ErrorCode = "INSPECTION_FAILED"
	ErrPlacementFailed    ErrorCode = "PLACEMENT_FAILED"
	ErrNameCollision      ErrorCode = "NAME_COLLISION"
	ErrSanitizationFailed ErrorCode = "SANITIZATION_FAILED"
	ErrPreconditionFailed ErrorCode = "PRECONDITION_FAILED"
)

// UnfurlError represents a structured error with code and details
type UnfurlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UnfurlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UnfurlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *UnfurlError) Is(target error) bool {
	var targetErr *UnfurlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UnfurlError with the given code and message
func New(code ErrorCode, message string) *UnfurlError {
	return &UnfurlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UnfurlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UnfurlError {
	return &UnfurlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an UnfurlError
func Wrap(err error, code ErrorCode, message string) *UnfurlError {
	if err == nil {
		return nil
	}
	return &UnfurlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UnfurlError {
	if err == nil {
		return nil
	}
	return &UnfurlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UnfurlError) WithDetail(key string, value interface{}) *UnfurlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *UnfurlError) WithDetails(details map[string]interface{}) *UnfurlError {
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
	var unfurlErr *UnfurlError
	if errors.As(err, &unfurlErr) {
		return unfurlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an UnfurlError
func GetErrorCode(err error) ErrorCode {
	var unfurlErr *UnfurlError
	if errors.As(err, &unfurlErr) {
		return unfurlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an UnfurlError
func GetErrorDetails(err error) map[string]interface{} {
	var unfurlErr *UnfurlError
	if errors.As(err, &unfurlErr) {
		return unfurlErr.Details
	}
	return nil
}
