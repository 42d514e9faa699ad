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

	// Structure errors
	ErrCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	ErrDuplicateID      ErrorCode = "DUPLICATE_ID"
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrShapeMismatch    ErrorCode = "SHAPE_MISMATCH"

	// Stream errors
	ErrSourceRead  ErrorCode = "SOURCE_READ"
	ErrSourceStart ErrorCode = "SOURCE_START"
	ErrSourceExit  ErrorCode = "SOURCE_EXIT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Style errors
	ErrStyleLoad ErrorCode = "STYLE_LOAD"
)

// BoardError represents a structured error with code and details
type BoardError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BoardError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BoardError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a BoardError carrying the same code
func (e *BoardError) Is(target error) bool {
	var targetErr *BoardError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BoardError with the given code and message
func New(code ErrorCode, message string) *BoardError {
	return &BoardError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BoardError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BoardError {
	return &BoardError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BoardError
func Wrap(err error, code ErrorCode, message string) *BoardError {
	if err == nil {
		return nil
	}
	return &BoardError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BoardError {
	if err == nil {
		return nil
	}
	return &BoardError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BoardError) WithDetail(key string, value interface{}) *BoardError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *BoardError) WithDetails(details map[string]interface{}) *BoardError {
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
	var boardErr *BoardError
	if errors.As(err, &boardErr) {
		return boardErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BoardError
func GetErrorCode(err error) ErrorCode {
	var boardErr *BoardError
	if errors.As(err, &boardErr) {
		return boardErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BoardError
func GetErrorDetails(err error) map[string]interface{} {
	var boardErr *BoardError
	if errors.As(err, &boardErr) {
		return boardErr.Details
	}
	return nil
}
