// Package errors provides structured errors with stable codes for the
// non-fatal plumbing: snapshot loading, theme loading, flag parsing. Fatal
// usage reports travel separately as ui.FatalError values.
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

	// Snapshot errors
	ErrSnapshotRead    ErrorCode = "SNAPSHOT_READ"
	ErrSnapshotParse   ErrorCode = "SNAPSHOT_PARSE"
	ErrSnapshotInvalid ErrorCode = "SNAPSHOT_INVALID"

	// Formatting errors
	ErrUnitInvalid    ErrorCode = "UNIT_INVALID"
	ErrNetworkInvalid ErrorCode = "NETWORK_INVALID"

	// Theme errors
	ErrThemeLoad ErrorCode = "THEME_LOAD"
)

// CoinscribeError represents a structured error with code and details
type CoinscribeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CoinscribeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CoinscribeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CoinscribeError) Is(target error) bool {
	var targetErr *CoinscribeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CoinscribeError with the given code and message
func New(code ErrorCode, message string) *CoinscribeError {
	return &CoinscribeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CoinscribeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CoinscribeError {
	return &CoinscribeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CoinscribeError
func Wrap(err error, code ErrorCode, message string) *CoinscribeError {
	if err == nil {
		return nil
	}
	return &CoinscribeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CoinscribeError {
	if err == nil {
		return nil
	}
	return &CoinscribeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CoinscribeError) WithDetail(key string, value interface{}) *CoinscribeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	var cerr *CoinscribeError
	for errors.As(err, &cerr) {
		if cerr.Code == code {
			return true
		}
		err = cerr.Wrapped
		if err == nil {
			break
		}
	}
	return false
}
