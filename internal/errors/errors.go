package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNetwork indicates no response reached the client at all.
	ErrCodeNetwork ErrorCode = "network"
	// ErrCodeTimeout indicates the call exceeded the gateway deadline.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeAuth indicates the remote store rejected the credential (401).
	ErrCodeAuth ErrorCode = "auth"
	// ErrCodeValidation indicates a structured rejection from the remote store
	// (e.g. duplicate email, missing field) carrying a usable message.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUnknown indicates a non-2xx response without a usable message.
	ErrCodeUnknown ErrorCode = "unknown"
)

// AppError is the single normalized error shape every remote call failure is
// reduced to. Components branch on Code (or the Is* helpers), never on
// transport-specific error types.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the failure
	Code ErrorCode
	// Message is a short human-readable message suitable for a notification
	Message string
	// Status is the HTTP status code, 0 when no response was received
	Status int
	// Cause is the underlying error (optional)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Network creates a new Network error.
func Network(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeNetwork, Message: message, Cause: cause}
}

// Timeout creates a new Timeout error.
func Timeout(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause}
}

// Auth creates a new Auth error.
func Auth(message string, status int) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message, Status: status}
}

// Validation creates a new Validation error.
func Validation(message string, status int) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Status: status}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Unknown creates a new Unknown error.
func Unknown(message string, status int) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Status: status}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNetwork checks if an error is a Network error.
func IsNetwork(err error) bool {
	return isCode(err, ErrCodeNetwork)
}

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool {
	return isCode(err, ErrCodeTimeout)
}

// IsAuth checks if an error is an Auth error.
func IsAuth(err error) bool {
	return isCode(err, ErrCodeAuth)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsUnknown checks if an error is an Unknown error.
func IsUnknown(err error) bool {
	return isCode(err, ErrCodeUnknown)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetStatus returns the HTTP status from an error, or 0 if not an AppError
// or no response was received.
func GetStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}

// Message returns the normalized human-readable message for any error.
// Non-AppError values fall back to their Error string.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
