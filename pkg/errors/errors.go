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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrIO        ErrorCode = "IO"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"

	// Execution errors
	ErrCommandStart ErrorCode = "COMMAND_START"
	ErrStepFailed   ErrorCode = "STEP_FAILED"
)

// BootstrapError represents a structured error with code and details
type BootstrapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BootstrapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootstrapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BootstrapError) Is(target error) bool {
	var targetErr *BootstrapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BootstrapError with the given code and message
func New(code ErrorCode, message string) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BootstrapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BootstrapError {
	return &BootstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BootstrapError
func Wrap(err error, code ErrorCode, message string) *BootstrapError {
	if err == nil {
		return nil
	}
	return &BootstrapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BootstrapError {
	if err == nil {
		return nil
	}
	return &BootstrapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BootstrapError) WithDetail(key string, value interface{}) *BootstrapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
// StepErrors report ErrStepFailed.
func IsErrorCode(err error, code ErrorCode) bool {
	if code == ErrStepFailed {
		var stepErr *StepError
		if errors.As(err, &stepErr) {
			return true
		}
	}
	var bootstrapErr *BootstrapError
	if errors.As(err, &bootstrapErr) {
		return bootstrapErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BootstrapError
func GetErrorCode(err error) ErrorCode {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return ErrStepFailed
	}
	var bootstrapErr *BootstrapError
	if errors.As(err, &bootstrapErr) {
		return bootstrapErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BootstrapError
func GetErrorDetails(err error) map[string]interface{} {
	var bootstrapErr *BootstrapError
	if errors.As(err, &bootstrapErr) {
		return bootstrapErr.Details
	}
	return nil
}
