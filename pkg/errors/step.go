package errors

import (
	"errors"
	"fmt"
)

// StepError reports a pipeline step that finished with a non-zero status.
// Err holds the underlying cause when the step could not run to completion
// (the process failed to start, or a file mutation failed).
type StepError struct {
	Label    string
	ExitCode int
	Err      error
}

// NewStepError creates a StepError for the given step label
func NewStepError(label string, exitCode int, err error) *StepError {
	return &StepError{
		Label:    label,
		ExitCode: exitCode,
		Err:      err,
	}
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("step %q failed: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("step %q failed with exit code %d", e.Label, e.ExitCode)
}

// Unwrap implements the errors.Unwrap interface
func (e *StepError) Unwrap() error {
	return e.Err
}

// Is matches any BootstrapError carrying ErrStepFailed
func (e *StepError) Is(target error) bool {
	var targetErr *BootstrapError
	if errors.As(target, &targetErr) {
		return targetErr.Code == ErrStepFailed
	}
	return false
}

// AsStepError returns the first StepError in err's chain
func AsStepError(err error) (*StepError, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr, true
	}
	return nil, false
}

// ExitCodeOf maps err to a process exit status: 0 for nil, 1 otherwise
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
