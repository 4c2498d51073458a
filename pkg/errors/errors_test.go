// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, step errors and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/bootstrap/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "io_error",
			code:    errors.ErrIO,
			message: "cannot write .gitignore",
			wantStr: "[IO] cannot write .gitignore",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrIO, "unwritable").
		WithDetail("path", "/project/.gitignore")

	if err.Details["path"] != "/project/.gitignore" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "/project/.gitignore" {
		t.Errorf("GetErrorDetails() path = %v", got)
	}
}

func TestIsErrorCode(t *testing.T) {
	ioErr := errors.Wrap(stderrors.New("permission denied"), errors.ErrIO, "cannot write")

	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrConfigParse, "bad toml"), errors.ErrConfigParse, true},
		{"different_code", errors.New(errors.ErrConfigParse, "bad toml"), errors.ErrInternal, false},
		{"fmt_wrapped", fmt.Errorf("outer: %w", ioErr), errors.ErrIO, true},
		{"step_error_is_step_failed", errors.NewStepError("Install", 1, nil), errors.ErrStepFailed, true},
		{"step_error_exposes_cause", errors.NewStepError("Ignore", -1, ioErr), errors.ErrIO, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrIO, false},
		{"nil_error", nil, errors.ErrIO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"bootstrap_error", errors.New(errors.ErrDirCreate, "mkdir"), errors.ErrDirCreate},
		{"step_error", errors.NewStepError("Package", 2, nil), errors.ErrStepFailed},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStepError(t *testing.T) {
	t.Run("message_with_exit_code", func(t *testing.T) {
		err := errors.NewStepError("Installing pre-commit hooks", 3, nil)
		want := `step "Installing pre-commit hooks" failed with exit code 3`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("message_with_cause", func(t *testing.T) {
		cause := stderrors.New("exec: not found")
		err := errors.NewStepError("Creating virtual environment", -1, cause)
		if !stderrors.Is(err, cause) {
			t.Error("StepError should unwrap to its cause")
		}
		want := `step "Creating virtual environment" failed: exec: not found`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("matches_step_failed_sentinel", func(t *testing.T) {
		err := fmt.Errorf("pipeline: %w", errors.NewStepError("x", 1, nil))
		if !stderrors.Is(err, errors.New(errors.ErrStepFailed, "")) {
			t.Error("errors.Is should match ErrStepFailed")
		}
		stepErr, ok := errors.AsStepError(err)
		if !ok || stepErr.Label != "x" || stepErr.ExitCode != 1 {
			t.Errorf("AsStepError() = %+v, %v", stepErr, ok)
		}
	})
}

func TestExitCodeOf(t *testing.T) {
	if got := errors.ExitCodeOf(nil); got != 0 {
		t.Errorf("ExitCodeOf(nil) = %d, want 0", got)
	}
	if got := errors.ExitCodeOf(errors.NewStepError("x", 7, nil)); got != 1 {
		t.Errorf("ExitCodeOf(step error) = %d, want 1", got)
	}
	if got := errors.ExitCodeOf(stderrors.New("boom")); got != 1 {
		t.Errorf("ExitCodeOf(error) = %d, want 1", got)
	}
}
