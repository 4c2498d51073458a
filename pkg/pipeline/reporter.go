package pipeline

import (
	"fmt"
	"io"
)

// TextReporter prints step labels and outcomes as plain text
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a reporter writing to w
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// StepStarted prints the step label
func (r *TextReporter) StepStarted(step Step) {
	fmt.Fprintf(r.w, "==> %s\n", step.Label)
}

// StepFinished prints the step outcome
func (r *TextReporter) StepFinished(result StepResult) {
	fmt.Fprintf(r.w, "    %s\n", Outcome(result))
}

// Outcome renders a one-word-ish summary of a result
func Outcome(result StepResult) string {
	switch {
	case result.Skipped:
		return "skipped"
	case result.Err != nil && result.ExitCode > 0:
		return fmt.Sprintf("failed (exit %d)", result.ExitCode)
	case result.Err != nil:
		return "failed"
	case result.DryRun:
		return "would run"
	default:
		return "ok"
	}
}

type nopReporter struct{}

func (nopReporter) StepStarted(Step)        {}
func (nopReporter) StepFinished(StepResult) {}
