package output

import (
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/bootstrap/pkg/output/styles"
	"github.com/arthur-debert/bootstrap/pkg/pipeline"
)

// StepPrinter is a pipeline.Reporter writing styled step progress
type StepPrinter struct {
	w       io.Writer
	noColor bool
	// ShowDuration appends the step duration to status lines
	ShowDuration bool
}

// NewStepPrinter creates a printer writing to w. With noColor set, no
// escape sequences are written.
func NewStepPrinter(w io.Writer, noColor bool) *StepPrinter {
	return &StepPrinter{w: w, noColor: noColor}
}

// StepStarted prints `==> label`
func (p *StepPrinter) StepStarted(step pipeline.Step) {
	fmt.Fprintf(p.w, "%s %s\n", p.style("Arrow", "==>"), p.style("Label", step.Label))
}

// StepFinished prints the step outcome
func (p *StepPrinter) StepFinished(result pipeline.StepResult) {
	status := pipeline.Outcome(result)
	var styled string
	switch {
	case result.Skipped:
		styled = p.style("Skipped", status)
	case result.Err != nil:
		styled = p.style("Failure", status)
	case result.DryRun:
		styled = p.style("Muted", status)
	default:
		styled = p.style("Success", status)
	}
	if p.ShowDuration && !result.Skipped && !result.DryRun {
		styled += " " + p.style("Muted", fmt.Sprintf("(%s)", result.Duration.Round(time.Millisecond)))
	}
	fmt.Fprintf(p.w, "    %s\n", styled)
}

// Error renders err the way failures are reported on stderr
func Error(err error, noColor bool) string {
	p := StepPrinter{noColor: noColor}
	return p.style("Error", "Error:") + " " + err.Error()
}

func (p *StepPrinter) style(name, s string) string {
	if p.noColor {
		return s
	}
	return styles.GetStyle(name).Render(s)
}
