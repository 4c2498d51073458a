package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/arthur-debert/bootstrap/pkg/command"
)

// Action is the unit of work behind a step. command.Command satisfies it.
type Action interface {
	Execute(ctx context.Context) (int, error)
}

// DryRunner is implemented by actions that can simulate themselves
type DryRunner interface {
	DryRun(ctx context.Context) (int, error)
}

// ActionFunc adapts a function to Action
type ActionFunc func(ctx context.Context) (int, error)

// Execute calls f
func (f ActionFunc) Execute(ctx context.Context) (int, error) { return f(ctx) }

// Mutation adapts a file mutation to Action: an error fails the step
func Mutation(fn func(ctx context.Context) error) Action {
	return ActionFunc(func(ctx context.Context) (int, error) {
		if err := fn(ctx); err != nil {
			return -1, err
		}
		return 0, nil
	})
}

// Step is an ordered unit of work
type Step struct {
	Label  string
	Action Action
	// Skip marks a step whose tool is disabled; it is reported and counts
	// as success
	Skip bool
}

// CommandStep creates a step running cmd
func CommandStep(label string, cmd command.Command) Step {
	return Step{Label: label, Action: cmd}
}

// Describe returns a short description of what the step does
func (s Step) Describe() string {
	switch a := s.Action.(type) {
	case command.Command:
		return command.Format(a)
	case fmt.Stringer:
		return a.String()
	default:
		return s.Label
	}
}

// StepResult is the outcome of a step
type StepResult struct {
	Label    string
	ExitCode int
	Duration time.Duration
	Skipped  bool
	DryRun   bool
	Err      error
}

// Succeeded reports whether the step did not fail
func (r StepResult) Succeeded() bool {
	return r.Err == nil
}

// Reporter receives step progress
type Reporter interface {
	StepStarted(step Step)
	StepFinished(result StepResult)
}
