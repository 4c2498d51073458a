package pipeline

import (
	"context"
	"io/fs"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/logging"
	"github.com/arthur-debert/bootstrap/pkg/types"
)

const outputDirPerm fs.FileMode = 0755

// Runner executes steps in order and stops at the first failure
type Runner struct {
	reporter Reporter
	dryRun   bool
	logger   zerolog.Logger
}

// Option configures a Runner
type Option func(*Runner)

// WithReporter sets the progress reporter
func WithReporter(r Reporter) Option {
	return func(rn *Runner) {
		if r != nil {
			rn.reporter = r
		}
	}
}

// WithDryRun makes the runner simulate actions instead of executing them
func WithDryRun(dryRun bool) Option {
	return func(rn *Runner) {
		rn.dryRun = dryRun
	}
}

// NewRunner creates a runner. Without a reporter, progress is not printed.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		reporter: nopReporter{},
		logger:   logging.GetLogger("pipeline"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DryRun reports whether the runner simulates actions
func (r *Runner) DryRun() bool {
	return r.dryRun
}

// RunStep reports the step label, executes its action and converts a
// non-zero exit status into a StepError. Failures are not retried.
func (r *Runner) RunStep(ctx context.Context, step Step) (StepResult, error) {
	result := StepResult{Label: step.Label, Skipped: step.Skip, DryRun: r.dryRun}
	r.reporter.StepStarted(step)

	logger := r.logger.With().Str("step", step.Label).Logger()
	start := time.Now()

	var (
		code int
		err  error
	)
	switch {
	case step.Skip:
		logger.Info().Msg("Step skipped, tool disabled")
	case step.Action == nil:
		code, err = -1, errors.New(errors.ErrInvalidInput, "step has no action")
	case r.dryRun:
		if dr, ok := step.Action.(DryRunner); ok {
			code, err = dr.DryRun(ctx)
		}
		logger.Info().Str("action", step.Describe()).Msg("Dry run, not executing")
	default:
		if ctxErr := ctx.Err(); ctxErr != nil {
			code, err = -1, ctxErr
			break
		}
		logger.Debug().Str("action", step.Describe()).Msg("Executing step")
		code, err = step.Action.Execute(ctx)
	}

	result.Duration = time.Since(start)
	result.ExitCode = code
	if err != nil && code == 0 {
		result.ExitCode = -1
	}
	if err != nil || code != 0 {
		result.Err = errors.NewStepError(step.Label, result.ExitCode, err)
		logger.Error().Err(result.Err).Int("exit_code", result.ExitCode).Msg("Step failed")
	} else {
		logger.Debug().Dur("duration", result.Duration).Msg("Step succeeded")
	}

	r.reporter.StepFinished(result)
	return result, result.Err
}

// RunPipeline executes steps strictly in order. On the first failing step it
// halts and returns that step's error; results holds every step that ran.
func (r *Runner) RunPipeline(ctx context.Context, steps []Step) ([]StepResult, error) {
	defer logging.LogOperationStart(r.logger, "pipeline")()

	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		result, err := r.RunStep(ctx, step)
		results = append(results, result)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// MaybePackage creates outputDir when absent and, only when previous is nil,
// runs the packaging step. It returns nil without running anything when a
// previous step failed.
func (r *Runner) MaybePackage(ctx context.Context, previous error, fsys types.FS, outputDir string, step Step) (*StepResult, error) {
	if !r.dryRun {
		if err := fsys.MkdirAll(outputDir, outputDirPerm); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create output directory %s", outputDir).
				WithDetail("path", outputDir)
		}
	}

	if previous != nil {
		r.logger.Info().Str("step", step.Label).Msg("Skipping packaging, a previous step failed")
		return nil, nil
	}

	result, err := r.RunStep(ctx, step)
	return &result, err
}

// RunPipeline runs steps with a default runner
func RunPipeline(ctx context.Context, steps []Step) ([]StepResult, error) {
	return NewRunner().RunPipeline(ctx, steps)
}

// RunStep runs a single step with a default runner
func RunStep(ctx context.Context, step Step) (StepResult, error) {
	return NewRunner().RunStep(ctx, step)
}
