package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/bootstrap/pkg/command"
	"github.com/arthur-debert/bootstrap/pkg/config"
	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/filesystem"
	"github.com/arthur-debert/bootstrap/pkg/ignorefile"
	"github.com/arthur-debert/bootstrap/pkg/logging"
	"github.com/arthur-debert/bootstrap/pkg/pipeline"
	"github.com/arthur-debert/bootstrap/pkg/tools"
	"github.com/arthur-debert/bootstrap/pkg/types"
)

// Step labels
const (
	LabelCreateEnv    = "Creating virtual environment"
	LabelInstallDeps  = "Installing dependencies"
	LabelIgnore       = "Configuring ignore file"
	LabelInstallHooks = "Installing pre-commit hooks"
	LabelRunHooks     = "Running pre-commit hooks"
	LabelPackage      = "Packaging application"
)

// Toolchain builds the commands for the external collaborators
type Toolchain interface {
	CreateEnv() command.Command
	InstallDeps() command.Command
	InstallHooks() command.Command
	RunHooks() command.Command
	Package() command.Command
	Extra(step config.Step) command.Command
}

// Options holds the inputs of a bootstrap run
type Options struct {
	// Root is the project directory, default "."
	Root   string
	Config *config.Config
	FS     types.FS

	// Toolchain defaults to the Python toolchain for Root
	Toolchain Toolchain
	Reporter  pipeline.Reporter
	DryRun    bool
	Stdout    io.Writer
	Stderr    io.Writer
}

// Report is the outcome of a run
type Report struct {
	Steps []pipeline.StepResult
	// Package is nil when packaging did not run
	Package *pipeline.StepResult
}

// Packaged reports whether the packager ran and succeeded
func (r *Report) Packaged() bool {
	return r.Package != nil && !r.Package.Skipped && r.Package.Succeeded()
}

// Failed returns the result of the failing step, if any
func (r *Report) Failed() *pipeline.StepResult {
	for i := range r.Steps {
		if !r.Steps[i].Succeeded() {
			return &r.Steps[i]
		}
	}
	if r.Package != nil && !r.Package.Succeeded() {
		return r.Package
	}
	return nil
}

func (o Options) withDefaults() (Options, error) {
	if o.Root == "" {
		o.Root = "."
	}
	root, err := filepath.Abs(o.Root)
	if err != nil {
		return o, errors.Wrapf(err, errors.ErrInvalidInput, "invalid project root %s", o.Root)
	}
	o.Root = root

	if o.Config == nil {
		o.Config = config.Default()
	}
	if err := o.Config.Validate(); err != nil {
		return o, err
	}
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Toolchain == nil {
		o.Toolchain = tools.NewPython(o.Config, o.Root, o.Stdout, o.Stderr)
	}
	if o.Reporter == nil {
		o.Reporter = pipeline.NewTextReporter(o.Stdout)
	}
	return o, nil
}

func (o Options) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Root, p)
}

// Steps returns the default pipeline, in execution order. Packaging is not
// part of it; see PackageStep.
func Steps(opts Options) ([]pipeline.Step, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return buildSteps(opts), nil
}

func buildSteps(opts Options) []pipeline.Step {
	cfg := opts.Config
	tc := opts.Toolchain

	steps := []pipeline.Step{
		{Label: LabelCreateEnv, Action: tc.CreateEnv(), Skip: !cfg.Tools.Python.Enabled},
		{Label: LabelInstallDeps, Action: tc.InstallDeps(), Skip: !cfg.Tools.Pip.Enabled},
		{Label: LabelIgnore, Action: newIgnoreAction(opts)},
		{Label: LabelInstallHooks, Action: tc.InstallHooks(), Skip: !cfg.Tools.PreCommit.Enabled},
		{Label: LabelRunHooks, Action: tc.RunHooks(), Skip: !cfg.Tools.PreCommit.Enabled},
	}
	for _, extra := range cfg.Steps {
		steps = append(steps, pipeline.CommandStep(extra.Label, tc.Extra(extra)))
	}
	return steps
}

// PackageStep returns the packaging step run after a successful pipeline
func PackageStep(opts Options) (pipeline.Step, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return pipeline.Step{}, err
	}
	return buildPackageStep(opts), nil
}

func buildPackageStep(opts Options) pipeline.Step {
	return pipeline.Step{
		Label:  LabelPackage,
		Action: opts.Toolchain.Package(),
		Skip:   !opts.Config.Tools.Packager.Enabled,
	}
}

// Run executes the default pipeline and packages the application when every
// step succeeded. The returned error is the first failure.
func Run(ctx context.Context, opts Options) (*Report, error) {
	logger := logging.GetLogger("bootstrap")

	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("root", opts.Root).
		Bool("dry_run", opts.DryRun).
		Msg("Bootstrapping project")

	runner := pipeline.NewRunner(
		pipeline.WithReporter(opts.Reporter),
		pipeline.WithDryRun(opts.DryRun),
	)

	report := &Report{}
	results, runErr := runner.RunPipeline(ctx, buildSteps(opts))
	report.Steps = results

	pkg, pkgErr := runner.MaybePackage(ctx, runErr, opts.FS, opts.path(opts.Config.Package.OutputDir), buildPackageStep(opts))
	report.Package = pkg

	if runErr != nil {
		logger.Error().Err(runErr).Msg("Bootstrap failed")
		return report, runErr
	}
	if pkgErr != nil {
		logger.Error().Err(pkgErr).Msg("Packaging failed")
		return report, pkgErr
	}
	logger.Info().Int("steps", len(results)).Msg("Bootstrap complete")
	return report, nil
}

// EnsureIgnore adds the configured entries to the project's ignore file and
// returns the entries that were added
func EnsureIgnore(opts Options) ([]string, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	action := newIgnoreAction(opts)
	if opts.DryRun {
		return action.file.Pending(action.entries...)
	}
	return action.file.EnsureLines(action.entries...)
}

// ignoreAction is the file mutation step of the pipeline
type ignoreAction struct {
	file    *ignorefile.File
	entries []string
	out     io.Writer
}

func newIgnoreAction(opts Options) *ignoreAction {
	return &ignoreAction{
		file:    ignorefile.Open(opts.FS, opts.path(opts.Config.Ignore.File)),
		entries: opts.Config.Ignore.AllEntries(),
		out:     opts.Stdout,
	}
}

func (a *ignoreAction) Execute(ctx context.Context) (int, error) {
	return pipeline.Mutation(func(context.Context) error {
		_, err := a.file.EnsureLines(a.entries...)
		return err
	}).Execute(ctx)
}

func (a *ignoreAction) DryRun(context.Context) (int, error) {
	missing, err := a.file.Pending(a.entries...)
	if err != nil {
		return -1, err
	}
	for _, line := range missing {
		fmt.Fprintf(a.out, "    would add %s\n", line)
	}
	return 0, nil
}

func (a *ignoreAction) String() string {
	return fmt.Sprintf("ensure %d entries in %s", len(a.entries), filepath.Base(a.file.Path()))
}
