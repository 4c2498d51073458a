// Package ci generates the CI workflow that builds the packaged application
// on a hosted runner and publishes the output directory as an artifact.
package ci

import (
	"bytes"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/bootstrap/pkg/command"
	"github.com/arthur-debert/bootstrap/pkg/config"
	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/logging"
	"github.com/arthur-debert/bootstrap/pkg/tools"
	"github.com/arthur-debert/bootstrap/pkg/types"
)

const (
	// WorkflowName is the display name of the generated workflow
	WorkflowName = "Build"
	// JobName is the key of the single build job
	JobName = "build"
	// ArtifactName is the name of the uploaded build output
	ArtifactName = "artifact"

	checkoutAction = "actions/checkout@v4"
	setupAction    = "actions/setup-python@v5"
	uploadAction   = "actions/upload-artifact@v4"
)

// Workflow is a CI workflow document
type Workflow struct {
	Name string         `yaml:"name"`
	On   Trigger        `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Trigger lists the events that start the workflow
type Trigger struct {
	Push Push `yaml:"push"`
}

// Push filters push events by branch
type Push struct {
	Branches []string `yaml:"branches"`
}

// Job runs steps on one runner
type Job struct {
	RunsOn string `yaml:"runs-on"`
	Steps  []Step `yaml:"steps"`
}

// Step is a single workflow step: either an action reference or a shell command
type Step struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
	Run  string            `yaml:"run,omitempty"`
}

// Generate builds the workflow for cfg. Tools run by name on the runner.
func Generate(cfg *config.Config) Workflow {
	pip := cfg.Tools.Pip.Program
	packager := cfg.Tools.Packager.Program

	build := append([]string{packager}, tools.PackagerArgs(cfg)...)

	return Workflow{
		Name: WorkflowName,
		On: Trigger{
			Push: Push{Branches: []string{cfg.CI.Branch}},
		},
		Jobs: map[string]Job{
			JobName: {
				RunsOn: cfg.CI.Runner,
				Steps: []Step{
					{Name: "Checkout", Uses: checkoutAction},
					{
						Name: "Set up Python",
						Uses: setupAction,
						With: map[string]string{"python-version": cfg.CI.PythonVersion},
					},
					{Name: "Install dependencies", Run: command.Join(pip, "install", "-r", cfg.Project.Requirements)},
					{Name: "Install packager", Run: command.Join(pip, "install", packager)},
					{Name: "Build", Run: command.Join(build...)},
					{
						Name: "Upload artifact",
						Uses: uploadAction,
						With: map[string]string{
							"name": ArtifactName,
							"path": filepath.ToSlash(cfg.Package.OutputDir),
						},
					},
				},
			},
		},
	}
}

// Marshal renders w as YAML with two-space indentation
func Marshal(w Workflow) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(w); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode workflow")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode workflow")
	}
	return buf.Bytes(), nil
}

// Parse decodes a workflow document
func Parse(data []byte) (Workflow, error) {
	var w Workflow
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Workflow{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse workflow")
	}
	return w, nil
}

// Write renders w to path under root, creating parent directories, and
// returns the written path
func Write(fsys types.FS, root, path string, w Workflow) (string, error) {
	logger := logging.GetLogger("ci")

	data, err := Marshal(w)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(path)).
			WithDetail("path", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write workflow %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Wrote CI workflow")
	return path, nil
}
