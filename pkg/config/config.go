package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bootstrap/pkg/errors"
)

// Project holds project layout settings
type Project struct {
	Requirements string `koanf:"requirements" toml:"requirements"`
	Entrypoint   string `koanf:"entrypoint" toml:"entrypoint"`
	VenvDir      string `koanf:"venv_dir" toml:"venv_dir"`
}

// Ignore holds the ignore file location and the entries it must contain
type Ignore struct {
	File    string   `koanf:"file" toml:"file"`
	Entries []string `koanf:"entries" toml:"entries"`
	Extra   []string `koanf:"extra" toml:"extra"`
}

// AllEntries returns the default entries followed by the project extras
func (i Ignore) AllEntries() []string {
	entries := make([]string, 0, len(i.Entries)+len(i.Extra))
	entries = append(entries, i.Entries...)
	return append(entries, i.Extra...)
}

// Tool describes an external program invoked by a pipeline step
type Tool struct {
	Program string `koanf:"program" toml:"program"`
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	// UseVenv resolves Program inside the project's virtual environment
	UseVenv bool `koanf:"use_venv" toml:"use_venv"`
}

// Tools holds the external collaborators
type Tools struct {
	Python    Tool `koanf:"python" toml:"python"`
	Pip       Tool `koanf:"pip" toml:"pip"`
	PreCommit Tool `koanf:"pre_commit" toml:"pre_commit"`
	Packager  Tool `koanf:"packager" toml:"packager"`
}

// Package holds the packager options
type Package struct {
	Name      string `koanf:"name" toml:"name"`
	OutputDir string `koanf:"output_dir" toml:"output_dir"`
	OneFile   bool   `koanf:"one_file" toml:"one_file"`
	Windowed  bool   `koanf:"windowed" toml:"windowed"`
}

// CI holds settings for the generated CI workflow
type CI struct {
	Workflow      string `koanf:"workflow" toml:"workflow"`
	Branch        string `koanf:"branch" toml:"branch"`
	Runner        string `koanf:"runner" toml:"runner"`
	PythonVersion string `koanf:"python_version" toml:"python_version"`
}

// Step is a project specific command run after the built-in steps and
// before packaging
type Step struct {
	Label   string   `koanf:"label" toml:"label"`
	Command []string `koanf:"command" toml:"command"`
	Dir     string   `koanf:"dir" toml:"dir,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Project Project `koanf:"project" toml:"project"`
	Ignore  Ignore  `koanf:"ignore" toml:"ignore"`
	Tools   Tools   `koanf:"tools" toml:"tools"`
	Package Package `koanf:"package" toml:"package"`
	CI      CI      `koanf:"ci" toml:"ci"`
	Steps   []Step  `koanf:"steps" toml:"steps,omitempty"`
}

// Default returns the configuration from the embedded defaults only
func Default() *Config {
	cfg, err := loadLayers("", "", false)
	if err != nil {
		// The embedded defaults are part of the binary; failing to parse
		// them is a build defect.
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Ignore.File) == "" {
		problems = append(problems, "ignore.file must not be empty")
	}
	if strings.TrimSpace(c.Package.Name) == "" {
		problems = append(problems, "package.name must not be empty")
	}
	if strings.TrimSpace(c.Package.OutputDir) == "" {
		problems = append(problems, "package.output_dir must not be empty")
	}
	if strings.TrimSpace(c.Project.Entrypoint) == "" {
		problems = append(problems, "project.entrypoint must not be empty")
	}
	for _, entry := range c.Ignore.AllEntries() {
		if strings.TrimSpace(entry) == "" || strings.ContainsAny(entry, "\r\n") {
			problems = append(problems, fmt.Sprintf("ignore entry %q is not a single line", entry))
		}
	}
	for i, step := range c.Steps {
		if strings.TrimSpace(step.Label) == "" {
			problems = append(problems, fmt.Sprintf("steps[%d].label must not be empty", i))
		}
		if len(step.Command) == 0 || strings.TrimSpace(step.Command[0]) == "" {
			problems = append(problems, fmt.Sprintf("steps[%d].command must not be empty", i))
		}
	}

	if len(problems) > 0 {
		return errors.New(errors.ErrConfigValid, strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}
	return nil
}
