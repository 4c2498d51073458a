// Package tools builds the commands for the external collaborators of the
// bootstrap pipeline: the environment creator, the dependency installer, the
// pre-commit hook manager and the single-file packager.
package tools

import (
	"io"
	"path/filepath"
	"runtime"

	"github.com/arthur-debert/bootstrap/pkg/command"
	"github.com/arthur-debert/bootstrap/pkg/config"
)

// Python builds commands for a Python project rooted at Root
type Python struct {
	cfg    *config.Config
	root   string
	stdout io.Writer
	stderr io.Writer
}

// NewPython creates a toolchain for the project at root. Command output is
// streamed to stdout and stderr.
func NewPython(cfg *config.Config, root string, stdout, stderr io.Writer) *Python {
	return &Python{cfg: cfg, root: root, stdout: stdout, stderr: stderr}
}

// CreateEnv returns `python3 -m venv <venv_dir>`
func (p *Python) CreateEnv() command.Command {
	return p.command(p.cfg.Tools.Python.Program, "-m", "venv", p.cfg.Project.VenvDir)
}

// InstallDeps returns `pip install -r <requirements>`
func (p *Python) InstallDeps() command.Command {
	return p.command(p.resolve(p.cfg.Tools.Pip), "install", "-r", p.cfg.Project.Requirements)
}

// InstallHooks returns `pre-commit install`
func (p *Python) InstallHooks() command.Command {
	return p.command(p.resolve(p.cfg.Tools.PreCommit), "install")
}

// RunHooks returns `pre-commit run --all-files`
func (p *Python) RunHooks() command.Command {
	return p.command(p.resolve(p.cfg.Tools.PreCommit), "run", "--all-files")
}

// Package returns the packager invocation
func (p *Python) Package() command.Command {
	return p.command(p.resolve(p.cfg.Tools.Packager), PackagerArgs(p.cfg)...)
}

// Extra returns the command for a project-declared step. A step without a
// command yields one that fails to start.
func (p *Python) Extra(step config.Step) command.Command {
	if len(step.Command) == 0 {
		return p.command("")
	}
	cmd := p.command(step.Command[0], step.Command[1:]...)
	if step.Dir != "" {
		dir := step.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(p.root, dir)
		}
		cmd.WithDir(dir)
	}
	return cmd
}

// PackagerArgs returns the packager options: single file, windowless,
// the artifact name, the output directory and finally the entrypoint
func PackagerArgs(cfg *config.Config) []string {
	var args []string
	if cfg.Package.OneFile {
		args = append(args, "--onefile")
	}
	if cfg.Package.Windowed {
		args = append(args, "--windowed")
	}
	args = append(args,
		"--name", cfg.Package.Name,
		"--distpath", cfg.Package.OutputDir,
		cfg.Project.Entrypoint,
	)
	return args
}

func (p *Python) command(program string, args ...string) *command.ExecCommand {
	return command.New(program, args...).
		WithDir(p.root).
		WithOutput(p.stdout, p.stderr)
}

// resolve returns the program path, inside the virtual environment when the
// tool asks for it
func (p *Python) resolve(tool config.Tool) string {
	if !tool.UseVenv {
		return tool.Program
	}
	return filepath.Join(p.VenvBinDir(), tool.Program+exeSuffix())
}

// VenvBinDir returns the directory holding the virtual environment's executables
func (p *Python) VenvBinDir() string {
	venv := p.cfg.Project.VenvDir
	if !filepath.IsAbs(venv) {
		venv = filepath.Join(p.root, venv)
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(venv, "Scripts")
	}
	return filepath.Join(venv, "bin")
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
