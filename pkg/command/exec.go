package command

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/arthur-debert/bootstrap/pkg/errors"
	"github.com/arthur-debert/bootstrap/pkg/logging"
	"github.com/rs/zerolog"
)

const waitDelay = 2 * time.Second

// ExecCommand runs a program through os/exec
type ExecCommand struct {
	program string
	args    []string
	dir     string
	env     map[string]string
	stdout  io.Writer
	stderr  io.Writer
	logger  zerolog.Logger
}

// New creates an ExecCommand for program with args. Output goes to the
// process's own stdout and stderr unless redirected with WithOutput.
func New(program string, args ...string) *ExecCommand {
	return &ExecCommand{
		program: program,
		args:    args,
		env:     make(map[string]string),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  logging.GetLogger("command.exec"),
	}
}

// WithDir sets the working directory
func (c *ExecCommand) WithDir(dir string) *ExecCommand {
	c.dir = dir
	return c
}

// WithEnv adds an environment variable on top of the current environment
func (c *ExecCommand) WithEnv(key, value string) *ExecCommand {
	c.env[key] = value
	return c
}

// WithOutput redirects the process output. Nil writers discard.
func (c *ExecCommand) WithOutput(stdout, stderr io.Writer) *ExecCommand {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	c.stdout = stdout
	c.stderr = stderr
	return c
}

// Name returns the program being invoked
func (c *ExecCommand) Name() string { return c.program }

// Args returns the program arguments
func (c *ExecCommand) Args() []string { return c.args }

// Dir returns the working directory, empty for the current one
func (c *ExecCommand) Dir() string { return c.dir }

// String renders the command like a shell command line
func (c *ExecCommand) String() string { return Format(c) }

// Execute runs the command and returns its exit code. Cancelling ctx kills
// the process; the reported exit code is then -1.
func (c *ExecCommand) Execute(ctx context.Context) (int, error) {
	if c.program == "" {
		return -1, errors.New(errors.ErrInvalidInput, "command requires a program")
	}

	if c.dir != "" {
		if _, err := os.Stat(c.dir); err != nil {
			return -1, errors.Wrapf(err, errors.ErrInvalidInput,
				"working directory does not exist: %s", c.dir)
		}
	}

	logging.LogCommand(c.logger, c.program, c.args)

	cmd := exec.CommandContext(ctx, c.program, c.args...)
	cmd.Dir = c.dir
	// Children that outlive a killed process must not hold the pipes open
	cmd.WaitDelay = waitDelay

	// Start with current environment
	cmd.Env = os.Environ()
	keys := make([]string, 0, len(c.env))
	for key := range c.env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, c.env[key]))
	}

	// Stream output to the user and keep a copy for the log
	var stdout, stderr bytes.Buffer
	cmd.Stdout = io.MultiWriter(c.stdout, &stdout)
	cmd.Stderr = io.MultiWriter(c.stderr, &stderr)

	err := cmd.Run()

	if stdout.Len() > 0 {
		c.logger.Debug().Str("command", c.program).Str("output", stdout.String()).Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		c.logger.Debug().Str("command", c.program).Str("output", stderr.String()).Msg("Command stderr")
	}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			c.logger.Error().
				Str("command", c.program).
				Strs("args", c.args).
				Int("exitCode", code).
				Msg("Command exited with non-zero status")
			return code, nil
		}

		c.logger.Error().
			Err(err).
			Str("command", c.program).
			Strs("args", c.args).
			Msg("Command execution failed")
		return -1, errors.Wrapf(err, errors.ErrCommandStart,
			"failed to execute command: %s", c.program)
	}

	c.logger.Info().
		Str("command", c.program).
		Msg("Command executed successfully")
	return 0, nil
}
