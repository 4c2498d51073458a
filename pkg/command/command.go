// Package command models external tools as substitutable commands.
//
// A Command reports the exit status of the process it runs. A process that
// runs and exits non-zero is not an error at this level; the error return is
// reserved for commands that could not be started at all.
package command

import (
	"context"
	"strings"
)

// Command is an external program invocation
type Command interface {
	// Name returns the program being invoked
	Name() string
	// Args returns the program arguments
	Args() []string
	// Execute runs the program to completion and returns its exit code
	Execute(ctx context.Context) (int, error)
}

// Format renders cmd like a shell command line
func Format(cmd Command) string {
	return Join(append([]string{cmd.Name()}, cmd.Args()...)...)
}

// Join renders parts as one shell command line, single-quoting empty parts
// and parts the shell would split or expand
func Join(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, part := range parts {
		if part == "" || strings.ContainsAny(part, " \t\"'$") {
			part = "'" + strings.ReplaceAll(part, "'", `'\''`) + "'"
		}
		quoted[i] = part
	}
	return strings.Join(quoted, " ")
}
