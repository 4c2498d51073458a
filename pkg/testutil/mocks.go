package testutil

import (
	"context"
	"strings"
	"sync"
)

// CallLog records the order in which fakes were executed
type CallLog struct {
	mu    sync.Mutex
	names []string
}

// Record appends name to the log
func (l *CallLog) Record(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

// Names returns a copy of the recorded names
func (l *CallLog) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.names...)
}

// FakeCommand is a command.Command that returns a canned exit code
type FakeCommand struct {
	Program   string
	Arguments []string
	ExitCode  int
	Err       error
	Log       *CallLog

	// ExecuteFunc, when set, replaces the canned result
	ExecuteFunc func(ctx context.Context) (int, error)

	Calls int
}

// NewFakeCommand returns a fake that succeeds and records itself in log
func NewFakeCommand(log *CallLog, program string, args ...string) *FakeCommand {
	return &FakeCommand{Program: program, Arguments: args, Log: log}
}

// Failing sets the exit code returned by the fake
func (f *FakeCommand) Failing(exitCode int) *FakeCommand {
	f.ExitCode = exitCode
	return f
}

// Name returns the fake program name
func (f *FakeCommand) Name() string { return f.Program }

// Args returns the fake arguments
func (f *FakeCommand) Args() []string { return f.Arguments }

// String renders the fake like a shell command line
func (f *FakeCommand) String() string {
	return strings.Join(append([]string{f.Program}, f.Arguments...), " ")
}

// Execute records the call and returns the canned result
func (f *FakeCommand) Execute(ctx context.Context) (int, error) {
	f.Calls++
	if f.Log != nil {
		f.Log.Record(f.Program)
	}
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx)
	}
	return f.ExitCode, f.Err
}
