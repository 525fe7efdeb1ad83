package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

// ErrNotFound is returned when no executable matches the command name.
var ErrNotFound = errors.New("command not found")

// Exit codes reported for commands that never ran or were killed.
const (
	ExitNotExecutable = 126
	ExitNotFound      = 127
	exitSignalBase    = 128
)

// IOBindings are the standard streams handed to a child process.
type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultExecutor starts programs found through the OS executable search and
// blocks until they exit or are killed by a signal.
type DefaultExecutor struct {
	// LookPath resolves a program name. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)
}

func (e *DefaultExecutor) lookPath(name string) (string, error) {
	lookPath := e.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(name)
	if errors.Is(err, exec.ErrDot) {
		return path, nil
	}

	return path, err
}

func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, bindings IOBindings) (int, error) {

	path, err := e.lookPath(name)

	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return ExitNotFound, fmt.Errorf("%s: %w", name, ErrNotFound)
		}

		return ExitNotExecutable, err
	}

	externalCmd := exec.CommandContext(ctx, path, args...)
	// a bare path resolved through "." is looked up again; that lookup was already accepted
	if errors.Is(externalCmd.Err, exec.ErrDot) {
		externalCmd.Err = nil
	}
	externalCmd.Args = append([]string{name}, args...)
	externalCmd.Stdin = bindings.Stdin
	externalCmd.Stdout = bindings.Stdout
	externalCmd.Stderr = bindings.Stderr

	if err := externalCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitStatus(exitErr.ProcessState), nil
		}

		return ExitNotExecutable, err
	}

	return 0, nil

}

// exitStatus maps a finished process to a shell-style status: the exit code,
// or 128 plus the signal number when a signal ended it.
func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return exitSignalBase + int(ws.Signal())
	}

	return state.ExitCode()
}
