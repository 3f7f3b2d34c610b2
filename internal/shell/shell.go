// Package shell runs a suggested command through the user's own shell.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// ExitStatus is a non-zero exit code of an executed command. It is not a
// failure of llm-exec; the caller should exit with the same code.
type ExitStatus int

func (s ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

// ExecutionError reports that the shell could not be started at all.
type ExecutionError struct {
	Shell string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Shell, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Runner executes command strings with the user's shell, wired to the
// given standard streams.
type Runner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *zap.Logger
}

// NewRunner creates a Runner for the shell named by $SHELL (read through
// getenv), falling back to the platform default. It inherits the process's
// standard streams.
func NewRunner(getenv func(string) string, logger *zap.Logger) *Runner {
	shellPath := getenv("SHELL")
	if shellPath == "" {
		shellPath = defaultShell()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		Shell:  shellPath,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Run executes command as a single script and waits for it to finish.
// It returns the command's exit code; the error is non-nil only when the
// shell could not be launched.
func (r *Runner) Run(command string) (int, error) {
	cmd := exec.Command(r.Shell, shellArgs(r.Shell, command)...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.logger.Debug("executing command", zap.String("shell", r.Shell))

	err := cmd.Run()
	if err == nil {
		r.logger.Info("command finished", zap.Int("exitCode", 0))
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitCode(exitErr.ProcessState)
		r.logger.Info("command finished", zap.Int("exitCode", code))
		return code, nil
	}

	r.logger.Error("failed to launch shell", zap.String("shell", r.Shell), zap.Error(err))
	return 1, &ExecutionError{Shell: r.Shell, Err: err}
}
