//go:build !windows

package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	runner := NewRunner(func(string) string { return "/bin/sh" }, zap.NewNop())
	runner.Stdin = strings.NewReader("")
	runner.Stdout = &stdout
	runner.Stderr = &stderr
	return runner, &stdout, &stderr
}

func TestNewRunner_ShellSelection(t *testing.T) {
	runner := NewRunner(func(string) string { return "/usr/bin/zsh" }, nil)
	assert.Equal(t, "/usr/bin/zsh", runner.Shell)

	runner = NewRunner(func(string) string { return "" }, nil)
	assert.Equal(t, "/bin/sh", runner.Shell)
}

func TestShellArgs(t *testing.T) {
	assert.Equal(t, []string{"-i", "-c", "ls -la"}, shellArgs("/bin/zsh", "ls -la"))
}

func TestRunner_Success(t *testing.T) {
	runner, stdout, _ := newTestRunner(t)

	code, err := runner.Run("echo hello")

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunner_MultiLineScriptRunsAsOne(t *testing.T) {
	runner, stdout, _ := newTestRunner(t)

	code, err := runner.Run("echo one\necho two")

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "one\ntwo\n", stdout.String())
}

func TestRunner_PropagatesExitCode(t *testing.T) {
	runner, _, stderr := newTestRunner(t)

	code, err := runner.Run("echo oops >&2; exit 42")

	require.NoError(t, err)
	assert.Equal(t, 42, code)
	assert.Contains(t, stderr.String(), "oops")
}

func TestRunner_SignalExitCode(t *testing.T) {
	runner, _, _ := newTestRunner(t)

	code, err := runner.Run("kill -9 $$")

	require.NoError(t, err)
	assert.Equal(t, 128+9, code)
}

func TestRunner_ReadsStdin(t *testing.T) {
	runner, stdout, _ := newTestRunner(t)
	runner.Stdin = strings.NewReader("from stdin\n")

	code, err := runner.Run("read line; echo \"got $line\"")

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "got from stdin\n", stdout.String())
}

func TestRunner_MissingShell(t *testing.T) {
	runner, _, _ := newTestRunner(t)
	runner.Shell = "/nonexistent/shell"

	_, err := runner.Run("ls")

	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "/nonexistent/shell", execErr.Shell)
	assert.NotNil(t, errors.Unwrap(execErr))
}

func TestExitStatus(t *testing.T) {
	var err error = ExitStatus(3)
	assert.Equal(t, "exit status 3", err.Error())
}
