//go:build !windows

package shell

import (
	"os"
	"syscall"
)

func defaultShell() string {
	return "/bin/sh"
}

// shellArgs runs command in an interactive shell so the user's aliases and
// functions resolve the same way they would at their prompt.
func shellArgs(_ string, command string) []string {
	return []string{"-i", "-c", command}
}

// exitCode follows the shell convention of 128+N for a child killed by
// signal N.
func exitCode(state *os.ProcessState) int {
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return state.ExitCode()
}
