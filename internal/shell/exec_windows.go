//go:build windows

package shell

import (
	"os"
	"path/filepath"
	"strings"
)

func defaultShell() string {
	if comspec := os.Getenv("ComSpec"); comspec != "" {
		return comspec
	}
	return "cmd.exe"
}

// shellArgs uses cmd.exe's /C unless $SHELL points at a POSIX shell such as
// Git Bash.
func shellArgs(shellPath string, command string) []string {
	if strings.HasPrefix(strings.ToLower(filepath.Base(shellPath)), "cmd") {
		return []string{"/C", command}
	}
	return []string{"-i", "-c", command}
}

func exitCode(state *os.ProcessState) int {
	return state.ExitCode()
}
