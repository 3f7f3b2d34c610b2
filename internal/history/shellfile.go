package history

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ShellHistoryFiles lists the candidate history files under the home
// directory, in probing order.
var ShellHistoryFiles = []string{
	".zsh_history",
	".bash_history",
	".history",
}

// ErrNoShellHistory is returned when none of the candidate files exist.
var ErrNoShellHistory = errors.New("no shell history file found")

// Snapshot is the tail of a shell history file, taken once per run.
type Snapshot struct {
	Path    string
	Lines   []string
	Size    int64
	ModTime time.Time
}

// FindShellHistory returns the first candidate history file under home that
// exists and is a regular file.
func FindShellHistory(home string) (string, bool) {
	for _, name := range ShellHistoryFiles {
		path := filepath.Join(home, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// ReadShellHistory reads the history file at path and returns at most the
// last limit lines. Invalid UTF-8 is replaced rather than rejected, and zsh
// extended-history metadata is stripped.
func ReadShellHistory(path string, limit int) (*Snapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Path:    path,
		Lines:   lo.Map(Tail(string(content), limit), func(line string, _ int) string { return cleanZshEntry(line) }),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// LoadShellHistory locates the user's shell history under home and reads its
// tail. A limit of zero skips the file entirely.
func LoadShellHistory(home string, limit int) (*Snapshot, error) {
	if limit <= 0 {
		return &Snapshot{}, nil
	}
	path, ok := FindShellHistory(home)
	if !ok {
		return nil, ErrNoShellHistory
	}
	return ReadShellHistory(path, limit)
}

// Tail splits content into lines and keeps the last limit of them.
func Tail(content string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	content = strings.ToValidUTF8(content, "�")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines
}

// cleanZshEntry turns ": 1700000000:0;git status" into "git status".
func cleanZshEntry(line string) string {
	if !strings.HasPrefix(line, ": ") {
		return line
	}
	if _, command, ok := strings.Cut(line, ";"); ok {
		return command
	}
	return line
}
