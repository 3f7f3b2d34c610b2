package core

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the platform config and cache dirs.
const AppName = "llm-exec"

type Paths struct {
	HomeDir     string
	ConfigDir   string
	ConfigFile  string
	DataDir     string
	LogFile     string
	JournalFile string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}

		configRoot, err := os.UserConfigDir()
		if err != nil {
			configRoot = filepath.Join(homeDir, ".config")
		}

		cacheRoot, err := os.UserCacheDir()
		if err != nil {
			cacheRoot = filepath.Join(homeDir, ".cache")
		}

		defaultPaths = &Paths{
			HomeDir:     homeDir,
			ConfigDir:   filepath.Join(configRoot, AppName),
			ConfigFile:  filepath.Join(configRoot, AppName, "config.json"),
			DataDir:     filepath.Join(cacheRoot, AppName),
			LogFile:     filepath.Join(cacheRoot, AppName, "llm-exec.log"),
			JournalFile: filepath.Join(cacheRoot, AppName, "journal.db"),
		}
	}
}

func HomeDir() string {
	ensureDefaultPaths()
	return defaultPaths.HomeDir
}

func ConfigDir() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigDir
}

func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

func JournalFile() string {
	ensureDefaultPaths()
	return defaultPaths.JournalFile
}

// EnsureDataDir creates the directory holding the log file and the journal.
// Unlike the config directory, it is written to by llm-exec itself.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0755)
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
