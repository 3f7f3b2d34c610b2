package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/isaacd9/llm-exec/internal/config"
	"github.com/isaacd9/llm-exec/internal/core"
	"github.com/isaacd9/llm-exec/internal/llm"
	"github.com/isaacd9/llm-exec/internal/shell"
	"github.com/isaacd9/llm-exec/internal/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var BUILD_VERSION = "dev"

// Exit codes for failures that happen before or instead of running a command.
// A command that ran exits the program with its own status.
const (
	exitOK                 = 0
	exitGeneric            = 1
	exitConfigError        = 2
	exitMissingCredentials = 3
	exitAPIError           = 4
	exitEmptyResponse      = 5
	exitExecutionError     = 6
)

type options struct {
	historyLines int
	yes          bool
	dryRun       bool
	copy         bool
	recent       bool
}

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	argv0            string
	stdinIsTerminal  bool
	stderrIsTerminal bool

	opts   options
	logger *zap.Logger
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	if len(os.Args) > 0 {
		a.argv0 = filepath.Base(os.Args[0])
	}
	os.Exit(a.execute(os.Args[1:]))
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) *app {
	return &app{
		stdin:            stdin,
		stdout:           stdout,
		stderr:           stderr,
		getenv:           getenv,
		argv0:            core.AppName,
		stdinIsTerminal:  isTerminal(stdin),
		stderrIsTerminal: isTerminal(stderr),
		logger:           zap.NewNop(),
	}
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm-exec [flags] <prompt...>",
		Short: "Turn a request into a shell command and run it",
		Long: `llm-exec asks a language model for the shell command that does what you
describe, shows it to you, and runs it in your shell once you confirm.

Your recent shell history is sent along with the request for context.`,
		Version:       BUILD_VERSION,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&a.opts.historyLines, "history-lines", "n", config.DefaultHistoryLines, "number of shell history lines to include (overrides config)")
	flags.BoolVarP(&a.opts.yes, "yes", "y", false, "run the suggested command without asking")
	flags.BoolVar(&a.opts.dryRun, "dry-run", false, "print the request that would be sent and exit")
	flags.BoolVarP(&a.opts.copy, "copy", "c", false, "copy the suggested command to the clipboard")
	flags.BoolVar(&a.opts.recent, "recent", false, "list recent suggestions and exit")

	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	return cmd
}

// execute runs the command line and returns the process exit code.
func (a *app) execute(args []string) int {
	cmd := newRootCommand(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	defer a.logger.Sync() // Flush any buffered log entries

	code := exitCodeFor(err)

	var status shell.ExitStatus
	if err != nil && !errors.As(err, &status) {
		a.logger.Error("run failed", zap.Error(err), zap.Int("exitCode", code))
		fmt.Fprintln(a.stderr, styles.ERROR("Error: "+err.Error()))
	}

	return code
}

func exitCodeFor(err error) int {
	var (
		status        shell.ExitStatus
		configErr     *config.ConfigError
		credentialErr *llm.MissingCredentialsError
		apiErr        *llm.APIError
		emptyErr      *llm.EmptyResponseError
		execErr       *shell.ExecutionError
	)

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &status):
		return int(status)
	case errors.As(err, &configErr):
		return exitConfigError
	case errors.As(err, &credentialErr):
		return exitMissingCredentials
	case errors.As(err, &apiErr):
		return exitAPIError
	case errors.As(err, &emptyErr):
		return exitEmptyResponse
	case errors.As(err, &execErr):
		return exitExecutionError
	default:
		return exitGeneric
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func initializeLogger(logLevel string) *zap.Logger {
	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if BUILD_VERSION == "dev" {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if err := core.EnsureDataDir(); err != nil {
		return zap.NewNop()
	}

	// Logs only go to file so they never mix with the command's output
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}
	loggerConfig.ErrorOutputPaths = []string{
		core.LogFile(),
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
