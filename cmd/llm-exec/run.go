package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/isaacd9/llm-exec/internal/config"
	"github.com/isaacd9/llm-exec/internal/core"
	"github.com/isaacd9/llm-exec/internal/history"
	"github.com/isaacd9/llm-exec/internal/llm"
	"github.com/isaacd9/llm-exec/internal/prompt"
	"github.com/isaacd9/llm-exec/internal/render"
	"github.com/isaacd9/llm-exec/internal/shell"
	"github.com/isaacd9/llm-exec/internal/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// recentLimit is how many journal entries --recent lists.
const recentLimit = 20

var errNoPrompt = errors.New("no prompt provided")

func (a *app) run(ctx context.Context, cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(core.ConfigFile())
	if err != nil {
		return err
	}

	a.logger = initializeLogger(cfg.LogLevel)
	a.logger.Info("-------- new llm-exec run --------",
		zap.String("version", BUILD_VERSION),
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
	)

	if a.opts.recent {
		return a.listRecent()
	}

	request, err := a.readRequest(args)
	if err != nil {
		return err
	}

	historyLines := cfg.HistoryLines
	if cmd.Flags().Changed("history-lines") {
		historyLines = a.opts.historyLines
	}
	if historyLines < 0 {
		return fmt.Errorf("invalid --history-lines %d: must not be negative", historyLines)
	}

	snapshot := a.loadHistory(historyLines)
	text := prompt.Assemble(prompt.SystemPrompt(cfg, a.argv0), snapshot.Lines, request)

	if a.opts.dryRun {
		return a.printDryRun(cfg, snapshot, text)
	}

	apiKey, err := llm.LookupAPIKey(cfg.Provider, a.getenv)
	if err != nil {
		return err
	}

	provider, err := llm.NewProvider(cfg.Provider, llm.Options{
		APIKey:  apiKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	reply, err := a.complete(ctx, provider, prompt.NewRequest(cfg, text), cfg)
	if err != nil {
		return err
	}

	command := prompt.ExtractCommand(reply)
	if command == "" {
		return &llm.EmptyResponseError{Provider: provider.Name()}
	}
	if refusal, ok := prompt.Refusal(command); ok {
		return refusal
	}

	render.Suggestion(a.stdout, command)
	if statements := prompt.Statements(command); statements > 1 {
		render.Note(a.stderr, "This suggestion has %d statements; they run together as one script.", statements)
	}

	if a.opts.copy {
		a.copyCommand(command)
	}

	journal := a.openJournal(cfg)
	if journal != nil {
		defer journal.Close()
	}
	entry := a.recordSuggestion(journal, request, command, cfg.Model)

	if !a.opts.yes {
		confirmed, err := render.Confirm(a.stdin, a.stdout, "Execute this command?")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			a.logger.Info("user declined to run the suggestion")
			fmt.Fprintln(a.stdout, "Cancelled.")
			return nil
		}
		fmt.Fprintln(a.stdout)
	}

	runner := shell.NewRunner(a.getenv, a.logger)
	runner.Stdin = a.stdin
	runner.Stdout = a.stdout
	runner.Stderr = a.stderr

	exitCode, err := runner.Run(command)
	if err != nil {
		return err
	}

	if journal != nil && entry != nil {
		if _, err := journal.Finish(entry, exitCode); err != nil {
			a.logger.Warn("failed to update journal entry", zap.Error(err))
		}
	}

	if exitCode != 0 {
		return shell.ExitStatus(exitCode)
	}
	return nil
}

// readRequest joins the positional arguments into the request. Without any,
// an interactive user is asked for one.
func (a *app) readRequest(args []string) (string, error) {
	request := strings.TrimSpace(strings.Join(args, " "))
	if request != "" {
		return request, nil
	}

	if !a.stdinIsTerminal {
		return "", errNoPrompt
	}

	fmt.Fprint(a.stderr, "What do you want to do? ")
	line, err := render.ReadLine(a.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt: %w", err)
	}

	request = strings.TrimSpace(line)
	if request == "" {
		return "", errNoPrompt
	}
	return request, nil
}

// loadHistory never fails: a missing or unreadable history file only means
// the model gets less context.
func (a *app) loadHistory(limit int) *history.Snapshot {
	snapshot, err := history.LoadShellHistory(core.HomeDir(), limit)
	switch {
	case errors.Is(err, history.ErrNoShellHistory):
		a.logger.Debug("no shell history file found")
		return &history.Snapshot{}
	case err != nil:
		a.logger.Warn("failed to read shell history", zap.Error(err))
		fmt.Fprintln(a.stderr, styles.WARN("Warning: could not read shell history: "+err.Error()))
		return &history.Snapshot{}
	}

	a.logger.Debug("loaded shell history",
		zap.String("path", snapshot.Path),
		zap.Int("lines", len(snapshot.Lines)),
	)
	return snapshot
}

func (a *app) complete(ctx context.Context, provider llm.Provider, request llm.Request, cfg *config.Config) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if a.stderrIsTerminal {
		spinner := render.NewSpinner(a.stderr)
		spinner.SetMessage("Thinking...")
		stop := spinner.Start(ctx)
		defer stop()
	}

	return provider.Complete(ctx, request)
}

func (a *app) printDryRun(cfg *config.Config, snapshot *history.Snapshot, text string) error {
	provider, err := llm.NewProvider(cfg.Provider, llm.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	render.Field(a.stdout, "Provider", provider.Name())
	render.Field(a.stdout, "Model", cfg.Model)
	render.Field(a.stdout, "Max tokens", cfg.MaxTokens)
	render.Field(a.stdout, "Endpoint", provider.Endpoint())

	if snapshot.Path == "" {
		render.Field(a.stdout, "History", "none")
	} else {
		render.Field(a.stdout, "History", fmt.Sprintf("%s (%d lines of %s, modified %s)",
			snapshot.Path,
			len(snapshot.Lines),
			humanize.Bytes(uint64(snapshot.Size)),
			humanize.Time(snapshot.ModTime),
		))
	}

	fmt.Fprintln(a.stdout)
	render.Section(a.stdout, "Prompt", text)
	return nil
}

func (a *app) copyCommand(command string) {
	if err := clipboard.WriteAll(command); err != nil {
		a.logger.Warn("failed to copy suggestion to clipboard", zap.Error(err))
		fmt.Fprintln(a.stderr, styles.WARN("Warning: could not copy to clipboard: "+err.Error()))
		return
	}
	render.Note(a.stderr, "Copied to clipboard.")
}

func (a *app) openJournal(cfg *config.Config) *history.Journal {
	if !cfg.Journal {
		return nil
	}
	if err := core.EnsureDataDir(); err != nil {
		a.logger.Warn("failed to create data directory", zap.Error(err))
		return nil
	}

	journal, err := history.OpenJournal(core.JournalFile())
	if err != nil {
		a.logger.Warn("failed to open journal", zap.Error(err))
		return nil
	}
	return journal
}

func (a *app) recordSuggestion(journal *history.Journal, request, command, model string) *history.Entry {
	if journal == nil {
		return nil
	}

	directory, err := os.Getwd()
	if err != nil {
		directory = ""
	}

	entry, err := journal.Record(request, command, model, directory)
	if err != nil {
		a.logger.Warn("failed to record suggestion", zap.Error(err))
		return nil
	}
	return entry
}

func (a *app) listRecent() error {
	if err := core.EnsureDataDir(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	journal, err := history.OpenJournal(core.JournalFile())
	if err != nil {
		return err
	}
	defer journal.Close()

	entries, err := journal.Recent(recentLimit)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.stdout, "No suggestions yet.")
		return nil
	}

	for _, entry := range entries {
		outcome := "not run"
		if entry.Executed && entry.ExitCode.Valid {
			outcome = fmt.Sprintf("exit %d", entry.ExitCode.Int32)
		}
		render.Note(a.stdout, "%s · %s · %s", humanize.Time(entry.CreatedAt), entry.Prompt, outcome)
		fmt.Fprintf(a.stdout, "  %s\n", entry.Command)
	}
	return nil
}
