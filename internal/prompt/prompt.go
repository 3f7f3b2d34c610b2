// Package prompt assembles the text sent to the model and turns the model's
// reply back into a command line.
package prompt

import (
	"fmt"
	"strings"

	"github.com/isaacd9/llm-exec/internal/config"
	"github.com/isaacd9/llm-exec/internal/llm"
)

const (
	HistoryHeader     = "The user's recent shell history:"
	RequestHeader     = "The user's request:"
	ReplyInstruction  = "Reply with exactly one shell command and nothing else: no explanation, no alternatives, no markdown or code fences."
	historyOpenMarker = "<shell_history>"
	historyEndMarker  = "</shell_history>"
)

const defaultSystemPrompt = `You are a command-line assistant. You translate a request into a single shell command.

Rules:
1. Reply with one shell command and nothing else.
2. Do not explain, do not offer alternatives, do not use markdown, code blocks or backticks.
3. If the request cannot be turned into a command, reply with: echo "Error: <reason>"
4. Never suggest running %q. The user is already running it to talk to you.

The reply is executed as-is by the user's shell.`

// DefaultSystemPrompt returns the built-in system prompt. argv0 is the name
// the program was invoked as.
func DefaultSystemPrompt(argv0 string) string {
	return fmt.Sprintf(defaultSystemPrompt, argv0)
}

// SystemPrompt resolves the effective system prompt. An explicit
// system_prompt is used verbatim and the suffix is ignored; otherwise the
// suffix, if any, follows the built-in prompt after a blank line.
func SystemPrompt(cfg *config.Config, argv0 string) string {
	if cfg.SystemPrompt != nil {
		return *cfg.SystemPrompt
	}

	base := DefaultSystemPrompt(argv0)
	if cfg.SystemPromptSuffix != nil && *cfg.SystemPromptSuffix != "" {
		return base + "\n\n" + *cfg.SystemPromptSuffix
	}
	return base
}

// Assemble builds the full prompt text. The history section is omitted
// entirely when history is empty.
func Assemble(systemPrompt string, history []string, request string) string {
	var b strings.Builder

	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	if len(history) > 0 {
		b.WriteString(HistoryHeader)
		b.WriteString("\n")
		b.WriteString(historyOpenMarker)
		b.WriteString("\n")
		for _, line := range history {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(historyEndMarker)
		b.WriteString("\n\n")
	}

	b.WriteString(RequestHeader)
	b.WriteString("\n")
	b.WriteString(request)
	b.WriteString("\n\n")
	b.WriteString(ReplyInstruction)

	return b.String()
}

// NewRequest wraps assembled prompt text in a single user message.
func NewRequest(cfg *config.Config, text string) llm.Request {
	return llm.Request{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Messages: []llm.Message{
			{Role: "user", Content: text},
		},
	}
}
