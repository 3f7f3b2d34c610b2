package prompt

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

const fence = "```"

// ExtractCommand turns a model reply into a command line. Surrounding
// whitespace, a leading fence line (with or without a language tag), a
// trailing fence and a single pair of wrapping backticks are removed.
func ExtractCommand(reply string) string {
	text := strings.TrimSpace(reply)

	if strings.HasPrefix(text, fence) {
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			text = text[nl+1:]
		} else {
			text = strings.TrimPrefix(text, fence)
		}
		text = strings.TrimSpace(text)
		text = strings.TrimSuffix(text, fence)
		text = strings.TrimSpace(text)
	}

	if len(text) >= 2 && text[0] == '`' && text[len(text)-1] == '`' &&
		!strings.Contains(text[1:len(text)-1], "`") {
		text = text[1 : len(text)-1]
	}

	return strings.TrimSpace(text)
}

// RefusalError is returned when the model answered with its error sigil
// instead of a command.
type RefusalError struct {
	Reason string
}

func (e *RefusalError) Error() string {
	return fmt.Sprintf("no command suggested: %s", e.Reason)
}

// Refusal reports whether command is the `echo "Error: <reason>"` reply the
// system prompt asks for when no command fits.
func Refusal(command string) (*RefusalError, bool) {
	rest, ok := strings.CutPrefix(command, `echo "Error: `)
	if !ok {
		return nil, false
	}
	reason, ok := strings.CutSuffix(rest, `"`)
	if !ok || strings.ContainsAny(reason, "\"\n") {
		return nil, false
	}
	return &RefusalError{Reason: reason}, true
}

// Statements counts the top-level statements in command using a bash
// parser. Text the parser rejects counts as zero; it is still run verbatim.
func Statements(command string) int {
	file, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(command), "")
	if err != nil {
		return 0
	}
	return len(file.Stmts)
}
