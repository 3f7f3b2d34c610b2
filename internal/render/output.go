package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/samber/lo"
)

// commandIndent is the number of spaces the suggested command is shifted by.
const commandIndent = 2

// Suggestion writes the suggested command under a header, indented, followed
// by a blank line.
func Suggestion(w io.Writer, command string) {
	styled := lo.Map(strings.Split(command, "\n"), func(line string, _ int) string {
		return CommandStyle.Render(line)
	})

	fmt.Fprintln(w, HeaderStyle.Render("Suggested command:"))
	fmt.Fprintln(w, indent.String(strings.Join(styled, "\n"), commandIndent))
	fmt.Fprintln(w)
}

// Field writes a "Label: value" line with a styled label.
func Field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", HeaderStyle.Render(label+":"), value)
}

// Section writes a styled header followed by body on its own lines.
func Section(w io.Writer, header string, body string) {
	fmt.Fprintln(w, HeaderStyle.Render(header+":"))
	fmt.Fprintln(w, body)
}

// Note writes a dimmed informational line.
func Note(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, DimStyle.Render(fmt.Sprintf(format, args...)))
}
