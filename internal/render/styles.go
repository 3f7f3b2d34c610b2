// Package render formats llm-exec's terminal output: the suggested command,
// the dry-run preview, the confirmation prompt and the wait spinner.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorCyan   = lipgloss.Color("14") // Headers
	ColorYellow = lipgloss.Color("11") // The suggested command
	ColorGray   = lipgloss.Color("8")  // Secondary information
	ColorPink   = lipgloss.Color("205")
)

var (
	// HeaderStyle is used for section headers such as "Suggested command:"
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// CommandStyle is used for the suggested command itself
	CommandStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)

	// DimStyle is used for notes and metadata
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)

	SpinnerStyle = lipgloss.NewStyle().Foreground(ColorPink)
)
