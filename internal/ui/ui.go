// Package ui provides styled terminal output for command messages.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// colorEnabled is resolved once; CI log streams are not terminals, so
// reports and messages stay plain there.
var colorEnabled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// Success styles a success message.
func Success(text string) string {
	return render(successStyle, text)
}

// Warning styles a warning message.
func Warning(text string) string {
	return render(warningStyle, text)
}

// Error styles an error message.
func Error(text string) string {
	return render(errorStyle, text)
}

// Dim styles secondary detail text.
func Dim(text string) string {
	return render(dimStyle, text)
}

// SetColorEnabled overrides TTY detection (used by tests).
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}
