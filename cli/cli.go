// Package cli provides the command-line surface over the journal reader
// and its reports.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})

	// colorEnabled is cleared by the no_color config setting.
	colorEnabled = true
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		render(successStyle, successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		render(errorStyle, errorSymbol),
		render(errorStyle, message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		render(infoStyle, infoSymbol),
		formatted,
	)
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptJournalPath asks the user for a journal file when nothing else
// named one. Returns an empty path if stdin is not a terminal.
func promptJournalPath() (string, error) {
	if !isTerminal() {
		return "", nil
	}

	var path string

	form := huh.NewInput().
		Title("Which journal file should be read?").
		Value(&path)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return path, nil
}
