// Package color provides color detection and theming for CLI output.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Profile detects whether color output should be enabled.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - enabled is false (--no-color flag or output.color = false)
func Profile(enabled bool) bool {
	if !enabled {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// IsTerminal returns true if the given file is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Enabled combines Profile with a terminal check on f.
func Enabled(enabled bool, f *os.File) bool {
	return Profile(enabled) && IsTerminal(f)
}

// Theme holds lipgloss styles for report output.
type Theme struct {
	Warning  lipgloss.Style
	Advisory lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Path     lipgloss.Style
	Code     lipgloss.Style
	Header   lipgloss.Style
	Muted    lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // bright yellow
		Advisory: lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // bright blue
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // bright green
		Path:     lipgloss.NewStyle().Bold(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
	}
}
