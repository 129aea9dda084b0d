// Package output provides styled terminal rendering helpers for codelaunch.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for found stores and successful launches.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for failures.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for caution indicators and filter matches.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")

	// ColorWhite is used for primary text.
	ColorWhite = lipgloss.Color("#ffffff")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader lipgloss.Style
	// StyleSuccess is used for positive outcomes.
	StyleSuccess lipgloss.Style
	// StyleError is used for failures.
	StyleError lipgloss.Style
	// StyleWarning is used for cautionary values.
	StyleWarning lipgloss.Style
	// StyleMuted is used for de-emphasized text.
	StyleMuted lipgloss.Style
	// StyleBold is used for emphasized text.
	StyleBold lipgloss.Style
	// StyleLabel is used for field labels in key/value listings.
	StyleLabel lipgloss.Style
)

func init() {
	applyStyles(false)
}

func applyStyles(plain bool) {
	if plain {
		p := lipgloss.NewStyle()
		StyleHeader, StyleSuccess, StyleError = p, p, p
		StyleWarning, StyleMuted, StyleBold = p, p, p
		StyleLabel = p.Width(12)
		return
	}
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleLabel = lipgloss.NewStyle().Width(12)
}

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally by reassigning the
// package-level styles.
func SetNoColor(disabled bool) {
	noColor = disabled
	applyStyles(disabled)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// ConfigureColor disables color when the caller asked for it or when stdout
// is not a terminal.
func ConfigureColor(disabled bool) {
	if disabled || !IsTerminal() {
		SetNoColor(true)
	}
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
