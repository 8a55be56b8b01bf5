package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared across commands.
var (
	ColorGreen  = lipgloss.Color("42")
	ColorYellow = lipgloss.Color("220")
	ColorRed    = lipgloss.Color("196")
	ColorBlue   = lipgloss.Color("39")
	ColorGray   = lipgloss.Color("245")
)

// Semantic styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleError   = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorGray)
	StyleBold    = lipgloss.NewStyle().Bold(true)
)

// Module statuses as they appear in build output.
const (
	StatusCompiled = "compiled"
	StatusFresh    = "fresh"
	StatusFailed   = "failed"
)

// moduleColumn is the column at which statuses are aligned.
const moduleColumn = 40

// StatusStyle returns the style for a module status string.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCompiled:
		return StyleSuccess
	case StatusFresh:
		return StyleDim
	case StatusFailed:
		return StyleError
	default:
		return lipgloss.NewStyle()
	}
}

// FormatModuleLine renders one line of build output: the module name
// prefixed with "m:" and its status right-aligned in a fixed column.
//
//	m:Data.List                           compiled
func FormatModuleLine(name, status string) string {
	pad := moduleColumn - len("m:") - len(name)
	if pad < 2 {
		pad = 2
	}
	return StyleDim.Render("m:") + name + strings.Repeat(" ", pad) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a success summary line.
func FormatCheckmark(msg string) string {
	return StyleSuccess.Render("✔") + " " + msg
}

// FormatWarning renders a warning line.
func FormatWarning(msg string) string {
	return StyleWarning.Render("⚠") + " " + msg
}

// FormatErrorLine renders a failure line.
func FormatErrorLine(msg string) string {
	return StyleError.Render("✗") + " " + msg
}
