package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, values.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files and enabled flags.
	ColorGreen = lipgloss.Color("82")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorRed is used for error markers.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, paths, versions).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCreated styles created file names.
	StyleCreated = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleDim styles structural chrome (separators, disabled flags).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings and directory names.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message for stdout output.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorRed).Render("✘")
	return cross + " " + msg
}

// YesNo renders a boolean as a styled yes/no word.
func YesNo(v bool) string {
	if v {
		return StyleCreated.Render("yes")
	}
	return StyleDim.Render("no")
}
