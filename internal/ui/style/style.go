// Package style holds the colour palette and status icons shared by the
// logger and the phase summary.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	Ember   = lipgloss.Color("#E8590C")
	Ash     = lipgloss.Color("#8A8F98")
	Success = lipgloss.Color("#2F9E44")
	Failure = lipgloss.Color("#E03131")
	Caution = lipgloss.Color("#F08C00")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// RGB converts a palette colour for use with a termenv.Output.
func RGB(c lipgloss.Color) termenv.Color {
	return termenv.RGBColor(string(c))
}
