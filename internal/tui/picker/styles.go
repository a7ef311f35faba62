package picker

import "github.com/charmbracelet/lipgloss"

// Colors used in the picker.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the picker.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary),
		Normal: lipgloss.NewStyle(),
		Help: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
