package cli

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for hexdump output.
type Theme struct {
	Primary lipgloss.Color // offsets and summary accents
	Dim     lipgloss.Color // padding and non-printable markers
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Offset  lipgloss.Style
	Hex     lipgloss.Style
	ASCII   lipgloss.Style
	Dim     lipgloss.Style
	Summary lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Offset:  lipgloss.NewStyle().Foreground(t.Primary),
		Hex:     lipgloss.NewStyle(),
		ASCII:   lipgloss.NewStyle().Foreground(t.Primary),
		Dim:     lipgloss.NewStyle().Foreground(t.Dim),
		Summary: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
	}
}
