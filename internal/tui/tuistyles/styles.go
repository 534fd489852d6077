// Package tuistyles holds the colour palette and lipgloss styles shared by
// the TUI and its scenes and components.
package tuistyles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#04B575")
	ColorAccent    = lipgloss.Color("#F2A541")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorDanger    = lipgloss.Color("#FF4672")
	ColorInfo      = lipgloss.Color("#3C9EE7")

	ColorForeground = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FAFAFA"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#626262"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#C8C8C8", Dark: "#3C3C3C"}
)

// AssetColors cycle through allocation bars.
var AssetColors = []lipgloss.Color{
	lipgloss.Color("#7D56F4"),
	lipgloss.Color("#04B575"),
	lipgloss.Color("#F2A541"),
	lipgloss.Color("#3C9EE7"),
	lipgloss.Color("#FF4672"),
}

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	AnsweredMarkStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Italic(true)
)

// AssetColor returns the bar colour for the i-th allocation slice.
func AssetColor(i int) lipgloss.Color {
	return AssetColors[i%len(AssetColors)]
}
