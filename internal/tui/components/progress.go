package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// ProgressBar displays a progress indicator
type ProgressBar struct {
	Current   int
	Total     int
	Width     int
	Label     string
	ShowCount bool
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{
		Current:   current,
		Total:     total,
		Width:     30,
		ShowCount: true,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns the completion percentage
func (p *ProgressBar) Percentage() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total) * 100
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(p.Label))
		content.WriteString(" ")
	}

	filled := int(float64(p.Width) * p.Percentage() / 100)
	filled = min(max(filled, 0), p.Width)

	content.WriteString(Bar(filled, tuistyles.ColorSuccess))
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", p.Width-filled)))

	if p.ShowCount {
		content.WriteString(" ")
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(fmt.Sprintf("%d/%d", p.Current, p.Total)))
	}
	return content.String()
}

// Bar renders n solid blocks in colour.
func Bar(n int, color lipgloss.TerminalColor) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n))
}
