package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/fincalc/internal/riskprofile"
	"github.com/rgehrsitz/fincalc/internal/tui/tuistyles"
)

// AllocationChart draws one horizontal bar per asset class, scaled so 100%
// fills Width.
type AllocationChart struct {
	Slices []riskprofile.Allocation
	Width  int
}

// NewAllocationChart creates a chart for slices
func NewAllocationChart(slices []riskprofile.Allocation) *AllocationChart {
	return &AllocationChart{Slices: slices, Width: 40}
}

// WithWidth sets the width of a full bar
func (c *AllocationChart) WithWidth(width int) *AllocationChart {
	c.Width = width
	return c
}

// Render returns the chart
func (c *AllocationChart) Render() string {
	labelWidth := 0
	for _, s := range c.Slices {
		labelWidth = max(labelWidth, lipgloss.Width(s.AssetClass))
	}

	var b strings.Builder
	for i, s := range c.Slices {
		label := tuistyles.MetricLabelStyle.Width(labelWidth + 2).Render(s.AssetClass)
		n := int(s.Percent / 100 * float64(c.Width))
		b.WriteString(label)
		b.WriteString(Bar(n, tuistyles.AssetColor(i)))
		b.WriteString(" ")
		b.WriteString(tuistyles.MetricValueStyle.Render(fmt.Sprintf("%g%%", s.Percent)))
		if i < len(c.Slices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
