package widgets

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Gauge is a single-line fill bar. Ratio is clamped into [0, 1].
type Gauge struct {
	Ratio float64
	Color lipgloss.Color
}

func (g Gauge) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	color := g.Color
	if color == "" {
		color = cardAccentColor
	}
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(min(1, max(0, g.Ratio)))
}
