package widgets

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

type ChartPoint struct {
	Label string
	Value float64
}

// BarChart draws labelled vertical bars.
type BarChart struct {
	Title string
	Data  []ChartPoint
	Color lipgloss.Color
}

func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Data) == 0 {
		return c.Title + "\n(no data)"
	}
	chartHeight := height
	if c.Title != "" {
		chartHeight--
	}
	if chartHeight < 3 {
		return c.Title
	}
	color := c.Color
	if color == "" {
		color = cardBorderHot
	}
	style := lipgloss.NewStyle().Foreground(color)
	bars := make([]barchart.BarData, 0, len(c.Data))
	for _, p := range c.Data {
		bars = append(bars, barchart.BarData{
			Label:  p.Label,
			Values: []barchart.BarValue{{Name: p.Label, Value: p.Value, Style: style}},
		})
	}
	bc := barchart.New(width, chartHeight)
	bc.PushAll(bars)
	bc.Draw()
	if c.Title == "" {
		return bc.View()
	}
	return c.Title + "\n" + bc.View()
}
