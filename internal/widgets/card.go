package widgets

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	cardBorder      = lipgloss.Color("#585b70")
	cardBorderHot   = lipgloss.Color("#89b4fa")
	cardTitleColor  = lipgloss.Color("#cdd6f4")
	cardAccentColor = lipgloss.Color("#a6e3a1")
)

// Card is a bordered block with a title line. Selected cards get the accent
// border; Highlight marks the title.
type Card struct {
	Title     string
	Content   string
	Selected  bool
	Highlight bool
}

func (c Card) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	border := cardBorder
	if c.Selected {
		border = cardBorderHot
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(cardTitleColor)
	if c.Highlight {
		titleStyle = titleStyle.Foreground(cardAccentColor)
	}
	body := titleStyle.Render(c.Title)
	if c.Content != "" {
		body += "\n" + c.Content
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(1, width-2)).
		MaxHeight(max(1, height))
	return style.Render(body)
}
