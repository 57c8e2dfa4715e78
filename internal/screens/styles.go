package screens

import "github.com/charmbracelet/lipgloss"

var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorMuted   = lipgloss.Color("#a6adc8")
	colorAccent  = lipgloss.Color("#89b4fa")
	colorSuccess = lipgloss.Color("#a6e3a1")
	colorWarn    = lipgloss.Color("#f9e2af")
	colorPeach   = lipgloss.Color("#fab387")
	colorTeal    = lipgloss.Color("#94e2d5")
	colorBorder  = lipgloss.Color("#585b70")
	colorSurface = lipgloss.Color("#313244")

	headlineStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	accentStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarn)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1e1e2e")).
			Background(colorSuccess).
			Padding(0, 2)
	buttonFocusStyle = buttonStyle.
				Background(colorAccent)
	buttonOffStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurface).
			Padding(0, 2)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1e1e2e")).
			Background(colorAccent).
			Padding(0, 1)
	botNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	userNameStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

func button(label string, enabled, focused bool) string {
	switch {
	case !enabled:
		return buttonOffStyle.Render(label)
	case focused:
		return buttonFocusStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}
