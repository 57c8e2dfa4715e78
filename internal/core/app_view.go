package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/fitcoach/internal/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Keep moving. See you tomorrow!\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	nav := ""
	if m.NavVisible() {
		nav = RenderNavBar(m)
	}
	chrome := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(footer)
	if nav != "" {
		chrome += lipgloss.Height(nav)
	}
	bodyHeight := max(0, m.height-chrome)
	var body string
	if p := m.ActivePage(); p != nil && bodyHeight > 0 {
		body = p.View(&m, max(1, m.width-2), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, bodyHeight-6)), max(1, m.width-2), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	parts := []string{header, status}
	if nav != "" && m.navPosition == NavTop {
		parts = append(parts, nav)
	}
	parts = append(parts, body)
	if nav != "" && m.navPosition != NavTop {
		parts = append(parts, nav)
	}
	parts = append(parts, footer)
	view := fitHeight(strings.Join(parts, "\n"), max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// NavVisible mirrors the mobile layout: the bar is hidden on the welcome
// hero and inside a chat, where the keyboard owns the bottom of the screen.
func (m Model) NavVisible() bool {
	cur := m.router.Current()
	return cur != ScreenWelcome && cur != ScreenChat
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.appName)
	title := ""
	if p := m.ActivePage(); p != nil {
		title = p.Title()
	}
	right := title
	if c, ok := m.router.Conversation(); ok {
		right = c.Name + " · " + c.Category + " · " + c.Mode + "  " + title
	}
	right = headerMetaStyle.Render(ansi.Truncate(right, max(1, m.width-ansi.StringWidth(left)-1), ""))
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
