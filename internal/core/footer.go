package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type navItem struct {
	label  string
	action string
	match  []ScreenID
}

var navItems = []navItem{
	{label: "Home", action: "nav-home", match: []ScreenID{ScreenWelcome}},
	{label: "Chat", action: "nav-chat", match: []ScreenID{ScreenNewConversation, ScreenChat}},
	{label: "Progress", action: "nav-progress", match: []ScreenID{ScreenProgress}},
	{label: "Premium", action: "nav-premium", match: []ScreenID{ScreenPremium}},
}

// RenderNavBar draws the persistent Home/Chat/Progress/Premium control.
func RenderNavBar(m Model) string {
	cur := m.router.Current()
	scope := m.ActiveScope()
	items := make([]string, 0, len(navItems))
	for _, it := range navItems {
		label := it.label
		if k := m.keys.KeyFor(it.action, scope); k != "" {
			label = k + " " + label
		}
		active := false
		for _, id := range it.match {
			if id == cur {
				active = true
			}
		}
		if active {
			items = append(items, activeNavStyle.Render(label))
		} else {
			items = append(items, inactiveNavStyle.Render(label))
		}
	}
	line := strings.Join(items, navSepStyle.Render("│"))
	pad := max(0, (m.width-ansi.StringWidth(line))/2)
	return renderBar(navBarStyle, max(1, m.width), strings.Repeat(" ", pad)+line, colorMantle)
}

func RenderFooter(m Model) string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	seen := map[string]bool{}
	for _, b := range bindings {
		if len(b.Keys) == 0 || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line, bg)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}
