package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/widgets"
)

// Welcome is the hero page. Its only action starts the setup flow.
type Welcome struct {
	cat *catalog.Catalog
}

func NewWelcome(cat *catalog.Catalog) *Welcome {
	return &Welcome{cat: cat}
}

func (w *Welcome) ID() core.ScreenID { return core.ScreenWelcome }
func (w *Welcome) Title() string { return "Welcome" }
func (w *Welcome) Scope() string { return core.ScopeWelcome }

func (w *Welcome) Enter(*core.Model) tea.Cmd { return nil }

func (w *Welcome) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.Keys().IsAction(km, "get-started", w.Scope()) {
		return m.Navigate(core.GetStarted())
	}
	return nil
}

func (w *Welcome) View(m *core.Model, width, height int) string {
	wc := w.cat.Welcome
	hero := lipgloss.JoinVertical(lipgloss.Center,
		headlineStyle.Render(wc.Headline),
		mutedStyle.Render(wc.Tagline),
	)
	cards := make([]widgets.Widget, 0, len(wc.Features))
	for _, f := range wc.Features {
		cards = append(cards, widgets.Card{Title: f.Title, Content: f.Description, Highlight: f.Highlight})
	}
	cardRow := ""
	if len(cards) > 0 {
		cardRow = widgets.HStack{Widgets: cards, Gap: 1}.Render(width, 6)
	}
	cta := button("Get Started", true, true) + "  " + mutedStyle.Render("enter")

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hero))
	b.WriteString("\n\n")
	b.WriteString(cardRow)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, cta))
	if wc.Footnote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mutedStyle.Render(wc.Footnote)))
	}
	return widgets.Text(b.String()).Render(width, height)
}
