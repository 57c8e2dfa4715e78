package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/widgets"
)

type setupFocus int

const (
	focusName setupFocus = iota
	focusCategory
	focusMode
	focusCreate
	focusCount
)

// Setup is the new-conversation form: a name, one category and a coaching
// mode. Every visit starts from a blank form.
type Setup struct {
	cat      *catalog.Catalog
	input    textinput.Model
	category int
	mode     int
	focus    setupFocus
	hint     string
}

func NewSetup(cat *catalog.Catalog) *Setup {
	in := textinput.New()
	in.Placeholder = "e.g. Summer Shred, Marathon Prep"
	in.Prompt = "› "
	in.CharLimit = 60
	s := &Setup{cat: cat, input: in}
	s.reset()
	return s
}

func (s *Setup) ID() core.ScreenID { return core.ScreenNewConversation }
func (s *Setup) Title() string { return "New Conversation" }
func (s *Setup) Scope() string { return core.ScopeNewConversation }

func (s *Setup) reset() {
	s.input.Reset()
	s.category = -1
	s.mode = 0
	for i, md := range s.cat.Modes {
		if md.ID == s.cat.DefaultMode {
			s.mode = i
		}
	}
	s.hint = ""
	s.setFocus(focusName)
}

func (s *Setup) setFocus(f setupFocus) {
	s.focus = (f + focusCount) % focusCount
	if s.focus == focusName {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

func (s *Setup) Enter(*core.Model) tea.Cmd {
	s.reset()
	return textinput.Blink
}

// Conversation is the descriptor the form would create right now.
func (s *Setup) Conversation() core.Conversation {
	c := core.Conversation{Name: strings.TrimSpace(s.input.Value())}
	if s.category >= 0 && s.category < len(s.cat.Categories) {
		c.Category = s.cat.Categories[s.category].ID
	}
	if s.mode >= 0 && s.mode < len(s.cat.Modes) {
		c.Mode = s.cat.Modes[s.mode].ID
	}
	return c
}

// CanCreate mirrors the router's validation so the button can show disabled.
func (s *Setup) CanCreate() bool {
	return s.Conversation().Validate() == nil
}

func (s *Setup) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	keys, scope := m.Keys(), s.Scope()
	switch {
	case keys.IsAction(km, "next-field", scope):
		s.setFocus(s.focus + 1)
		return nil
	case keys.IsAction(km, "prev-field", scope):
		s.setFocus(s.focus - 1)
		return nil
	case keys.IsAction(km, "create", scope):
		return s.create(m)
	case s.focus == focusCategory && keys.IsAction(km, "option-prev", scope):
		s.category = step(s.category, -1, len(s.cat.Categories))
		s.hint = ""
		return nil
	case s.focus == focusCategory && keys.IsAction(km, "option-next", scope):
		s.category = step(s.category, 1, len(s.cat.Categories))
		s.hint = ""
		return nil
	case s.focus == focusMode && keys.IsAction(km, "option-prev", scope):
		s.mode = step(s.mode, -1, len(s.cat.Modes))
		return nil
	case s.focus == focusMode && keys.IsAction(km, "option-next", scope):
		s.mode = step(s.mode, 1, len(s.cat.Modes))
		return nil
	}
	if s.focus != focusName {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(km)
	s.hint = ""
	return cmd
}

func (s *Setup) create(m *core.Model) tea.Cmd {
	conv := s.Conversation()
	if err := conv.Validate(); err != nil {
		if conv.Name == "" {
			s.hint = "Give your conversation a name first."
			s.setFocus(focusName)
		} else {
			s.hint = "Pick a focus area with ← →."
			s.setFocus(focusCategory)
		}
		return nil
	}
	return m.Navigate(core.Create(conv))
}

// step moves a selection within n options, wrapping. An empty selection
// lands on the first or last option.
func step(cur, delta, n int) int {
	if n <= 0 {
		return -1
	}
	if cur < 0 {
		if delta < 0 {
			return n - 1
		}
		return 0
	}
	return ((cur+delta)%n + n) % n
}

func (s *Setup) View(m *core.Model, width, height int) string {
	var b strings.Builder
	b.WriteString(headlineStyle.Render("Start a New Conversation"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Tell your coach what you want to work on."))
	b.WriteString("\n\n")

	b.WriteString(s.sectionLabel("Conversation Name", focusName))
	b.WriteString("\n")
	s.input.Width = max(10, width-6)
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	b.WriteString(s.sectionLabel("Choose Your Focus", focusCategory))
	b.WriteString("\n")
	b.WriteString(s.categoryGrid(width))
	b.WriteString("\n\n")

	b.WriteString(s.sectionLabel("Coaching Style", focusMode))
	b.WriteString("\n")
	modes := make([]widgets.Widget, 0, len(s.cat.Modes))
	for i, md := range s.cat.Modes {
		modes = append(modes, widgets.Card{Title: md.Title, Content: mutedStyle.Render(md.Description), Selected: i == s.mode})
	}
	if len(modes) > 0 {
		b.WriteString(widgets.HStack{Widgets: modes, Gap: 1}.Render(width, 4))
	}
	b.WriteString("\n\n")

	b.WriteString(button("Start Conversation", s.CanCreate(), s.focus == focusCreate))
	if s.hint != "" {
		b.WriteString("  ")
		b.WriteString(warnStyle.Render(s.hint))
	}
	return widgets.Text(b.String()).Render(width, height)
}

func (s *Setup) sectionLabel(text string, f setupFocus) string {
	if s.focus == f {
		return labelStyle.Render("▸ " + text)
	}
	return mutedStyle.Render("  " + text)
}

func (s *Setup) categoryGrid(width int) string {
	cells := make([]widgets.Widget, 0, len(s.cat.Categories))
	for i, c := range s.cat.Categories {
		cells = append(cells, widgets.Card{Title: c.Label, Selected: i == s.category})
	}
	return widgets.Grid{Widgets: cells, Columns: 3, MinCellWidth: 14, CellHeight: 3, Gap: 1}.Render(width, 0)
}
