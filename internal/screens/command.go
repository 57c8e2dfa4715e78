package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fitcoach/internal/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the ctrl+k palette. Search runs on every keystroke;
// enter hands the selected id to onSelect.
type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "› "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

// Options is what the list currently shows.
func (s *CommandScreen) Options() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil, true
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect != nil {
				return s, func() tea.Msg { return s.onSelect(it.ID) }, true
			}
			return s, nil, true
		case "up", "down", "ctrl+p", "ctrl+n":
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(navKey(km))
			return s, cmd, false
		}
	}
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

// navKey maps the emacs-style aliases onto the arrows the list understands.
func navKey(km tea.KeyMsg) tea.KeyMsg {
	switch km.String() {
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return km
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	items := s.search(query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(4, height-3))
	return headlineStyle.Render("Commands") + " " + mutedStyle.Render(strings.TrimPrefix(s.scope, "page:")) + "\n" + s.input.View() + "\n" + s.list.View()
}
