package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testRegistry() *CommandRegistry {
	return NewCommandRegistry([]Command{
		{ID: "go-progress", Name: "Progress dashboard", Description: "Open your daily stats", Scopes: []string{"*"}},
		{ID: "go-premium", Name: "Premium", Description: "See premium plans", Scopes: []string{"*"}},
		{ID: "resume-chat", Name: "Resume chat", Description: "Back to the current conversation", Scopes: []string{"*"},
			Disabled: func(m *Model) (bool, string) {
				_, ok := m.Conversation()
				return !ok, "no active conversation"
			}},
	})
}

func TestCommandSearchSubstring(t *testing.T) {
	m, _ := newTestModel(t)
	got := testRegistry().Search("prem", ScopeWelcome, &m)
	if len(got) != 1 || got[0].CommandID != "go-premium" {
		t.Fatalf("search = %+v", got)
	}
}

func TestCommandSearchTypoFallback(t *testing.T) {
	m, _ := newTestModel(t)
	got := testRegistry().Search("progres dashbord", ScopeWelcome, &m)
	if len(got) != 1 || got[0].CommandID != "go-progress" {
		t.Fatalf("fuzzy search = %+v", got)
	}
	if got := testRegistry().Search("zzzzzz", ScopeWelcome, &m); len(got) != 0 {
		t.Fatalf("nonsense query matched %+v", got)
	}
}

func TestCommandDisabledSortsLastAndRefuses(t *testing.T) {
	m, _ := newTestModel(t)
	reg := testRegistry()
	all := reg.Search("", ScopeWelcome, &m)
	if len(all) != 3 || all[2].CommandID != "resume-chat" || !all[2].Disabled {
		t.Fatalf("disabled command should sort last: %+v", all)
	}
	msg := reg.Execute("resume-chat", &m)()
	if st, ok := msg.(StatusMsg); !ok || st.Text != "no active conversation" {
		t.Fatalf("execute disabled = %#v", msg)
	}
	if st := reg.Execute("nope", &m)().(StatusMsg); st.Text != "Unknown command: nope" {
		t.Fatalf("unknown = %q", st.Text)
	}
}

func TestCommandExecuteMsgRunsCommand(t *testing.T) {
	m, _ := newTestModel(t)
	m.commands.Register(Command{ID: "go-premium", Name: "Premium", Scopes: []string{"*"}, Execute: func(m *Model) tea.Cmd {
		return m.Navigate(Navigate(ScreenPremium))
	}})
	next, _ := m.Update(CommandExecuteMsg{CommandID: "go-premium"})
	if next.(Model).Current() != ScreenPremium {
		t.Fatalf("command did not navigate")
	}
}
