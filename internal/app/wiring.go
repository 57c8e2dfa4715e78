// Package app assembles the pages, overlays and palette commands into a
// core.Model.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/coach"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/progress"
	"github.com/jask/fitcoach/internal/screens"
)

// Deps is everything the pages need from outside the UI.
type Deps struct {
	Ctx               context.Context
	Catalog           *catalog.Catalog
	Recorder          screens.Recorder
	LoadProgress      screens.SnapshotLoader
	BotOptions        []coach.Option
	MarkdownStyle     string
	AnimationDuration time.Duration
	AnimationFrames   int
}

func Pages(d Deps) []core.Page {
	ctx := d.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	chatOpts := []screens.ChatOption{
		screens.WithContext(ctx),
		screens.WithBotOptions(d.BotOptions...),
		screens.WithMarkdownStyle(d.MarkdownStyle),
	}
	if d.Recorder != nil {
		chatOpts = append(chatOpts, screens.WithRecorder(d.Recorder))
	}
	dash := screens.NewProgress(ctx, progress.FromSample(d.Catalog.SampleProgress), d.LoadProgress)
	dash.SetAnimation(d.AnimationDuration, d.AnimationFrames)
	return []core.Page{
		screens.NewWelcome(d.Catalog),
		screens.NewSetup(d.Catalog),
		screens.NewChat(d.Catalog, chatOpts...),
		dash,
		screens.NewPremium(d.Catalog),
	}
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	RegisterCommands(m.CommandRegistry())
}

func RegisterCommands(reg *core.CommandRegistry) {
	reg.Register(core.Command{
		ID:          "go-home",
		Name:        "Go home",
		Description: "Back to the welcome screen (ends the conversation)",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Navigate(core.NavigateHome())
		},
	})
	reg.Register(core.Command{
		ID:          "new-conversation",
		Name:        "New conversation",
		Description: "Name a conversation and pick a focus",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			switch m.Current() {
			case core.ScreenNewConversation:
				return nil
			case core.ScreenWelcome:
				return m.Navigate(core.GetStarted())
			case core.ScreenChat:
				return m.Navigate(core.Back())
			}
			home := m.Navigate(core.NavigateHome())
			return tea.Batch(home, m.Navigate(core.GetStarted()))
		},
	})
	reg.Register(core.Command{
		ID:          "resume-chat",
		Name:        "Resume chat",
		Description: "Return to the current conversation",
		Scopes:      []string{"*"},
		Disabled: func(m *core.Model) (bool, string) {
			if _, ok := m.Conversation(); !ok {
				return true, "no active conversation"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Navigate(core.Navigate(core.ScreenChat))
		},
	})
	reg.Register(core.Command{
		ID:          "go-progress",
		Name:        "Progress dashboard",
		Description: "Today's steps, calories and water",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Navigate(core.Navigate(core.ScreenProgress))
		},
	})
	reg.Register(core.Command{
		ID:          "weekly-summary",
		Name:        "Weekly summary",
		Description: "Steps for the last seven days",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			enter := m.Navigate(core.Navigate(core.ScreenProgress))
			if dash, ok := m.ActivePage().(*screens.Progress); ok {
				dash.ShowWeekly()
			}
			return enter
		},
	})
	reg.Register(core.Command{
		ID:          "go-premium",
		Name:        "Premium",
		Description: "Plans and the free trial",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Navigate(core.Navigate(core.ScreenPremium))
		},
	})
	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Quit",
		Description: "Exit FitCoach",
		Scopes:      []string{"*"},
		Execute: func(*core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}
