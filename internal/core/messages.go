package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// DataLoadedMsg is delivered to every page; pages pick the keys they own.
type DataLoadedMsg struct {
	Key  string
	Data any
	Err  error
}

type CommandExecuteMsg struct {
	CommandID string
}

// NavigateMsg asks the router to apply a trigger from outside a page, for
// example from the command palette or a deep link.
type NavigateMsg struct {
	Trigger Trigger
}

// SettingsChangedMsg carries live-reloaded settings. The model applies the
// navigation bar position and forwards the message to every page.
type SettingsChangedMsg struct {
	NavPosition NavPosition
	TypingDelay time.Duration
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
