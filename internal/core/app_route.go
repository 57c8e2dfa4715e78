package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var navActions = map[string]Trigger{
	"nav-home":     NavigateHome(),
	"nav-chat":     Navigate(ScreenChat),
	"nav-progress": Navigate(ScreenProgress),
	"nav-premium":  Navigate(ScreenPremium),
	"back":         Back(),
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case NavigateMsg:
		return m, m.Navigate(msg.Trigger)
	case SettingsChangedMsg:
		if msg.NavPosition != "" {
			m.navPosition = msg.NavPosition
		}
		m.logger.Info("settings reloaded", zap.String("nav_position", string(m.navPosition)), zap.Duration("typing_delay", msg.TypingDelay))
		return m, m.broadcast(msg)
	case DataLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("data load failed", zap.String("key", msg.Key), zap.Error(msg.Err))
			m.SetError(msg.Err)
		}
		return m, m.broadcast(msg)
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if top := m.screens.Top(); top != nil {
			return m, m.updateTop(msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if action, ok := m.keys.ActionFor(msg, scope); ok {
			if t, isNav := navActions[action]; isNav {
				return m, m.Navigate(t)
			}
		}
		if p := m.ActivePage(); p != nil {
			return m, p.Update(&m, msg)
		}
		return m, nil
	}

	var cmds []tea.Cmd
	if top := m.screens.Top(); top != nil {
		cmds = append(cmds, m.updateTop(msg))
	}
	if p := m.ActivePage(); p != nil {
		cmds = append(cmds, p.Update(&m, msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updateTop(msg tea.Msg) tea.Cmd {
	next, cmd, pop := m.screens.Top().Update(msg)
	if pop {
		m.screens.Pop()
		return cmd
	}
	m.screens.replaceTop(next)
	return cmd
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, id := range Screens {
		if p := m.pages[id]; p != nil {
			cmds = append(cmds, p.Update(m, msg))
		}
	}
	return tea.Batch(cmds...)
}
