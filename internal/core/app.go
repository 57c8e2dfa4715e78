package core

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Screen is an overlay drawn above the active page (command palette and
// similar). It gets keys before the page does.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Page renders one ScreenID. Enter runs every time the router lands on the
// page, so per-visit state (chat history, counters) starts fresh.
type Page interface {
	ID() ScreenID
	Title() string
	Scope() string
	Enter(m *Model) tea.Cmd
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(m *Model, width, height int) string
}

// NavPosition places the persistent navigation bar.
type NavPosition string

const (
	NavBottom NavPosition = "bottom"
	NavTop    NavPosition = "top"
)

func ParseNavPosition(s string) NavPosition {
	if NavPosition(s) == NavTop {
		return NavTop
	}
	return NavBottom
}

type Model struct {
	width            int
	height           int
	pages            map[ScreenID]Page
	router           Router
	screens          ScreenStack
	keys             *KeyRegistry
	commands         *CommandRegistry
	status           string
	statusErr        bool
	quitting         bool
	navPosition      NavPosition
	appName          string
	logger           *zap.Logger
	OpenCommandModal func(m *Model, scope string) Screen
}

type Option func(*Model)

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithNavPosition(p NavPosition) Option {
	return func(m *Model) { m.navPosition = p }
}

func NewModel(pages []Page, keys *KeyRegistry, commands *CommandRegistry, opts ...Option) Model {
	m := Model{
		pages:       make(map[ScreenID]Page, len(pages)),
		router:      NewRouter(),
		keys:        keys,
		commands:    commands,
		status:      "Ready",
		navPosition: NavBottom,
		appName:     "FitCoach",
		logger:      zap.NewNop(),
		width:       100,
		height:      32,
	}
	for _, p := range pages {
		m.pages[p.ID()] = p
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if p := m.ActivePage(); p != nil {
		return p.Enter(&m)
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Current() ScreenID { return m.router.Current() }

func (m Model) Conversation() (Conversation, bool) { return m.router.Conversation() }

func (m Model) ActivePage() Page { return m.pages[m.router.Current()] }

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m Model) Logger() *zap.Logger { return m.logger }

func (m Model) NavPosition() NavPosition { return m.navPosition }

func (m Model) Overlays() int { return m.screens.Len() }

// TopScreen is the innermost overlay, or nil.
func (m Model) TopScreen() Screen { return m.screens.Top() }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if p := m.ActivePage(); p != nil {
		return p.Scope()
	}
	return "app"
}

// Navigate applies a trigger and enters the destination page when the screen
// changed. Rejected triggers only update the status bar.
func (m *Model) Navigate(t Trigger) tea.Cmd {
	tr, err := m.router.Apply(t)
	if err != nil {
		m.logger.Debug("navigation rejected", zap.Stringer("trigger", t), zap.Error(err))
		if errors.Is(err, ErrInvalidConversation) {
			m.SetError(err)
		}
		return nil
	}
	m.logger.Debug("navigated",
		zap.String("from", string(tr.From)),
		zap.String("to", string(tr.To)),
		zap.Stringer("trigger", t),
		zap.Bool("conversation_created", tr.Created),
		zap.Bool("conversation_cleared", tr.Cleared),
	)
	if tr.From == tr.To {
		return nil
	}
	m.SetStatus(m.titleOf(tr.To))
	if p := m.pages[tr.To]; p != nil {
		return p.Enter(m)
	}
	return nil
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m Model) titleOf(id ScreenID) string {
	if p := m.pages[id]; p != nil {
		return p.Title()
	}
	return string(id)
}
