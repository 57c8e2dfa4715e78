package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/coach"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/widgets"
)

// Recorder mirrors chat messages into durable storage. chatID identifies one
// visit to the chat page.
type Recorder interface {
	Record(ctx context.Context, chatID string, conv core.Conversation, msg coach.Message) error
}

type recordFailedMsg struct {
	chat string
	err  error
}

const recordTimeout = 2 * time.Second

// Chat is one conversation with the coach. Entering the page starts a fresh
// instance: new id, a single greeting, nothing pending.
type Chat struct {
	ctx      context.Context
	cat      *catalog.Catalog
	botOpts  []coach.Option
	bot      *coach.Bot
	recorder Recorder
	mdStyle  string

	instance string
	conv     core.Conversation
	messages []coach.Message
	typing   bool

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	wrap     int
}

type ChatOption func(*Chat)

// WithRecorder enables the journal.
func WithRecorder(r Recorder) ChatOption {
	return func(c *Chat) { c.recorder = r }
}

// WithBotOptions passes options through to every coach.Bot the page builds.
func WithBotOptions(opts ...coach.Option) ChatOption {
	return func(c *Chat) { c.botOpts = append(c.botOpts, opts...) }
}

// WithMarkdownStyle selects the glamour style for bot messages.
func WithMarkdownStyle(style string) ChatOption {
	return func(c *Chat) {
		if style != "" {
			c.mdStyle = style
		}
	}
}

func WithContext(ctx context.Context) ChatOption {
	return func(c *Chat) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

func NewChat(cat *catalog.Catalog, opts ...ChatOption) *Chat {
	in := textinput.New()
	in.Placeholder = "Ask your coach anything..."
	in.Prompt = "│ "
	in.CharLimit = 1000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorTeal)

	c := &Chat{
		ctx:      context.Background(),
		cat:      cat,
		mdStyle:  "dark",
		input:    in,
		viewport: viewport.New(80, 10),
		spinner:  sp,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bot = coach.New(cat, c.botOpts...)
	return c
}

func (c *Chat) ID() core.ScreenID { return core.ScreenChat }
func (c *Chat) Title() string { return "Chat" }
func (c *Chat) Scope() string { return core.ScopeChat }

func (c *Chat) Instance() string { return c.instance }

func (c *Chat) Messages() []coach.Message { return append([]coach.Message(nil), c.messages...) }

func (c *Chat) Typing() bool { return c.typing }

// CanSend reports whether the send action would do anything now.
func (c *Chat) CanSend() bool {
	_, ok := coach.Normalize(c.input.Value())
	return ok && !c.typing
}

func (c *Chat) Enter(m *core.Model) tea.Cmd {
	c.instance = uuid.NewString()
	c.typing = false
	c.messages = nil
	c.input.Reset()
	c.input.Focus()
	conv, ok := m.Conversation()
	if !ok {
		return nil
	}
	c.conv = conv
	greeting := c.bot.Greet(conv.Name)
	c.messages = append(c.messages, greeting)
	c.refresh()
	m.Logger().Debug("chat started", zap.String("chat", c.instance), zap.String("name", conv.Name), zap.String("category", conv.Category))
	return tea.Batch(textinput.Blink, c.record(greeting))
}

func (c *Chat) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case coach.ReplyMsg:
		if msg.Chat != c.instance {
			m.Logger().Debug("dropping stale reply", zap.String("chat", msg.Chat), zap.String("current", c.instance))
			return nil
		}
		c.typing = false
		c.messages = append(c.messages, msg.Message)
		c.refresh()
		return c.record(msg.Message)
	case recordFailedMsg:
		m.Logger().Warn("journal write failed", zap.String("chat", msg.chat), zap.Error(msg.err))
		return core.ErrorCmd(fmt.Errorf("journal: %w", msg.err))
	case core.SettingsChangedMsg:
		if msg.TypingDelay > 0 {
			c.bot = coach.New(c.cat, append(append([]coach.Option(nil), c.botOpts...), coach.WithDelay(msg.TypingDelay))...)
		}
		return nil
	case spinner.TickMsg:
		if !c.typing {
			return nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return c.handleKey(m, msg)
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *Chat) handleKey(m *core.Model, km tea.KeyMsg) tea.Cmd {
	keys, scope := m.Keys(), c.Scope()
	switch {
	case keys.IsAction(km, "send", scope):
		return c.Send(m, c.input.Value())
	case keys.IsAction(km, "scroll-up", scope):
		c.viewport.SetYOffset(c.viewport.YOffset - max(1, c.viewport.Height/2))
		return nil
	case keys.IsAction(km, "scroll-down", scope):
		c.viewport.SetYOffset(c.viewport.YOffset + max(1, c.viewport.Height/2))
		return nil
	}
	for i, qa := range c.cat.QuickActions {
		if keys.IsAction(km, fmt.Sprintf("quick-action-%d", i+1), scope) {
			return c.Send(m, qa.Text)
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(km)
	return cmd
}

// Send appends the trimmed user text and schedules one bot reply. Blank
// input and a reply already in flight are no-ops.
func (c *Chat) Send(m *core.Model, raw string) tea.Cmd {
	text, ok := coach.Normalize(raw)
	if !ok {
		return nil
	}
	if c.typing {
		m.SetStatus("Your coach is still typing...")
		return nil
	}
	sent := coach.NewMessage(coach.SenderUser, text, c.bot.Now())
	c.messages = append(c.messages, sent)
	c.input.Reset()
	c.typing = true
	c.refresh()
	return tea.Batch(c.bot.ReplyCmd(c.instance, text), c.spinner.Tick, c.record(sent))
}

func (c *Chat) record(msg coach.Message) tea.Cmd {
	if c.recorder == nil {
		return nil
	}
	rec, chat, conv, ctx := c.recorder, c.instance, c.conv, c.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, recordTimeout)
		defer cancel()
		if err := rec.Record(ctx, chat, conv, msg); err != nil {
			return recordFailedMsg{chat: chat, err: err}
		}
		return nil
	}
}

func (c *Chat) View(m *core.Model, width, height int) string {
	head := labelStyle.Render(c.conv.Name)
	meta := c.conv.Category
	if cat, ok := c.cat.Category(c.conv.Category); ok {
		meta = cat.Label
	}
	if md, ok := c.cat.Mode(c.conv.Mode); ok {
		meta += " • " + md.Title
	}
	header := head + "  " + mutedStyle.Render(meta)

	actions := make([]string, 0, len(c.cat.QuickActions))
	for i, qa := range c.cat.QuickActions {
		actions = append(actions, mutedStyle.Render(fmt.Sprintf("alt+%d", i+1))+" "+accentStyle.Render(qa.Label))
	}
	quick := strings.Join(actions, "   ")

	status := ""
	if c.typing {
		status = c.spinner.View() + mutedStyle.Render(" Coach is typing...")
	}
	c.input.Width = max(10, width-4)
	send := button("Send", c.CanSend(), false)
	inputLine := lipgloss.JoinHorizontal(lipgloss.Top, c.input.View(), " ", send)

	chrome := 5
	c.viewport.Width = max(1, width)
	c.viewport.Height = max(1, height-chrome)
	if c.wrap != width {
		c.wrap = width
		c.renderer = nil
		c.refresh()
	}

	return widgets.Text(strings.Join([]string{
		header,
		c.viewport.View(),
		status,
		quick,
		inputLine,
	}, "\n")).Render(width, height)
}

func (c *Chat) refresh() {
	width := max(20, c.viewport.Width)
	var b strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.renderMessage(msg, width))
	}
	c.viewport.SetContent(b.String())
	c.viewport.GotoBottom()
}

func (c *Chat) renderMessage(msg coach.Message, width int) string {
	stamp := mutedStyle.Render(msg.Timestamp.Format("15:04"))
	bubbleWidth := max(10, width*4/5)
	if msg.Sender == coach.SenderUser {
		name := userNameStyle.Render("You") + " " + stamp
		body := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, name, body))
	}
	name := botNameStyle.Render("Coach") + " " + stamp
	return name + "\n" + c.markdown(msg.Content, bubbleWidth)
}

func (c *Chat) markdown(text string, width int) string {
	if c.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(c.mdStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		c.renderer = r
	}
	out, err := c.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
