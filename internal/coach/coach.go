// Package coach is the placeholder coaching bot: a greeting, a fixed set of
// canned replies picked at random, and the delayed "typing" reply command.
package coach

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/fitcoach/internal/catalog"
)

// DefaultTypingDelay is how long the bot "types" before replying.
const DefaultTypingDelay = 1500 * time.Millisecond

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type Message struct {
	ID        string
	Content   string
	Sender    Sender
	Timestamp time.Time
}

func NewMessage(sender Sender, content string, at time.Time) Message {
	return Message{ID: uuid.NewString(), Content: content, Sender: sender, Timestamp: at}
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// Bot produces canned replies.
type Bot struct {
	replies  []string
	greeting func(name string) string
	pick     Picker
	delay    time.Duration
	now      func() time.Time
}

type Option func(*Bot)

// WithPicker replaces the random reply selection.
func WithPicker(p Picker) Option {
	return func(b *Bot) {
		if p != nil {
			b.pick = p
		}
	}
}

// WithDelay overrides the typing delay; non-positive values keep the default.
func WithDelay(d time.Duration) Option {
	return func(b *Bot) {
		if d > 0 {
			b.delay = d
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Bot) {
		if now != nil {
			b.now = now
		}
	}
}

func New(cat *catalog.Catalog, opts ...Option) *Bot {
	b := &Bot{
		replies:  append([]string(nil), cat.Replies...),
		greeting: cat.GreetingFor,
		pick:     rand.IntN,
		delay:    DefaultTypingDelay,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bot) Delay() time.Duration { return b.delay }

// Replies is the fixed set every bot answer is drawn from.
func (b *Bot) Replies() []string { return append([]string(nil), b.replies...) }

func (b *Bot) Now() time.Time { return b.now() }

// Greet is the first message of every chat.
func (b *Bot) Greet(conversationName string) Message {
	return NewMessage(SenderBot, b.greeting(conversationName), b.now())
}

// Reply picks one canned answer. The user's text does not influence the
// choice.
func (b *Bot) Reply(string) Message {
	idx := b.pick(len(b.replies))
	if idx < 0 || idx >= len(b.replies) {
		idx = 0
	}
	return NewMessage(SenderBot, b.replies[idx], b.now())
}

// ReplyMsg carries a delayed bot answer back into the update loop. Chat is
// the instance that asked for it.
type ReplyMsg struct {
	Chat    string
	Message Message
}

// ReplyCmd fires once after the typing delay. It cannot be cancelled;
// receivers drop replies addressed to another chat instance.
func (b *Bot) ReplyCmd(chat, userText string) tea.Cmd {
	return tea.Tick(b.delay, func(time.Time) tea.Msg {
		return ReplyMsg{Chat: chat, Message: b.Reply(userText)}
	})
}

// Normalize trims user input; an empty result means nothing to send.
func Normalize(input string) (string, bool) {
	s := strings.TrimSpace(input)
	return s, s != ""
}
