package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/coach"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/progress"
)

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordCall
	err   error
}

type recordCall struct {
	chat string
	conv core.Conversation
	msg  coach.Message
}

func (r *fakeRecorder) Record(_ context.Context, chatID string, conv core.Conversation, msg coach.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordCall{chat: chatID, conv: conv, msg: msg})
	return r.err
}

func (r *fakeRecorder) recorded() []recordCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordCall(nil), r.calls...)
}

type harness struct {
	t        *testing.T
	m        core.Model
	cat      *catalog.Catalog
	setup    *Setup
	chat     *Chat
	progress *Progress
	premium  *Premium
	rec      *fakeRecorder
}

func newHarness(t *testing.T, load SnapshotLoader) *harness {
	t.Helper()
	cat := catalog.MustDefault()
	rec := &fakeRecorder{}
	h := &harness{
		t:     t,
		cat:   cat,
		setup: NewSetup(cat),
		chat: NewChat(cat,
			WithRecorder(rec),
			WithMarkdownStyle("notty"),
			WithBotOptions(coach.WithDelay(time.Millisecond), coach.WithPicker(func(int) int { return 2 })),
		),
		progress: NewProgress(context.Background(), progress.FromSample(cat.SampleProgress), load),
		premium:  NewPremium(cat),
		rec:      rec,
	}
	h.m = core.NewModel(
		[]core.Page{NewWelcome(cat), h.setup, h.chat, h.progress, h.premium},
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		core.WithLogger(zaptest.NewLogger(t)),
	)
	return h
}

// send feeds one message through the model and returns the resulting command.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(core.Model)
	return cmd
}

func (h *harness) press(keys ...tea.KeyMsg) tea.Cmd {
	h.t.Helper()
	var cmds []tea.Cmd
	for _, k := range keys {
		cmds = append(cmds, h.send(k))
	}
	return tea.Batch(cmds...)
}

// drain runs cmd and every command it batches, feeding the resulting
// messages back into the model. Timers fire for real, so callers keep delays
// tiny.
func (h *harness) drain(cmd tea.Cmd) {
	h.t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 200; steps++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		switch msg := msg.(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case frameMsg, spinner.TickMsg:
			// animation and spinner frames reschedule forever; skip them
		default:
			if strings.HasPrefix(fmt.Sprintf("%T", msg), "cursor.") {
				continue
			}
			if next := h.send(msg); next != nil {
				queue = append(queue, next)
			}
		}
	}
}

// createConversation walks welcome -> setup -> chat and returns the chat
// page's enter command.
func (h *harness) createConversation(name string) tea.Cmd {
	h.t.Helper()
	h.press(keyEnter)
	h.press(runes(name), keyEnter, keyRight)
	cmd := h.send(keyEnter)
	if h.m.Current() != core.ScreenChat {
		h.t.Fatalf("expected chat, got %q", h.m.Current())
	}
	return cmd
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyF3       = tea.KeyMsg{Type: tea.KeyF3}
	keyF4       = tea.KeyMsg{Type: tea.KeyF4}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true} }
