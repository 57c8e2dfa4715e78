package screens

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/progress"
)

func TestProgressAnimatesFromZero(t *testing.T) {
	h := newHarness(t, nil)
	if cmd := h.press(keyF3); cmd == nil {
		t.Fatalf("opening progress should start the animation")
	}
	if h.m.Current() != core.ScreenProgress {
		t.Fatalf("current = %q", h.m.Current())
	}
	if got := h.progress.Animation().Value(7842); got != 0 {
		t.Fatalf("first frame shows %d, want 0", got)
	}

	h.send(frameMsg{visit: h.progress.visit})
	if h.progress.Animation().Frame() != 1 {
		t.Fatalf("frame = %d, want 1", h.progress.Animation().Frame())
	}
	h.send(frameMsg{visit: h.progress.visit - 1})
	if h.progress.Animation().Frame() != 1 {
		t.Fatalf("a frame from an earlier visit should be ignored")
	}
}

func TestProgressReplaysOnEveryVisit(t *testing.T) {
	h := newHarness(t, nil)
	h.press(keyF3)
	h.progress.anim.Finish()
	h.press(keyF4, keyF3)
	if h.progress.Animation().Done() || h.progress.Animation().Frame() != 0 {
		t.Fatalf("animation should restart on re-entry")
	}
}

func TestProgressFinalValues(t *testing.T) {
	h := newHarness(t, nil)
	h.press(keyF3)
	h.progress.anim.Finish()

	view := h.progress.View(&h.m, 120, 40)
	for _, want := range []string{
		"7,842 / 10,000",
		"1,840 / 2,200 kcal",
		"6 / 8 glasses",
		"78% complete",
		"12-Day Streak",
		"4/5 completed",
		"45 minutes",
		"You're 78% closer to your daily step goal.",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressAchievements(t *testing.T) {
	h := newHarness(t, nil)
	var got []string
	for _, c := range h.progress.Achievements() {
		got = append(got, c.Title+": "+c.Content)
	}
	want := []string{
		"12-Day Streak: Keep going strong!",
		"Weekly Goals: 4/5 completed",
		"Active Today: 45 minutes",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("achievements (-want +got):\n%s", diff)
	}
}

func TestProgressMotivationNeverExceedsHundred(t *testing.T) {
	snap := progress.Snapshot{Steps: progress.Metric{Label: "Steps", Current: 25000, Target: 10000}}
	h := newHarness(t, func(context.Context) (progress.Snapshot, error) { return snap, nil })
	h.drain(h.press(keyF3))
	if !strings.Contains(h.progress.Motivation(), "100%") {
		t.Fatalf("motivation = %q", h.progress.Motivation())
	}
}

func TestProgressUsesLoadedSnapshot(t *testing.T) {
	loaded := progress.Snapshot{
		Steps:  progress.Metric{Label: "Steps", Current: 5000, Target: 10000},
		Streak: 3,
	}
	h := newHarness(t, func(context.Context) (progress.Snapshot, error) { return loaded, nil })
	h.drain(h.press(keyF3))
	if diff := cmp.Diff(loaded, h.progress.Snapshot()); diff != "" {
		t.Fatalf("snapshot (-want +got):\n%s", diff)
	}
	if _, isErr := h.m.Status(); isErr {
		t.Fatalf("successful load should not set an error")
	}
}

func TestProgressLoadErrorFallsBack(t *testing.T) {
	h := newHarness(t, func(context.Context) (progress.Snapshot, error) {
		return progress.Snapshot{}, errors.New("db locked")
	})
	h.drain(h.press(keyF3))
	if h.progress.Snapshot().Steps.Current != 7842 {
		t.Fatalf("fallback not used: %+v", h.progress.Snapshot().Steps)
	}
	text, isErr := h.m.Status()
	if !isErr || !strings.Contains(text, "db locked") {
		t.Fatalf("status = %q (err=%v)", text, isErr)
	}
}

func TestProgressWeeklySummaryToggle(t *testing.T) {
	h := newHarness(t, nil)
	h.press(keyF3)
	h.progress.anim.Finish()
	if h.progress.WeeklyVisible() {
		t.Fatalf("weekly summary starts hidden")
	}
	h.press(runes("w"))
	if !h.progress.WeeklyVisible() {
		t.Fatalf("w should open the weekly summary")
	}
	view := h.progress.View(&h.m, 120, 50)
	if !strings.Contains(view, "Weekly Summary") || !strings.Contains(view, "59,940 steps") {
		t.Fatalf("weekly chart missing:\n%s", view)
	}
	h.press(runes("w"))
	if h.progress.WeeklyVisible() {
		t.Fatalf("w should close the weekly summary")
	}
}

func TestProgressHomeKey(t *testing.T) {
	h := newHarness(t, nil)
	h.createConversation("Leg Day")
	h.press(keyF3, runes("h"))
	if h.m.Current() != core.ScreenWelcome {
		t.Fatalf("h should go home, got %q", h.m.Current())
	}
	if _, ok := h.m.Conversation(); ok {
		t.Fatalf("going home clears the conversation")
	}
}
