package screens

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/progress"
	"github.com/jask/fitcoach/internal/widgets"
)

// ProgressDataKey tags the DataLoadedMsg carrying a progress.Snapshot.
const ProgressDataKey = "progress"

// SnapshotLoader fetches the numbers the dashboard shows.
type SnapshotLoader func(ctx context.Context) (progress.Snapshot, error)

type frameMsg struct{ visit int }

// Progress is the dashboard. Each visit reloads the snapshot and replays the
// counter animation from zero.
type Progress struct {
	ctx      context.Context
	load     SnapshotLoader
	fallback progress.Snapshot
	snap     progress.Snapshot
	anim     progress.Animation
	duration time.Duration
	frames   int
	visit    int
	weekly   bool
}

func NewProgress(ctx context.Context, fallback progress.Snapshot, load SnapshotLoader) *Progress {
	if ctx == nil {
		ctx = context.Background()
	}
	p := &Progress{ctx: ctx, load: load, fallback: fallback, snap: fallback}
	p.SetAnimation(progress.DefaultAnimationDuration, progress.DefaultAnimationFrames)
	return p
}

// SetAnimation changes the counter animation used from the next visit on.
func (p *Progress) SetAnimation(d time.Duration, frames int) {
	p.duration, p.frames = d, frames
	p.anim = progress.NewAnimation(d, frames)
}

func (p *Progress) ID() core.ScreenID { return core.ScreenProgress }
func (p *Progress) Title() string { return "Progress" }
func (p *Progress) Scope() string { return core.ScopeProgress }

func (p *Progress) Snapshot() progress.Snapshot { return p.snap }

func (p *Progress) Animation() progress.Animation { return p.anim }

func (p *Progress) WeeklyVisible() bool { return p.weekly }

// ShowWeekly opens the weekly summary for the current visit.
func (p *Progress) ShowWeekly() { p.weekly = true }

func (p *Progress) Enter(*core.Model) tea.Cmd {
	p.visit++
	p.weekly = false
	p.anim = progress.NewAnimation(p.duration, p.frames)
	if p.load == nil {
		p.snap = p.fallback
		return p.tick()
	}
	load, ctx := p.load, p.ctx
	return func() tea.Msg {
		snap, err := load(ctx)
		return core.DataLoadedMsg{Key: ProgressDataKey, Data: snap, Err: err}
	}
}

func (p *Progress) tick() tea.Cmd {
	visit := p.visit
	return tea.Tick(p.anim.Interval(), func(time.Time) tea.Msg { return frameMsg{visit: visit} })
}

func (p *Progress) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.DataLoadedMsg:
		if msg.Key != ProgressDataKey {
			return nil
		}
		p.snap = p.fallback
		if snap, ok := msg.Data.(progress.Snapshot); ok && msg.Err == nil {
			p.snap = snap
		}
		if m.Current() != p.ID() {
			return nil
		}
		return p.tick()
	case frameMsg:
		if msg.visit != p.visit {
			return nil
		}
		if p.anim.Advance() {
			return p.tick()
		}
		return nil
	case tea.KeyMsg:
		if m.Keys().IsAction(msg, "weekly-summary", p.Scope()) {
			p.weekly = !p.weekly
		}
	}
	return nil
}

// Motivation uses the real step count, not the animated one.
func (p *Progress) Motivation() string {
	pct := progress.RoundedPercentage(p.snap.Steps.Current, p.snap.Steps.Target)
	return fmt.Sprintf("You're %d%% closer to your daily step goal. Keep up the fantastic work!", pct)
}

// Achievements are the three badges under the counters.
func (p *Progress) Achievements() []widgets.Card {
	return []widgets.Card{
		{Title: fmt.Sprintf("%d-Day Streak", p.snap.Streak), Content: "Keep going strong!", Highlight: true},
		{Title: "Weekly Goals", Content: fmt.Sprintf("%d/%d completed", p.snap.WeeklyGoals, p.snap.WeeklyGoalTarget)},
		{Title: "Active Today", Content: fmt.Sprintf("%d minutes", p.snap.ActiveMinutes)},
	}
}

var metricColors = []lipgloss.Color{colorSuccess, colorPeach, colorAccent}

func (p *Progress) metricCard(i int, metric progress.Metric, width int) widgets.Widget {
	shown := p.anim.Value(metric.Current)
	value := humanize.Comma(int64(shown)) + " / " + humanize.Comma(int64(metric.Target))
	if metric.Unit != "" {
		value += " " + metric.Unit
	}
	pct := progress.RoundedPercentage(shown, metric.Target)
	color := metricColors[i%len(metricColors)]
	gauge := widgets.Gauge{Ratio: progress.Ratio(shown, metric.Target), Color: color}.Render(max(4, width-6), 1)
	return widgets.Card{
		Title:   metric.Label,
		Content: value + "\n" + gauge + "\n" + mutedStyle.Render(fmt.Sprintf("%d%% complete", pct)),
	}
}

func (p *Progress) View(m *core.Model, width, height int) string {
	metrics := p.snap.Metrics()
	cards := make([]widgets.Widget, 0, len(metrics))
	cardWidth := max(10, width/max(1, len(metrics)))
	for i, metric := range metrics {
		cards = append(cards, p.metricCard(i, metric, cardWidth))
	}
	badges := make([]widgets.Widget, 0, 3)
	for _, a := range p.Achievements() {
		badges = append(badges, a)
	}

	parts := []string{
		headlineStyle.Render("Today's Progress") + "  " + mutedStyle.Render(time.Now().Format("Monday, Jan 2")),
		widgets.HStack{Widgets: cards, Gap: 1}.Render(width, 6),
		labelStyle.Render("Achievements"),
		widgets.HStack{Widgets: badges, Gap: 1}.Render(width, 4),
		accentStyle.Render(p.Motivation()),
	}
	if p.weekly {
		parts = append(parts, p.weeklyChart(width, max(6, height-lipgloss.Height(strings.Join(parts, "\n"))-1)))
	} else {
		parts = append(parts, button("View Weekly Summary", true, false)+"  "+mutedStyle.Render("w"))
	}
	return widgets.Text(strings.Join(parts, "\n")).Render(width, height)
}

func (p *Progress) weeklyChart(width, height int) string {
	points := make([]widgets.ChartPoint, 0, len(p.snap.Week))
	total := 0
	for _, d := range p.snap.Week {
		points = append(points, widgets.ChartPoint{Label: d.Day, Value: float64(d.Steps)})
		total += d.Steps
	}
	title := "Weekly Summary"
	if len(p.snap.Week) > 0 {
		title += fmt.Sprintf("  %s steps, %s/day avg", humanize.Comma(int64(total)), humanize.Comma(int64(total/len(p.snap.Week))))
	}
	return widgets.BarChart{Title: labelStyle.Render(title), Data: points, Color: colorAccent}.Render(width, height)
}
