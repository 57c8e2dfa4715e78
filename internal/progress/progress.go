// Package progress models the daily fitness metrics shown on the dashboard
// and the counter animation that plays when it opens.
package progress

import (
	"math"
	"time"

	"github.com/jask/fitcoach/internal/catalog"
)

// Metric is one tracked quantity against its daily goal.
type Metric struct {
	Label   string
	Unit    string
	Current int
	Target  int
}

// Ratio is Current/Target clamped to [0, 1]. A non-positive target counts
// as an already met goal.
func (m Metric) Ratio() float64 {
	return Ratio(m.Current, m.Target)
}

// Percentage is Ratio scaled to [0, 100].
func (m Metric) Percentage() float64 {
	return Percentage(m.Current, m.Target)
}

// Ratio clamps current/target into [0, 1].
func Ratio(current, target int) float64 {
	if target <= 0 {
		return 1
	}
	if current <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(target), 1)
}

// Percentage never exceeds 100 regardless of how far current overshoots.
func Percentage(current, target int) float64 {
	return Ratio(current, target) * 100
}

// RoundedPercentage is the whole-number form shown next to each counter.
func RoundedPercentage(current, target int) int {
	return int(math.Round(Percentage(current, target)))
}

// DaySteps is one bar of the weekly summary.
type DaySteps struct {
	Day   string
	Steps int
}

// Snapshot is everything the dashboard renders.
type Snapshot struct {
	Steps            Metric
	Calories         Metric
	Water            Metric
	Streak           int
	WeeklyGoals      int
	WeeklyGoalTarget int
	ActiveMinutes    int
	Week             []DaySteps
	RecordedAt       time.Time
}

// Metrics returns the animated counters in display order.
func (s Snapshot) Metrics() []Metric {
	return []Metric{s.Steps, s.Calories, s.Water}
}

// FromSample builds a snapshot from the catalog's sample data.
func FromSample(sample catalog.Sample) Snapshot {
	week := make([]DaySteps, 0, len(sample.Week))
	for _, d := range sample.Week {
		week = append(week, DaySteps{Day: d.Day, Steps: d.Steps})
	}
	target := sample.WeeklyGoalTarget
	if target <= 0 {
		target = 5
	}
	return Snapshot{
		Steps:            Metric{Label: "Steps", Current: sample.Steps.Current, Target: sample.Steps.Target},
		Calories:         Metric{Label: "Calories", Unit: "kcal", Current: sample.Calories.Current, Target: sample.Calories.Target},
		Water:            Metric{Label: "Water", Unit: "glasses", Current: sample.Water.Current, Target: sample.Water.Target},
		Streak:           sample.Streak,
		WeeklyGoals:      sample.WeeklyGoals,
		WeeklyGoalTarget: target,
		ActiveMinutes:    sample.ActiveMinutes,
		Week:             week,
	}
}
