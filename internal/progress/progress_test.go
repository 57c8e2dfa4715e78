package progress

import (
	"testing"
	"time"

	"github.com/jask/fitcoach/internal/catalog"
)

func TestPercentageClampsAtHundred(t *testing.T) {
	cases := []struct {
		current, target int
		want            float64
	}{
		{7842, 10000, 78.42},
		{1840, 2200, 1840.0 / 2200.0 * 100},
		{12000, 10000, 100},
		{1 << 40, 1, 100},
		{0, 8, 0},
		{-5, 8, 0},
		{3, 0, 100},
	}
	for _, tc := range cases {
		got := Percentage(tc.current, tc.target)
		if got > 100 {
			t.Fatalf("Percentage(%d, %d) = %v exceeds 100", tc.current, tc.target, got)
		}
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("Percentage(%d, %d) = %v, want %v", tc.current, tc.target, got, tc.want)
		}
	}
}

func TestRoundedPercentage(t *testing.T) {
	if got := RoundedPercentage(7842, 10000); got != 78 {
		t.Fatalf("steps = %d, want 78", got)
	}
	if got := RoundedPercentage(6, 8); got != 75 {
		t.Fatalf("water = %d, want 75", got)
	}
	if got := RoundedPercentage(1840, 2200); got != 84 {
		t.Fatalf("calories = %d, want 84", got)
	}
}

func TestAnimationReachesRealValues(t *testing.T) {
	a := NewAnimation(2*time.Second, 60)
	if a.Interval() != 2*time.Second/60 {
		t.Fatalf("interval = %v", a.Interval())
	}
	if got := a.Value(7842); got != 0 {
		t.Fatalf("first frame = %d, want 0", got)
	}
	prev := 0
	steps := 0
	for a.Advance() {
		steps++
		v := a.Value(7842)
		if v < prev {
			t.Fatalf("counter went backwards at frame %d: %d < %d", a.Frame(), v, prev)
		}
		prev = v
	}
	if steps != 59 {
		t.Fatalf("advance returned true %d times, want 59", steps)
	}
	if !a.Done() {
		t.Fatalf("expected animation done")
	}
	if got := a.Value(7842); got != 7842 {
		t.Fatalf("last frame = %d, want 7842", got)
	}
	if a.Advance() {
		t.Fatalf("advance past the end should report done")
	}
}

func TestAnimationDefaults(t *testing.T) {
	a := NewAnimation(0, 0)
	if a.Duration != DefaultAnimationDuration || a.Frames != DefaultAnimationFrames {
		t.Fatalf("defaults not applied: %+v", a)
	}
	a.Finish()
	if !a.Done() || a.Eased() != 1 {
		t.Fatalf("finish should land on the last frame")
	}
}

func TestFromSample(t *testing.T) {
	s := FromSample(catalog.MustDefault().SampleProgress)
	if s.Steps.Current != 7842 || s.Steps.Target != 10000 {
		t.Fatalf("steps = %+v", s.Steps)
	}
	if s.Calories.Unit != "kcal" || s.Water.Unit != "glasses" {
		t.Fatalf("units = %q, %q", s.Calories.Unit, s.Water.Unit)
	}
	if s.Streak != 12 || s.WeeklyGoals != 4 || s.WeeklyGoalTarget != 5 || s.ActiveMinutes != 45 {
		t.Fatalf("summary = %+v", s)
	}
	if len(s.Metrics()) != 3 || len(s.Week) != 7 {
		t.Fatalf("metrics/week shape wrong")
	}
}
