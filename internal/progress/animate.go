package progress

import (
	"math"
	"time"
)

const (
	DefaultAnimationDuration = 2 * time.Second
	DefaultAnimationFrames   = 60
)

// Animation drives the counters from zero to their targets with a cubic
// ease-out. Frame runs 0..Frames inclusive; the last frame lands exactly on
// the real values.
type Animation struct {
	Duration time.Duration
	Frames   int
	frame    int
}

func NewAnimation(duration time.Duration, frames int) Animation {
	if duration <= 0 {
		duration = DefaultAnimationDuration
	}
	if frames <= 0 {
		frames = DefaultAnimationFrames
	}
	return Animation{Duration: duration, Frames: frames}
}

// Interval is the delay between frames.
func (a Animation) Interval() time.Duration {
	return a.Duration / time.Duration(a.Frames)
}

func (a Animation) Frame() int { return a.frame }

func (a Animation) Done() bool { return a.frame >= a.Frames }

// Advance moves one frame forward and reports whether more frames remain.
func (a *Animation) Advance() bool {
	if a.frame < a.Frames {
		a.frame++
	}
	return !a.Done()
}

// Finish jumps to the final frame.
func (a *Animation) Finish() { a.frame = a.Frames }

// Eased is 1-(1-t)^3 for the current frame.
func (a Animation) Eased() float64 {
	return EaseOutCubic(float64(a.frame) / float64(a.Frames))
}

// Value is the floored on-screen counter for a real value.
func (a Animation) Value(current int) int {
	return int(math.Floor(float64(current) * a.Eased()))
}

// EaseOutCubic clamps t into [0, 1] first.
func EaseOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 3)
}
