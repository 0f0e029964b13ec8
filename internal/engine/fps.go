package engine

import (
	"math"
	"time"
)

// fpsWindow is the span each FPS sample averages over.
const fpsWindow = time.Second

// FPSMeter averages frame counts over completed one-second windows.
// Between window boundaries the last sample is kept, so single slow or
// fast frames do not show up as jitter.
type FPSMeter struct {
	frames      int
	windowStart time.Time
	fps         int
}

// Reset starts a new window at now and zeroes the frame count.
// The last computed value is kept.
func (m *FPSMeter) Reset(now time.Time) {
	m.frames = 0
	m.windowStart = now
}

// Tick records one frame at now and closes the window if a second has
// elapsed. Returns true when a new sample was produced.
func (m *FPSMeter) Tick(now time.Time) bool {
	m.frames++
	elapsed := now.Sub(m.windowStart)
	if elapsed < fpsWindow {
		return false
	}

	m.fps = int(math.Round(float64(m.frames) * 1000 / millisBetween(m.windowStart, now)))
	m.frames = 0
	m.windowStart = now
	return true
}

// FPS returns the average of the last completed window, 0 before the first.
func (m *FPSMeter) FPS() int {
	return m.fps
}
