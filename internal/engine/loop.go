package engine

import (
	"context"
	"time"
)

// DefaultRefreshRate is the refresh signal rate used when none is given.
const DefaultRefreshRate = 60

// RefreshInterval returns the time between refresh signals at rate per
// second, never less than a nanosecond. A non-positive rate falls back to
// DefaultRefreshRate.
func RefreshInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultRefreshRate
	}
	return max(time.Second/time.Duration(rate), time.Nanosecond)
}

// Loop drives a FrameQueue from an explicit ticker loop, standing in for a
// display refresh callback in headless hosts. Start and Stop must be called
// from the goroutine running Run (typically from inside a callback) or
// before Run begins.
type Loop struct {
	queue    *FrameQueue
	clock    Clock
	interval time.Duration
}

// NewLoop creates a loop that fires queue at refreshRate signals per second.
// A non-positive rate falls back to DefaultRefreshRate.
func NewLoop(queue *FrameQueue, clock Clock, refreshRate int) *Loop {
	if clock == nil {
		clock = SystemClock
	}
	return &Loop{
		queue:    queue,
		clock:    clock,
		interval: RefreshInterval(refreshRate),
	}
}

// Interval returns the time between refresh signals.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run fires one pending frame per refresh until nothing is pending or ctx
// is done. A slow frame delays the next signal; missed signals are not
// replayed.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for l.queue.Pending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.queue.Fire(l.clock.Now())
		}
	}
	return nil
}
