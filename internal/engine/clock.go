package engine

import "time"

// Clock is the engine's monotonic time source.
// Tests inject a fake one to drive deterministic tick sequences.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, which carries a monotonic reading.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// millisBetween returns b-a in fractional milliseconds.
func millisBetween(a, b time.Time) float64 {
	return float64(b.Sub(a)) / float64(time.Millisecond)
}
