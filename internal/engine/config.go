package engine

import "fmt"

// Config fixes the surface size for the engine's lifetime.
// TargetFPS is advisory: the engine runs once per refresh signal and never
// throttles to it.
type Config struct {
	Width     int // Logical width
	Height    int // Logical height
	TargetFPS int // Expected refresh rate
}

// DefaultConfig returns an 800x600 surface refreshed at 60 FPS.
func DefaultConfig() Config {
	return Config{
		Width:     800,
		Height:    600,
		TargetFPS: 60,
	}
}

// Validate reports whether every field is positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("engine: invalid size %dx%d", c.Width, c.Height)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("engine: invalid target fps %d", c.TargetFPS)
	}
	return nil
}

// Callbacks is the pair of functions game logic plugs into the loop.
// Update receives the milliseconds elapsed since the previous frame.
// Render must not keep ctx after it returns.
type Callbacks struct {
	Update func(deltaMillis float64)
	Render func(ctx Context2D)
}
