// Package engine provides the frame scheduler that drives game content:
// it owns the drawing surface, the start/stop lifecycle, per-frame delta
// time and FPS measurement, and calls the update and render callbacks once
// per refresh while running.
//
// The engine is single-threaded by contract. Start, Stop and every frame
// must be called from the same goroutine; no locking is done.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ErrSurfaceUnavailable is returned by New when the surface cannot provide
// a 2D drawing context.
var ErrSurfaceUnavailable = errors.New("engine: surface unavailable")

// RunState is the engine's lifecycle state.
type RunState int

const (
	Stopped RunState = iota
	Running
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the time source.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithScheduler replaces the frame scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine schedules the update/render cycle.
type Engine struct {
	surface   Surface
	ctx       Context2D
	config    Config
	callbacks Callbacks

	clock     Clock
	scheduler Scheduler
	logger    *log.Logger

	state     RunState
	pending   FrameID
	lastFrame time.Time
	fps       FPSMeter
}

// New creates an engine that owns surface. The surface is resized to the
// configured size and, on high-density displays, its context is scaled
// once so drawing stays in logical coordinates.
//
// The default scheduler is a FrameQueue the caller cannot reach; hosts
// pass their own with WithScheduler.
func New(surface Surface, cfg Config, callbacks Callbacks, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, ErrSurfaceUnavailable
	}
	ctx, ok := surface.Context2D()
	if !ok || ctx == nil {
		return nil, fmt.Errorf("%w: no 2d context", ErrSurfaceUnavailable)
	}

	e := &Engine{
		surface:   surface,
		ctx:       ctx,
		config:    cfg,
		callbacks: callbacks,
		clock:     SystemClock,
		scheduler: NewFrameQueue(),
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.setSurfaceSize(cfg.Width, cfg.Height)
	return e, nil
}

// setSurfaceSize applies the backing and display size and the pixel ratio
// transform.
func (e *Engine) setSurfaceSize(width, height int) {
	e.surface.Resize(width, height)
	e.surface.SetDisplaySize(width, height)

	if dpr := e.surface.PixelRatio(); dpr > 1 {
		e.ctx.Scale(dpr, dpr)
	}
}

// Start begins the loop. It is a no-op while already running.
func (e *Engine) Start() {
	if e.state == Running {
		return
	}

	e.state = Running
	now := e.clock.Now()
	e.lastFrame = now
	e.fps.Reset(now)
	e.pending = e.scheduler.RequestFrame(e.frame)

	e.logger.Debug("engine started", "width", e.config.Width, "height", e.config.Height, "target_fps", e.config.TargetFPS)
}

// Stop halts the loop and cancels the pending frame. Once Stop returns no
// callback runs until the next Start.
func (e *Engine) Stop() {
	if e.state == Stopped {
		return
	}

	e.state = Stopped
	if e.pending != 0 {
		e.scheduler.CancelFrame(e.pending)
		e.pending = 0
	}

	e.logger.Debug("engine stopped", "fps", e.fps.FPS())
}

// frame runs one update/render iteration.
func (e *Engine) frame(now time.Time) {
	// A frame delivered after Stop must not run.
	if e.state != Running {
		return
	}
	e.pending = 0

	delta := millisBetween(e.lastFrame, now)
	e.lastFrame = now

	if e.fps.Tick(now) {
		e.logger.Debug("fps sample", "fps", e.fps.FPS())
	}

	width, height := e.surface.Size()
	e.ctx.ClearRect(0, 0, float64(width), float64(height))

	// Callback panics are not recovered; they leave the engine stopped so
	// the host can Start it again after handling them.
	completed := false
	defer func() {
		if !completed {
			e.state = Stopped
			if e.pending != 0 {
				e.scheduler.CancelFrame(e.pending)
				e.pending = 0
			}
		}
	}()

	if e.callbacks.Update != nil {
		e.callbacks.Update(delta)
	}
	if e.callbacks.Render != nil {
		e.callbacks.Render(e.ctx)
	}

	// Callbacks may have stopped (or stopped and restarted) the engine.
	if e.state == Running && e.pending == 0 {
		e.pending = e.scheduler.RequestFrame(e.frame)
	}
	completed = true
}

// FPS returns the average frame rate of the last completed second.
func (e *Engine) FPS() int {
	return e.fps.FPS()
}

// State returns the current lifecycle state.
func (e *Engine) State() RunState {
	return e.state
}

// Running reports whether the loop is active.
func (e *Engine) Running() bool {
	return e.state == Running
}

// Config returns the construction config.
func (e *Engine) Config() Config {
	return e.config
}

// Context returns the drawing context.
func (e *Engine) Context() Context2D {
	return e.ctx
}

// Surface returns the owned surface.
func (e *Engine) Surface() Surface {
	return e.surface
}
