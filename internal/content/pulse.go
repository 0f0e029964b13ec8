package content

import (
	"fmt"
	"math"

	"github.com/vovakirdan/become-pm/internal/engine"
)

func init() {
	Register("pulse", NewPulse)
}

const (
	pulseHistory = 120
	pulseBar     = "#0dbc79"
	pulseSlow    = "#cd3131"
	pulseText    = "#e5e510"
	// Frames slower than this are drawn as slow.
	pulseBudgetMillis = 1000.0 / 30
)

// Pulse shows frame timing: the last delta and a bar per recent frame.
// It scores one point per second of play.
type Pulse struct {
	env    Env
	deltas []float64 // Ring of recent deltas, newest last
	last   float64
	carry  float64 // Milliseconds not yet turned into points
}

// NewPulse creates the frame-timing demo.
func NewPulse(env Env) Content {
	return &Pulse{env: env}
}

// ID implements Content.
func (p *Pulse) ID() string { return "pulse" }

// Title implements Content.
func (p *Pulse) Title() string { return "Frame Pulse" }

// Callbacks implements Content.
func (p *Pulse) Callbacks() engine.Callbacks {
	return engine.Callbacks{Update: p.Update, Render: p.Render}
}

// Update records the delta and scores whole seconds.
func (p *Pulse) Update(deltaMillis float64) {
	p.last = deltaMillis
	p.deltas = append(p.deltas, deltaMillis)
	if len(p.deltas) > pulseHistory {
		p.deltas = p.deltas[len(p.deltas)-pulseHistory:]
	}

	p.carry += deltaMillis
	for p.carry >= 1000 {
		p.carry -= 1000
		if p.env.Score != nil {
			p.env.Score.AddScore(1)
		}
	}
}

// Deltas returns the recorded frame times, oldest first.
func (p *Pulse) Deltas() []float64 {
	return p.deltas
}

// AverageMillis returns the mean of the recorded frame times.
func (p *Pulse) AverageMillis() float64 {
	if len(p.deltas) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range p.deltas {
		sum += d
	}
	return sum / float64(len(p.deltas))
}

// Render draws one bar per frame, right-aligned, height proportional to
// its delta against twice the frame budget.
func (p *Pulse) Render(ctx engine.Context2D) {
	w, h := p.env.LogicalSize()
	chart := h - 2
	cols := int(math.Min(float64(len(p.deltas)), math.Floor(w)))

	for i := 0; i < cols; i++ {
		d := p.deltas[len(p.deltas)-cols+i]
		bar := math.Max(1, math.Round(math.Min(d/(2*pulseBudgetMillis), 1)*chart))
		if d > pulseBudgetMillis {
			ctx.SetFillStyle(pulseSlow)
		} else {
			ctx.SetFillStyle(pulseBar)
		}
		x := w - float64(cols) + float64(i)
		ctx.FillRect(x, h-bar, 1, bar)
	}

	ctx.SetFillStyle(pulseText)
	ctx.FillText(fmt.Sprintf("delta %.1fms  avg %.1fms", p.last, p.AverageMillis()), 1, 0)
}
