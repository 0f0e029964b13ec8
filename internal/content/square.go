package content

import (
	"fmt"
	"math"

	"github.com/vovakirdan/become-pm/internal/engine"
)

func init() {
	Register("square", NewSquare)
}

const (
	squareBackground = "#f5f5f5"
	squareBlock      = "#667eea"
	squareText       = "#333"
	squarePoints     = 10
)

// Square is a block swinging around the centre of the surface.
// Each time it crosses the centre the player scores.
type Square struct {
	env     Env
	elapsed float64 // Seconds of swing, scaled by the level speed
	side    float64 // Sign of the offset at the last update
}

// NewSquare creates the square demo.
func NewSquare(env Env) Content {
	return &Square{env: env}
}

// ID implements Content.
func (s *Square) ID() string { return "square" }

// Title implements Content.
func (s *Square) Title() string { return "Swinging Square" }

// Callbacks implements Content.
func (s *Square) Callbacks() engine.Callbacks {
	return engine.Callbacks{Update: s.Update, Render: s.Render}
}

// Update advances the swing and scores centre crossings.
func (s *Square) Update(deltaMillis float64) {
	speed := 1.0
	if s.env.Progression != nil && s.env.Score != nil {
		speed = s.env.Progression.Speed(1, s.env.Score.Level())
	}
	s.elapsed += deltaMillis / 1000 * speed

	side := math.Copysign(1, math.Sin(s.elapsed))
	if s.side != 0 && side != s.side {
		s.score()
	}
	s.side = side
}

func (s *Square) score() {
	if s.env.Score == nil {
		return
	}
	s.env.Score.AddScore(squarePoints)
	if s.env.Progression != nil {
		s.env.Score.SetLevel(s.env.Progression.Level(s.env.Score.Score()))
	}
}

// Offset returns the block's horizontal offset from the centre.
func (s *Square) Offset() float64 {
	w, _ := s.env.LogicalSize()
	return math.Sin(s.elapsed) * w / 4
}

// Render draws the background, the block and the FPS readout.
func (s *Square) Render(ctx engine.Context2D) {
	w, h := s.env.LogicalSize()

	ctx.SetFillStyle(squareBackground)
	ctx.FillRect(0, 0, w, h)

	// Terminal cells are about twice as tall as wide.
	size := math.Max(2, math.Floor(h/4))
	x := w/2 + s.Offset()
	y := h / 2
	ctx.SetFillStyle(squareBlock)
	ctx.FillRect(x-size, y-size/2, size*2, size)

	ctx.SetFillStyle(squareText)
	fps := 0
	if s.env.FPS != nil {
		fps = s.env.FPS()
	}
	ctx.FillText(fmt.Sprintf("FPS: %d", fps), 1, 0)
}
