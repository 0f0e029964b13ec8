package core

import (
	"math"

	"github.com/vovakirdan/become-pm/internal/engine"
)

// FillRune is the glyph opaque fills paint with.
const FillRune = '█'

// Canvas is the 2D context of a Screen. Coordinates pass through a scale
// transform before they are snapped to cells.
type Canvas struct {
	screen *Screen
	sx, sy float64
	fill   Color
	alpha  float64
}

// Ensure Canvas implements engine.Context2D.
var _ engine.Context2D = (*Canvas)(nil)

func newCanvas(s *Screen) *Canvas {
	return &Canvas{
		screen: s,
		sx:     1,
		sy:     1,
		fill:   ColorDefault,
		alpha:  1,
	}
}

// Transform returns the current scale factors.
func (c *Canvas) Transform() (sx, sy float64) {
	return c.sx, c.sy
}

// Scale multiplies the current transform.
func (c *Canvas) Scale(sx, sy float64) {
	c.sx *= sx
	c.sy *= sy
}

// SetFillStyle sets the fill color. Invalid styles are ignored, leaving the
// previous one in place.
func (c *Canvas) SetFillStyle(style string) {
	color, alpha, err := ParseStyle(style)
	if err != nil {
		return
	}
	c.fill = color
	c.alpha = alpha
}

// FillStyle returns the current fill color and alpha.
func (c *Canvas) FillStyle() (Color, float64) {
	return c.fill, c.alpha
}

// ClearRect blanks the transformed area.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.screen.ClearRect(c.toCells(x, y, w, h))
}

// FillRect paints the transformed area. Opaque styles replace the cells;
// translucent ones dim what is already there.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if c.alpha <= 0 {
		return
	}
	r := c.toCells(x, y, w, h)
	if c.alpha < 1 {
		c.screen.DimRect(r)
		return
	}
	c.screen.FillRect(r, Cell{Rune: FillRune, Color: c.fill, Bg: c.fill})
}

// FillText writes text with its first rune at the transformed (x, y) over
// whatever background is there. Each rune takes one cell regardless of scale.
func (c *Canvas) FillText(text string, x, y float64) {
	col := int(math.Floor(x * c.sx))
	row := int(math.Floor(y * c.sy))
	c.screen.DrawText(col, row, text, c.fill)
}

func (c *Canvas) toCells(x, y, w, h float64) Rect {
	return RectFromFloat(x*c.sx, y*c.sy, w*c.sx, h*c.sy)
}
