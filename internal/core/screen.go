package core

import (
	"strings"

	"github.com/vovakirdan/become-pm/internal/engine"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color // Foreground
	Bg    Color // Background, default when unset
	Dim   bool  // Drawn under a translucent overlay
}

// blankCell is what cleared cells hold.
var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer used as the engine's drawing surface.
// Its backing size is counted in cells; the display size is the logical
// size the host lays out around it.
type Screen struct {
	width    int
	height   int
	displayW int
	displayH int
	ratio    float64
	cells    [][]Cell
	canvas   *Canvas
}

// Ensure Screen implements engine.Surface.
var _ engine.Surface = (*Screen)(nil)

// NewScreen creates a screen buffer with the given dimensions and pixel
// ratio. A ratio below 1 is treated as 1.
func NewScreen(width, height int, pixelRatio float64) *Screen {
	if pixelRatio < 1 {
		pixelRatio = 1
	}
	s := &Screen{
		width:    max(width, 0),
		height:   max(height, 0),
		displayW: max(width, 0),
		displayH: max(height, 0),
		ratio:    pixelRatio,
	}
	s.allocate()
	s.canvas = newCanvas(s)
	return s
}

// allocate creates blank cell storage for the current size.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		row := make([]Cell, s.width)
		for x := range row {
			row[x] = blankCell
		}
		s.cells[y] = row
	}
}

// Context2D returns the screen's canvas.
func (s *Screen) Context2D() (engine.Context2D, bool) {
	return s.canvas, true
}

// Canvas returns the concrete drawing context.
func (s *Screen) Canvas() *Canvas {
	return s.canvas
}

// Resize sets the backing size. Like a canvas element, resizing discards
// the content.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
}

// SetDisplaySize records the logical size the host should lay out.
func (s *Screen) SetDisplaySize(width, height int) {
	s.displayW = width
	s.displayH = height
}

// DisplaySize returns the logical size.
func (s *Screen) DisplaySize() (int, int) {
	return s.displayW, s.displayH
}

// PixelRatio returns the device pixel ratio.
func (s *Screen) PixelRatio() float64 {
	return s.ratio
}

// Size returns the backing size in cells.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the full screen area.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear resets every cell to blank.
func (s *Screen) Clear() {
	s.ClearRect(s.Bounds())
}

// ClearRect resets the cells inside r to blank.
func (s *Screen) ClearRect(r Rect) {
	s.FillRect(r, blankCell)
}

// FillRect sets every cell inside r, clipped to the screen.
func (s *Screen) FillRect(r Rect, c Cell) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		row := s.cells[y]
		for x := r.X; x < r.Right(); x++ {
			row[x] = c
		}
	}
}

// DimRect marks the cells inside r as covered by an overlay.
func (s *Screen) DimRect(r Rect) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y][x].Dim = true
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position, blank when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes a string horizontally starting at (x, y) in color c.
// The background of the covered cells is kept. Characters beyond the
// screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		bg := s.GetCell(x+i, y).Bg
		s.SetCell(x+i, y, Cell{Rune: r, Color: c, Bg: bg})
		i++
	}
}

// String converts the buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
