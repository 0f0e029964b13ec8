package engine

// Context2D is the drawing context the engine clears each frame and hands
// to the render callback. Coordinates are logical; the context applies its
// own transform.
type Context2D interface {
	// ClearRect resets the given area to a blank, transparent state.
	ClearRect(x, y, w, h float64)

	// Scale multiplies the current transform by (sx, sy).
	Scale(sx, sy float64)

	// SetFillStyle sets the style used by FillRect and FillText.
	// Accepts CSS-like colors: "#rgb", "#rrggbb", "rgba(r, g, b, a)" or a name.
	SetFillStyle(style string)

	// FillRect paints the given area with the current fill style.
	FillRect(x, y, w, h float64)

	// FillText draws text starting at (x, y).
	FillText(text string, x, y float64)
}

// Surface is a drawable area owned by the engine for its lifetime.
type Surface interface {
	// Context2D returns the surface's drawing context.
	// ok is false when the surface cannot provide one.
	Context2D() (ctx Context2D, ok bool)

	// Resize sets the backing size in device pixels.
	Resize(width, height int)

	// SetDisplaySize sets the logical (on-screen) size.
	SetDisplaySize(width, height int)

	// PixelRatio reports the device pixel ratio.
	PixelRatio() float64

	// Size returns the backing size in device pixels.
	Size() (width, height int)
}
