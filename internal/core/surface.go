package core

// Align controls horizontal text placement relative to the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a 2D raster drawing target with fixed pixel dimensions.
// Coordinates are in surface pixels with the origin at the top-left corner.
type Surface interface {
	// Width and Height return the fixed surface size in pixels.
	Width() float64
	Height() float64

	// Clear erases the whole surface.
	Clear()

	// FillRect fills a rectangle. Colors with alpha below 255 are blended
	// over what is already on the surface.
	FillRect(r Rect, c Color)

	// StrokeLine draws a straight line. A non-empty dash slice alternates
	// drawn and skipped lengths, like a canvas line dash.
	StrokeLine(x0, y0, x1, y1, width float64, c Color, dash []float64)

	// StrokeArc draws the outline of a circular arc from start to end
	// radians, clockwise in screen space.
	StrokeArc(cx, cy, radius, start, end float64, c Color)

	// Text draws a single line of text with its baseline at y.
	Text(x, y float64, s string, size float64, c Color, align Align)
}

// Display is a host drawing target that hands out a Surface, the way a
// canvas element hands out its 2D context.
type Display interface {
	Context2D() (Surface, error)
}
