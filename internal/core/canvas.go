package core

import (
	"math"
)

// Canvas is a Surface that rasterizes pixel-space drawing calls into a
// Screen of terminal cells. Each cell stands for CellW×CellH surface pixels.
type Canvas struct {
	screen *Screen
	width  float64
	height float64
	cellW  float64
	cellH  float64
}

// NewCanvas creates a canvas for a width×height pixel surface using cells of
// cellW×cellH pixels. The backing screen is sized to cover the whole surface.
func NewCanvas(width, height, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	cols := int(math.Ceil(width / cellW))
	rows := int(math.Ceil(height / cellH))
	return &Canvas{
		screen: NewScreen(cols, rows),
		width:  width,
		height: height,
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Context2D implements Display.
func (c *Canvas) Context2D() (Surface, error) {
	return c, nil
}

// Screen returns the backing cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() float64 { return c.width }

// Height returns the surface height in pixels.
func (c *Canvas) Height() float64 { return c.height }

// CellAt converts a surface pixel to the cell that contains it.
func (c *Canvas) CellAt(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

// PixelAt converts a cell position to the surface pixel at its center.
func (c *Canvas) PixelAt(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

// Clear erases the whole surface.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect paints every cell whose center lies inside r. A rectangle
// thinner than a cell on some axis still claims the cell holding its
// center on that axis, and is drawn as a glyph instead of a background so
// small details stay visible.
func (c *Canvas) FillRect(r Rect, col Color) {
	if r.W <= 0 || r.H <= 0 || col.A == 0 {
		return
	}

	x0, x1, thinX := c.span(r.X, r.Right(), c.cellW)
	y0, y1, thinY := c.span(r.Y, r.Bottom(), c.cellH)

	glyph := ' '
	switch {
	case thinX && thinY:
		glyph = '•'
	case thinX:
		glyph = '│'
	case thinY:
		glyph = '─'
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.screen.update(x, y, func(cell *Cell) {
				switch {
				case !col.Opaque():
					cell.BG = col.Over(orBlack(cell.BG))
					cell.FG = col.Over(orWhite(cell.FG))
				case glyph == ' ':
					*cell = Cell{Rune: ' ', FG: col, BG: col}
				default:
					cell.Rune = glyph
					cell.FG = col
				}
			})
		}
	}
}

// span returns the inclusive cell range whose centers lie in [lo, hi).
// When no center is covered it falls back to the cell holding the midpoint.
func (c *Canvas) span(lo, hi, size float64) (int, int, bool) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size-0.5)) - 1
	if last < first {
		mid := int(math.Floor((lo + hi) / 2 / size))
		return mid, mid, true
	}
	return first, last, false
}

// StrokeLine walks the line in half-cell steps and marks every cell it
// crosses while the dash pattern is "on".
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col Color, dash []float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || col.A == 0 {
		return
	}

	glyph := '·'
	switch {
	case dx == 0:
		glyph = '│'
	case dy == 0:
		glyph = '─'
	}

	step := math.Min(c.cellW, c.cellH) / 2
	for t := step / 2; t < length; t += step {
		if !dashOn(dash, t) {
			continue
		}
		cx, cy := c.CellAt(x0+dx*t/length, y0+dy*t/length)
		c.screen.update(cx, cy, func(cell *Cell) {
			cell.Rune = glyph
			cell.FG = col
		})
	}
}

// dashOn reports whether distance t along a line falls on a drawn dash.
func dashOn(dash []float64, t float64) bool {
	var period float64
	for _, d := range dash {
		period += d
	}
	if period <= 0 {
		return true
	}
	pos := math.Mod(t, period)
	for i, d := range dash {
		if pos < d {
			return i%2 == 0
		}
		pos -= d
	}
	return true
}

// StrokeArc samples the arc and marks the cells it passes through.
func (c *Canvas) StrokeArc(cx, cy, radius, start, end float64, col Color) {
	if radius <= 0 || col.A == 0 {
		return
	}
	const samples = 16
	for i := 0; i <= samples; i++ {
		a := start + (end-start)*float64(i)/samples
		x, y := c.CellAt(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		c.screen.update(x, y, func(cell *Cell) {
			cell.Rune = '‿'
			cell.FG = col
		})
	}
}

// Text draws a string in the row that holds the vertical middle of the
// glyphs. Size is only used to find that middle; cells have a fixed font.
func (c *Canvas) Text(x, y float64, s string, size float64, col Color, align Align) {
	runes := []rune(s)
	col0, row := c.CellAt(x, y-size/2)
	switch align {
	case AlignCenter:
		col0 -= len(runes) / 2
	case AlignRight:
		col0 -= len(runes)
	}
	for i, r := range runes {
		c.screen.update(col0+i, row, func(cell *Cell) {
			cell.Rune = r
			cell.FG = col
		})
	}
}

func orBlack(c Color) Color {
	if c.A == 0 {
		return ColorBlack
	}
	return c
}

func orWhite(c Color) Color {
	if c.A == 0 {
		return ColorWhite
	}
	return c
}
