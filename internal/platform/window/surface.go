// Package window provides the desktop host for the runner. Ebitengine owns
// the window and the clock; the game draws into an offscreen image that is
// copied to the screen every frame.
package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/hoodierun/internal/core"
)

// arcSteps is how many line segments approximate a half circle.
const arcSteps = 16

// Surface is a core.Surface backed by an offscreen Ebitengine image. The
// image keeps its pixels between frames, so an overlay drawn once over the
// last frame stays up while the game is paused or over.
type Surface struct {
	img    *ebiten.Image
	face   *text.GoXFace
	width  float64
	height float64
}

// NewSurface creates a width×height pixel surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:    ebiten.NewImage(width, height),
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  float64(width),
		height: float64(height),
	}
}

// Context2D implements core.Display.
func (s *Surface) Context2D() (core.Surface, error) {
	return s, nil
}

// Image returns the backing image.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Width implements core.Surface.
func (s *Surface) Width() float64 { return s.width }

// Height implements core.Surface.
func (s *Surface) Height() float64 { return s.height }

// Clear implements core.Surface.
func (s *Surface) Clear() {
	s.img.Clear()
}

// FillRect implements core.Surface.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), nrgba(c), false)
}

// StrokeLine implements core.Surface.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c core.Color, dash []float64) {
	for _, seg := range dashSegments(x0, y0, x1, y1, dash) {
		vector.StrokeLine(s.img, float32(seg[0]), float32(seg[1]), float32(seg[2]), float32(seg[3]), float32(width), nrgba(c), true)
	}
}

// StrokeArc implements core.Surface.
func (s *Surface) StrokeArc(cx, cy, radius, start, end float64, c core.Color) {
	pts := arcPoints(cx, cy, radius, start, end)
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(s.img, float32(pts[i-1][0]), float32(pts[i-1][1]), float32(pts[i][0]), float32(pts[i][1]), 2, nrgba(c), true)
	}
}

// Text implements core.Surface.
func (s *Surface) Text(x, y float64, str string, size float64, c core.Color, align core.Align) {
	drawText(s.img, s.face, x, y, str, size, nrgba(c), align)
}

// drawText draws str with its baseline at y, scaling the bitmap face to size
// pixels of line height.
func drawText(dst *ebiten.Image, face *text.GoXFace, x, y float64, str string, size float64, clr color.Color, align core.Align) {
	m := face.Metrics()
	scale := size / (m.HAscent + m.HDescent)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-m.HAscent*scale)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = textAlign(align)

	text.Draw(dst, str, face, op)
}

func textAlign(a core.Align) text.Align {
	switch a {
	case core.AlignCenter:
		return text.AlignCenter
	case core.AlignRight:
		return text.AlignEnd
	}
	return text.AlignStart
}

func nrgba(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// dashSegments splits a line into the drawn parts of a dash pattern. An
// empty or zero-length pattern yields the whole line.
func dashSegments(x0, y0, x1, y1 float64, dash []float64) [][4]float64 {
	whole := [][4]float64{{x0, y0, x1, y1}}

	period := 0.0
	for _, d := range dash {
		if d < 0 {
			return whole
		}
		period += d
	}
	length := math.Hypot(x1-x0, y1-y0)
	if period == 0 || length == 0 {
		return whole
	}

	ux, uy := (x1-x0)/length, (y1-y0)/length
	var segs [][4]float64
	pos := 0.0
	for i := 0; pos < length; i++ {
		d := dash[i%len(dash)]
		if i%2 == 0 && d > 0 {
			end := math.Min(pos+d, length)
			segs = append(segs, [4]float64{x0 + ux*pos, y0 + uy*pos, x0 + ux*end, y0 + uy*end})
		}
		pos += d
	}
	return segs
}

// arcPoints returns points along a circular arc, clockwise in screen space.
func arcPoints(cx, cy, radius, start, end float64) [][2]float64 {
	steps := int(math.Ceil(math.Abs(end-start) / math.Pi * arcSteps))
	if steps < 1 {
		steps = 1
	}
	pts := make([][2]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		pts = append(pts, [2]float64{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	return pts
}
