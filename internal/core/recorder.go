package core

import "fmt"

// Op names a recorded drawing primitive.
type Op string

const (
	OpClear Op = "clear"
	OpFill  Op = "fill"
	OpLine  Op = "line"
	OpArc   Op = "arc"
	OpText  Op = "text"
)

// DrawCall is one primitive recorded by a Recorder.
type DrawCall struct {
	Op    Op
	Rect  Rect // fill bounds, line endpoints (X,Y)-(W,H), arc center (X,Y) and radius (W)
	Color Color
	Text  string
	Align Align
	Dash  []float64
}

// Recorder is a Surface that keeps every call instead of rasterizing.
// Useful for headless runs and for asserting on rendered frames.
type Recorder struct {
	width  float64
	height float64
	calls  []DrawCall
}

// NewRecorder creates a recording surface of the given pixel size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

// Context2D implements Display.
func (r *Recorder) Context2D() (Surface, error) {
	return r, nil
}

func (r *Recorder) Width() float64  { return r.width }
func (r *Recorder) Height() float64 { return r.height }

// Clear records a clear and drops everything drawn before it.
func (r *Recorder) Clear() {
	r.calls = append(r.calls[:0], DrawCall{Op: OpClear})
}

func (r *Recorder) FillRect(rect Rect, c Color) {
	r.calls = append(r.calls, DrawCall{Op: OpFill, Rect: rect, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c Color, dash []float64) {
	r.calls = append(r.calls, DrawCall{
		Op:    OpLine,
		Rect:  Rect{X: x0, Y: y0, W: x1, H: y1},
		Color: c,
		Dash:  append([]float64(nil), dash...),
	})
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, end float64, c Color) {
	r.calls = append(r.calls, DrawCall{Op: OpArc, Rect: Rect{X: cx, Y: cy, W: radius}, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, size float64, c Color, align Align) {
	r.calls = append(r.calls, DrawCall{Op: OpText, Rect: Rect{X: x, Y: y}, Color: c, Text: s, Align: align})
}

// Calls returns the calls recorded since the last Clear.
func (r *Recorder) Calls() []DrawCall {
	return r.calls
}

// Texts returns the strings drawn since the last Clear, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many calls of the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (c DrawCall) String() string {
	return fmt.Sprintf("%s %v %s %q", c.Op, c.Rect, c.Color, c.Text)
}
