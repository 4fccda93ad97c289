package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA color used by every surface.
// Terminal hosts degrade it to the closest ANSI color, pixel hosts use it as is.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorTransparent = Color{}
	ColorBlack       = RGB(0x00, 0x00, 0x00)
	ColorWhite       = RGB(0xff, 0xff, 0xff)
	ColorRoad        = MustHex("#374151")
	ColorPink        = MustHex("#ec4899")
	ColorRed         = MustHex("#ef4444")
	ColorPurple      = MustHex("#8b5cf6")
	ColorOrange      = MustHex("#f59e0b")
	ColorGray        = MustHex("#666666")
	ColorGreen       = MustHex("#00ff00")
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// WithAlpha returns the color with its alpha replaced by a (0.0 to 1.0).
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(ClampF(a, 0, 1)*255 + 0.5)
	return c
}

// Opaque reports whether the color fully covers what is underneath.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// Over composites c on top of dst and returns an opaque result.
func (c Color) Over(dst Color) Color {
	a := float64(c.A) / 255
	mix := func(src, d uint8) uint8 {
		return uint8(float64(src)*a + float64(d)*(1-a) + 0.5)
	}
	return RGB(mix(c.R, dst.R), mix(c.G, dst.G), mix(c.B, dst.B))
}

// Hex formats the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return fmt.Sprintf("%s@%d", c.Hex(), c.A)
}

// ParseHex parses #rgb or #rrggbb notation.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustHex is like ParseHex but panics on malformed input.
// Only meant for package-level color tables.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalText lets colors be written as hex strings in YAML configs.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}
