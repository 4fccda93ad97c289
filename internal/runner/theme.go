package runner

import (
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
)

// Theme selects the palette used for the player and new obstacles.
type Theme int

const (
	ThemeColorful Theme = iota
	ThemeBW
)

// Colors used by the black-and-white theme.
var (
	bwPlayer   = core.ColorBlack
	bwObstacle = core.ColorGray
)

// Fixed colors shared by both themes.
var (
	colorRoad     = core.ColorRoad
	colorLine     = core.ColorWhite
	colorFace     = core.ColorWhite
	colorInk      = core.ColorBlack
	colorText     = core.ColorWhite
	colorBackdrop = core.ColorBlack
)

// RainbowDuration is how long the Konami easter egg lasts.
const RainbowDuration = 5 * time.Second

// rainbowCycle is the time for one full turn of the hue wheel.
const rainbowCycle = 2 * time.Second

// String returns the theme name as stored and accepted on the CLI.
func (t Theme) String() string {
	if t == ThemeBW {
		return "bw"
	}
	return "colorful"
}

// Next returns the other theme.
func (t Theme) Next() Theme {
	if t == ThemeBW {
		return ThemeColorful
	}
	return ThemeBW
}

// ParseTheme converts a theme name into a Theme.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "colorful", "":
		return ThemeColorful, nil
	case "bw":
		return ThemeBW, nil
	default:
		return ThemeColorful, fmt.Errorf("runner: unknown theme %q (want colorful or bw)", name)
	}
}

// applyTheme writes the theme's player and archetype colors into cfg.
// base holds the colorful palette as loaded from configuration.
func applyTheme(cfg *config.RunnerConfig, base config.RunnerConfig, t Theme) {
	archetypes := make([]config.Archetype, len(base.Obstacles.Archetypes))
	copy(archetypes, base.Obstacles.Archetypes)
	cfg.Obstacles.Archetypes = archetypes
	cfg.Player.Color = base.Player.Color

	if t != ThemeBW {
		return
	}
	cfg.Player.Color = bwPlayer
	for i := range cfg.Obstacles.Archetypes {
		cfg.Obstacles.Archetypes[i].Color = bwObstacle
	}
}

// RotateHue shifts a color around the hue wheel by degrees, keeping
// saturation, value and alpha.
func RotateHue(c core.Color, degrees float64) core.Color {
	if degrees == 0 {
		return c
	}
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := cc.Hsv()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return core.Color{R: r, G: g, B: b, A: c.A}
}

// RainbowHue returns the hue rotation for a rainbow effect that has been
// running for elapsed.
func RainbowHue(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return 360 * float64(elapsed%rainbowCycle) / float64(rainbowCycle)
}
