package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/runner"
)

// Overlay is text drawn on top of the screen without touching it, such as
// a score popup.
type Overlay struct {
	Col, Row int
	Text     string
	FG       core.Color
}

// cellColors is the style key for a run of cells.
type cellColors struct {
	fg, bg core.Color
}

func (c cellColors) style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.fg.A > 0 {
		style = style.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if c.bg.A > 0 {
		style = style.Background(lipgloss.Color(c.bg.Hex()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// hue rotates every color around the color wheel (0 leaves them alone).
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, hue float64, overlays ...Overlay) string {
	top := make(map[[2]int]core.Cell)
	for _, o := range overlays {
		for i, r := range []rune(o.Text) {
			x := o.Col + i
			under := s.GetCell(x, o.Row)
			top[[2]int{x, o.Row}] = core.Cell{Rune: r, FG: o.FG, BG: under.BG}
		}
	}
	cellAt := func(x, y int) core.Cell {
		if c, ok := top[[2]int{x, y}]; ok {
			return c
		}
		return s.GetCell(x, y)
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellColors]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := cellAt(x, y)
			colors := cellColors{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = cellAt(x, y)
				if cell.FG != colors.fg || cell.BG != colors.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if hue != 0 {
				colors.fg = runner.RotateHue(colors.fg, hue)
				colors.bg = runner.RotateHue(colors.bg, hue)
			}
			style, ok := styles[colors]
			if !ok {
				style = colors.style()
				styles[colors] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
