package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/hoodierun/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetCell(0, 0, core.Cell{Rune: 'a', FG: core.ColorRed, BG: core.ColorBlack})
	s.SetCell(1, 0, core.Cell{Rune: 'b', FG: core.ColorRed, BG: core.ColorBlack})
	s.SetCell(2, 0, core.Cell{Rune: 'c', FG: core.ColorWhite})
	s.DrawText(0, 1, "xyz")

	for _, hue := range []float64{0, 90} {
		out := RenderScreen(s, hue)
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("hue %v: lines = %d, want 2", hue, len(lines))
		}
		if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "c") {
			t.Errorf("hue %v: row 0 = %q", hue, lines[0])
		}
		if !strings.Contains(lines[1], "xyz") {
			t.Errorf("hue %v: row 1 = %q", hue, lines[1])
		}
	}
}

func TestRenderScreenOverlay(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 1, "----------")

	out := RenderScreen(s, 0, Overlay{Col: 4, Row: 1, Text: "+1", FG: core.ColorGreen})
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], "+1") {
		t.Errorf("overlay missing: %q", lines[1])
	}
	if s.Get(4, 1) != '-' {
		t.Error("overlay must not modify the screen")
	}
}
