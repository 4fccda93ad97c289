package runner

import (
	"testing"
	"time"

	"github.com/vovakirdan/hoodierun/internal/core"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"colorful", ThemeColorful, false},
		{"", ThemeColorful, false},
		{"bw", ThemeBW, false},
		{"sepia", ThemeColorful, true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseTheme(%q) = %v, %v", tt.in, got, err)
		}
		if err == nil && got.String() != tt.want.String() {
			t.Errorf("String round trip failed for %q", tt.in)
		}
	}
	if ThemeBW.Next() != ThemeColorful || ThemeColorful.Next() != ThemeBW {
		t.Error("Next should alternate")
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestRotateHue(t *testing.T) {
	tests := []struct {
		name    string
		in      core.Color
		degrees float64
		want    core.Color
	}{
		{"red to green", core.RGB(255, 0, 0), 120, core.RGB(0, 255, 0)},
		{"red to blue", core.RGB(255, 0, 0), 240, core.RGB(0, 0, 255)},
		{"negative wraps", core.RGB(0, 255, 0), -120, core.RGB(255, 0, 0)},
		{"gray unchanged", core.RGB(102, 102, 102), 90, core.RGB(102, 102, 102)},
		{"zero", core.ColorPink, 0, core.ColorPink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateHue(tt.in, tt.degrees)
			if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || got.A != tt.in.A {
				t.Errorf("RotateHue(%v, %v) = %v, want %v", tt.in, tt.degrees, got, tt.want)
			}
		})
	}
}

func TestRainbowHue(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{-time.Second, 0},
		{500 * time.Millisecond, 90},
		{time.Second, 180},
		{2 * time.Second, 0},
		{2500 * time.Millisecond, 90},
	}
	for _, tt := range tests {
		if got := RainbowHue(tt.elapsed); got != tt.want {
			t.Errorf("RainbowHue(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}
