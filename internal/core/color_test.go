package core

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#ec4899", RGB(0xec, 0x48, 0x99), false},
		{"ffffff", ColorWhite, false},
		{"#000", ColorBlack, false},
		{"#12345", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestColorOver(t *testing.T) {
	overlay := ColorBlack.WithAlpha(0.8)
	if overlay.A != 204 {
		t.Errorf("WithAlpha(0.8).A = %d, expected 204", overlay.A)
	}

	got := overlay.Over(ColorWhite)
	if !got.Opaque() {
		t.Error("Over should produce an opaque color")
	}
	if got.R != 51 {
		t.Errorf("80%% black over white R = %d, expected 51", got.R)
	}

	if ColorPink.Over(ColorWhite) != ColorPink {
		t.Error("opaque color over anything should be itself")
	}
}

func TestColorText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#8b5cf6")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if c != ColorPurple {
		t.Errorf("UnmarshalText = %v, expected purple", c)
	}
	text, _ := c.MarshalText()
	if string(text) != "#8b5cf6" {
		t.Errorf("MarshalText = %s", text)
	}
}
