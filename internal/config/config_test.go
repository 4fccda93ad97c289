package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/hoodierun/internal/core"
)

// isolate points HOME and the working directory at an empty temp dir so the
// search path only finds what the test writes.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML(), RunnerConfig{})
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Surface.Width != 300 || cfg.Speed.Base != 5 || cfg.Speed.Increment != 0.5 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Popup.Duration != 600*time.Millisecond {
		t.Errorf("popup duration = %v, expected 600ms", cfg.Popup.Duration)
	}
	if len(cfg.Obstacles.Archetypes) != 3 || cfg.Obstacles.Archetypes[1].Color != core.ColorPurple {
		t.Errorf("unexpected archetypes: %+v", cfg.Obstacles.Archetypes)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "fast.yaml")
	data := "speed:\n  base: 8\nobstacles:\n  archetypes:\n    - name: blob\n      color: \"#00ff00\"\n      width: 30\n      height: 30\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.Base != 8 {
		t.Errorf("base speed = %v, expected 8", cfg.Speed.Base)
	}
	if cfg.Speed.Increment != 0.5 {
		t.Errorf("unset keys should keep defaults, increment = %v", cfg.Speed.Increment)
	}
	if len(cfg.Obstacles.Archetypes) != 1 || cfg.Obstacles.Archetypes[0].Color != core.ColorGreen {
		t.Errorf("archetypes should be replaced, got %+v", cfg.Obstacles.Archetypes)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("speed: [1, 2"), 0o600)
	if _, err := Load(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("player:\n  width: 500\n"), 0o600)
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "does not fit") {
		t.Errorf("oversized player should fail validation, got %v", err)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := isolate(t)
	os.MkdirAll(filepath.Join(dir, "configs"), 0o755)
	os.WriteFile(filepath.Join(dir, "configs", "runner.yaml"), []byte("speed:\n  base: 7\n"), 0o600)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.Base != 7 {
		t.Errorf("local config should be picked up, base = %v", cfg.Speed.Base)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero surface", func(c *RunnerConfig) { c.Surface.Width = 0 }},
		{"wide archetype", func(c *RunnerConfig) { c.Obstacles.Archetypes[0].Width = 101 }},
		{"no archetypes", func(c *RunnerConfig) { c.Obstacles.Archetypes = nil }},
		{"spawn chance", func(c *RunnerConfig) { c.Obstacles.SpawnChance = 1.5 }},
		{"zero speed", func(c *RunnerConfig) { c.Speed.Base = 0 }},
		{"zero every", func(c *RunnerConfig) { c.Speed.Every = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		base      float64
		increment float64
	}{
		{DifficultyEasy, 4, 0.5},
		{DifficultyNormal, 5, 0.5},
		{DifficultyHard, 6, 0.5},
		{DifficultyFixed, 5, 0},
	}
	for _, tc := range tests {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, tc.preset)
		if diff := cfg.Speed.Base - tc.base; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: base = %v, expected %v", tc.preset, cfg.Speed.Base, tc.base)
		}
		if cfg.Speed.Increment != tc.increment {
			t.Errorf("%s: increment = %v, expected %v", tc.preset, cfg.Speed.Increment, tc.increment)
		}
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(out), "#ec4899") || !strings.Contains(string(out), "600ms") {
		t.Errorf("marshaled config should use hex colors and durations:\n%s", out)
	}
}
