package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/hoodierun/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded YAML
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: SurfaceConfig{
			Width:  300,
			Height: 500,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       60,
			BottomOffset: 100,
			Color:        core.ColorPink,
		},
		Obstacles: ObstacleConfig{
			SpawnChance: 0.02,
			Archetypes: []Archetype{
				{Name: "red", Color: core.ColorRed, Width: 50, Height: 50},
				{Name: "purple", Color: core.ColorPurple, Width: 60, Height: 40},
				{Name: "orange", Color: core.ColorOrange, Width: 45, Height: 55},
			},
		},
		Speed: SpeedConfig{
			Base:      5,
			Increment: 0.5,
			Every:     10,
		},
		Road: RoadConfig{
			Markings:      20,
			Spacing:       50,
			MarkingWidth:  4,
			MarkingHeight: 20,
		},
		Input: InputConfig{
			SwipeThreshold: 50,
		},
		Popup: PopupConfig{
			Duration: 600 * time.Millisecond,
			Rise:     50,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
