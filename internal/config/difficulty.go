package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. An empty string means
// "use the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; the others scale the starting speed and
// the spawn rate, and fixed turns the speed increment off.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base *= 0.8
		cfg.Obstacles.SpawnChance *= 0.75
	case DifficultyHard:
		cfg.Speed.Base *= 1.2
		cfg.Obstacles.SpawnChance *= 1.5
	}
	if IsFixedPreset(preset) {
		cfg.Speed.Increment = 0
	}
	if cfg.Obstacles.SpawnChance > 1 {
		cfg.Obstacles.SpawnChance = 1
	}
}
