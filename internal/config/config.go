// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/hoodierun/internal/core"
)

// LaneCount is fixed: the road always has three lanes.
const LaneCount = 3

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Surface   SurfaceConfig  `yaml:"surface"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Speed     SpeedConfig    `yaml:"speed"`
	Road      RoadConfig     `yaml:"road"`
	Input     InputConfig    `yaml:"input"`
	Popup     PopupConfig    `yaml:"popup"`
	Terminal  TerminalConfig `yaml:"terminal"`
}

// SurfaceConfig defines the fixed pixel size of the drawing surface.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	BottomOffset float64    `yaml:"bottom_offset"` // distance from the surface bottom to the player's top edge
	Color        core.Color `yaml:"color"`
}

// ObstacleConfig defines spawning and the obstacle archetypes.
type ObstacleConfig struct {
	SpawnChance float64     `yaml:"spawn_chance"` // probability per frame
	Archetypes  []Archetype `yaml:"archetypes"`
}

// Archetype is one obstacle template chosen at random on spawn.
type Archetype struct {
	Name   string     `yaml:"name"`
	Color  core.Color `yaml:"color"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

// SpeedConfig defines the linear speed progression.
type SpeedConfig struct {
	Base      float64 `yaml:"base"`      // pixels per frame at session start
	Increment float64 `yaml:"increment"` // added every Every points
	Every     int     `yaml:"every"`
}

// RoadConfig defines the recycled road markings.
type RoadConfig struct {
	Markings      int     `yaml:"markings"`
	Spacing       float64 `yaml:"spacing"`
	MarkingWidth  float64 `yaml:"marking_width"`
	MarkingHeight float64 `yaml:"marking_height"`
}

// InputConfig defines touch handling.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"` // device pixels
}

// PopupConfig defines the transient "+1" popup.
type PopupConfig struct {
	Duration time.Duration `yaml:"duration"`
	Rise     float64       `yaml:"rise"` // pixels travelled upwards while fading
}

// TerminalConfig defines how many surface pixels one terminal cell covers.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// LaneWidth returns the width of one of the three equal lanes.
func (c RunnerConfig) LaneWidth() float64 {
	return c.Surface.Width / LaneCount
}

// Validate checks that the configuration describes a playable game.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface must have a positive size, got %vx%v", c.Surface.Width, c.Surface.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player must have a positive size"))
	}
	if c.Player.Width > c.LaneWidth() {
		errs = append(errs, fmt.Errorf("player width %v does not fit a %v lane", c.Player.Width, c.LaneWidth()))
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("spawn_chance %v outside [0, 1]", c.Obstacles.SpawnChance))
	}
	if len(c.Obstacles.Archetypes) == 0 {
		errs = append(errs, errors.New("at least one obstacle archetype is required"))
	}
	for _, a := range c.Obstacles.Archetypes {
		if a.Width <= 0 || a.Height <= 0 {
			errs = append(errs, fmt.Errorf("archetype %q must have a positive size", a.Name))
		}
		if a.Width > c.LaneWidth() {
			errs = append(errs, fmt.Errorf("archetype %q width %v does not fit a %v lane", a.Name, a.Width, c.LaneWidth()))
		}
	}
	if c.Speed.Base <= 0 {
		errs = append(errs, fmt.Errorf("base speed must be positive, got %v", c.Speed.Base))
	}
	if c.Speed.Increment < 0 {
		errs = append(errs, fmt.Errorf("speed increment must not be negative, got %v", c.Speed.Increment))
	}
	if c.Speed.Every <= 0 {
		errs = append(errs, fmt.Errorf("speed.every must be positive, got %d", c.Speed.Every))
	}
	if c.Road.Markings < 0 {
		errs = append(errs, errors.New("road markings must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
