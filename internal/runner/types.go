// Package runner implements the Hoodie Run endless runner: a player avatar
// switching between three lanes to dodge obstacles falling down the road.
//
// The per-frame update (Step) is a pure function over a Session. Game wraps
// it into the run loop controller: it owns the session, maps input, talks to
// the persistent store and renders into a core.Surface.
package runner

import (
	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
)

// Phase is the state of the run loop controller.
type Phase int

const (
	PhaseReady    Phase = iota // constructed, nothing moving, instructions shown
	PhaseRunning               // simulation active
	PhasePaused                // simulation frozen, obstacles kept in place
	PhaseGameOver              // session ended and reset; behaves like Ready
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Player is the avatar at the bottom of the road.
type Player struct {
	X, Y          float64
	Width, Height float64
	Lane          int // 0: left, 1: center, 2: right
	Color         core.Color
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a monster falling down one lane.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
	Lane          int
	Kind          string // archetype name
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// RoadMarking is one of the dashes scrolling down the road center.
type RoadMarking struct {
	Y             float64
	Width, Height float64
}

// LaneX returns the x coordinate that centers an object of the given width
// in a lane.
func LaneX(cfg config.RunnerConfig, lane int, width float64) float64 {
	lw := cfg.LaneWidth()
	return lw*float64(lane) + lw/2 - width/2
}
