// Package sim plays the runner headless. An autopilot steers, the frames run
// back to back (or at a fixed rate) and every finished game is reported.
// Runs with the same seed and skill replay identically.
package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/runner"
)

// Autopilot dodges obstacles by moving to the neighbouring lane with the
// most free road ahead.
type Autopilot struct {
	// Skill is the chance (0-1) of reacting on a given frame.
	Skill float64
	// Lookahead is how much free road, in pixels, is enough to stay put.
	Lookahead float64

	rng *rand.Rand
}

// NewAutopilot creates an autopilot with its own seeded RNG, kept apart
// from the game's so steering never changes what spawns.
func NewAutopilot(skill float64, seed int64) *Autopilot {
	return &Autopilot{
		Skill:     skill,
		Lookahead: 150,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Steer returns -1, 0 or 1: the lane change to make this frame.
func (a *Autopilot) Steer(s runner.Session, cfg config.RunnerConfig) int {
	lane := s.Player.Lane
	here := freeRoad(s, lane)
	if here > a.Lookahead {
		return 0
	}
	if a.rng.Float64() >= a.Skill {
		return 0
	}

	best, dir := here, 0
	for _, d := range []int{-1, 1} {
		next := lane + d
		if next < 0 || next >= config.LaneCount {
			continue
		}
		if free := freeRoad(s, next); free > best {
			best, dir = free, d
		}
	}
	return dir
}

// freeRoad is the distance from the player's top edge to the bottom of the
// nearest obstacle in lane that has not passed the player yet. It is
// negative when an obstacle already overlaps the player's rows.
func freeRoad(s runner.Session, lane int) float64 {
	p := s.Player
	free := math.Inf(1)
	for _, o := range s.Obstacles {
		if o.Lane != lane || o.Y >= p.Y+p.Height {
			continue
		}
		free = math.Min(free, p.Y-(o.Y+o.Height))
	}
	return free
}
