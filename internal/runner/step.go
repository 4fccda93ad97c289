package runner

import (
	"github.com/vovakirdan/hoodierun/internal/config"
)

// Rand is the randomness Step needs. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// StepResult describes what happened during one frame.
type StepResult struct {
	Continue bool // false once the session is no longer running
	Spawned  bool
	Removed  int // obstacles that left the bottom edge (one point each)
	SpeedUps int // speed increments applied this frame
	Collided bool
}

// Step advances a running session by one frame and returns the next state.
// The input session is not modified. Sessions that are not running (ready,
// paused, game over) come back unchanged with Continue false. A collision
// moves the session to PhaseGameOver; persisting the high score and
// resetting for the next session is left to the controller.
//
// Order within a frame: spawn, advance obstacles (scoring the ones that
// leave the road), advance road markings, collision check.
func Step(s Session, cfg config.RunnerConfig, rng Rand) (Session, StepResult) {
	if s.Phase != PhaseRunning {
		return s, StepResult{}
	}

	next := s.Clone()
	next.Frames++
	res := StepResult{Continue: true}

	if o, ok := spawn(cfg, rng); ok {
		next.Obstacles = append(next.Obstacles, o)
		res.Spawned = true
	}

	// Obstacles all move by the speed the frame started with; a speed-up
	// earned this frame applies from the road markings onwards.
	speed := next.Speed
	kept := next.Obstacles[:0]
	for _, o := range next.Obstacles {
		o.Y += speed
		if o.Y > cfg.Surface.Height {
			res.Removed++
			continue
		}
		kept = append(kept, o)
	}
	next.Obstacles = kept

	if res.Removed > 0 {
		before := next.Score
		next.Score += res.Removed
		res.SpeedUps = tiersCrossed(before, next.Score, cfg.Speed.Every)
		next.Speed += float64(res.SpeedUps) * cfg.Speed.Increment
	}

	for i := range next.Markings {
		m := &next.Markings[i]
		m.Y += next.Speed
		if m.Y > cfg.Surface.Height {
			m.Y = -m.Height
		}
	}

	if _, hit := FirstCollision(next.Player, next.Obstacles); hit {
		next.Phase = PhaseGameOver
		res.Collided = true
		res.Continue = false
	}

	return next, res
}

// spawn rolls the per-frame spawn chance and, on success, builds an
// obstacle of a random archetype just above the top edge of a random lane.
func spawn(cfg config.RunnerConfig, rng Rand) (Obstacle, bool) {
	if rng.Float64() >= cfg.Obstacles.SpawnChance {
		return Obstacle{}, false
	}
	lane := rng.Intn(config.LaneCount)
	a := cfg.Obstacles.Archetypes[rng.Intn(len(cfg.Obstacles.Archetypes))]
	return Obstacle{
		X:      LaneX(cfg, lane, a.Width),
		Y:      -a.Height,
		Width:  a.Width,
		Height: a.Height,
		Color:  a.Color,
		Lane:   lane,
		Kind:   a.Name,
	}, true
}

// tiersCrossed counts the positive multiples of every in (before, after].
// Each one is crossed exactly once per session, however many obstacles
// leave the road in the same frame.
func tiersCrossed(before, after, every int) int {
	if every <= 0 || after <= before {
		return 0
	}
	return after/every - before/every
}
