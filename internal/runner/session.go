package runner

import (
	"github.com/vovakirdan/hoodierun/internal/config"
)

// centerLane is where every session starts.
const centerLane = 1

// Session is the complete state of one game: the current phase, the
// bookkeeping and every object on the road.
type Session struct {
	Phase     Phase
	Score     int
	Speed     float64 // pixels per frame; never decreases within a session
	HighScore int
	LastScore int // final score of the most recent game over
	Frames    int // frames simulated in the current session

	Player    Player
	Obstacles []Obstacle
	Markings  []RoadMarking
}

// NewSession creates a session in the Ready phase.
func NewSession(cfg config.RunnerConfig) Session {
	var s Session
	s.Reset(cfg)
	return s
}

// Reset puts the per-session state back to its initial values: score 0,
// base speed, no obstacles, centered player and fresh road markings.
// Phase, HighScore and LastScore are left to the caller.
func (s *Session) Reset(cfg config.RunnerConfig) {
	s.Score = 0
	s.Speed = cfg.Speed.Base
	s.Frames = 0
	s.Obstacles = nil
	s.Markings = newMarkings(cfg)
	s.Player = Player{
		X:      LaneX(cfg, centerLane, cfg.Player.Width),
		Y:      cfg.Surface.Height - cfg.Player.BottomOffset,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Lane:   centerLane,
		Color:  cfg.Player.Color,
	}
}

// Running reports whether a session is in progress, paused or not.
func (s Session) Running() bool {
	return s.Phase == PhaseRunning || s.Phase == PhasePaused
}

// Paused reports whether the session is frozen.
func (s *Session) Paused() bool {
	return s.Phase == PhasePaused
}

// Clone returns a deep copy that shares no slices with s.
func (s Session) Clone() Session {
	s.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	s.Markings = append([]RoadMarking(nil), s.Markings...)
	return s
}

// MoveLane shifts the player by delta lanes. Moves that would leave the
// road are ignored. Returns whether the player moved.
func (s *Session) MoveLane(cfg config.RunnerConfig, delta int) bool {
	lane := s.Player.Lane + delta
	if lane < 0 || lane >= config.LaneCount {
		return false
	}
	s.Player.Lane = lane
	s.Player.X = LaneX(cfg, lane, s.Player.Width)
	return true
}

func newMarkings(cfg config.RunnerConfig) []RoadMarking {
	markings := make([]RoadMarking, cfg.Road.Markings)
	for i := range markings {
		markings[i] = RoadMarking{
			Y:      float64(i) * cfg.Road.Spacing,
			Width:  cfg.Road.MarkingWidth,
			Height: cfg.Road.MarkingHeight,
		}
	}
	return markings
}
