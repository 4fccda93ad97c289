package runner

import (
	"errors"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
)

// scriptedRand replays fixed values. Once a queue runs dry Float64 returns
// 1 (never spawn) and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 1
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// spawnIn scripts a single spawn of archetype kind in lane.
func spawnIn(lane, kind int) *scriptedRand {
	return &scriptedRand{floats: []float64{0}, ints: []int{lane, kind}}
}

type brokenDisplay struct{}

var errNoGPU = errors.New("no gpu")

func (brokenDisplay) Context2D() (core.Surface, error) {
	return nil, errNoGPU
}

type nilDisplay struct{}

func (nilDisplay) Context2D() (core.Surface, error) {
	return nil, nil
}

type recordingSink struct {
	scores     []int
	highScores []int
}

func (s *recordingSink) SetScore(v int)     { s.scores = append(s.scores, v) }
func (s *recordingSink) SetHighScore(v int) { s.highScores = append(s.highScores, v) }

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func runningSession(cfg config.RunnerConfig) Session {
	s := NewSession(cfg)
	s.Phase = PhaseRunning
	return s
}
