package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/loop"
	"github.com/vovakirdan/hoodierun/internal/runner"
)

// Options configures a simulation.
type Options struct {
	Config    config.RunnerConfig
	Seed      int64
	Games     int     // games to play, at least one
	MaxFrames int     // frames per game before it is abandoned; 0 for no cap
	Rate      int     // frames per second; 0 runs as fast as possible
	Skill     float64 // autopilot skill, 0-1
	Store     runner.Store
	Logger    *log.Logger
}

// Outcome is how one simulated game ended.
type Outcome struct {
	runner.Result
	Capped bool // abandoned at MaxFrames instead of a collision
}

// Report summarizes a simulation.
type Report struct {
	Results   []Outcome
	HighScore int
	Capped    int // games abandoned at MaxFrames
	Frames    int // frames simulated over all games
}

// Best returns the highest score of the simulation.
func (r Report) Best() int {
	best := 0
	for _, res := range r.Results {
		best = max(best, res.Score)
	}
	return best
}

// pilotScheduler arms frames on a loop.Frames and runs a hook before each
// one. The hook ending the game stops the frame from running.
type pilotScheduler struct {
	frames *loop.Frames
	before func() bool
}

func (p *pilotScheduler) Request(fn func() bool) {
	p.frames.Request(func() bool {
		if p.before != nil && !p.before() {
			return false
		}
		return fn()
	})
}

// Run plays opts.Games games and reports how they went.
func Run(ctx context.Context, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	games := max(opts.Games, 1)
	cfg := opts.Config

	var report Report
	sched := &pilotScheduler{frames: loop.NewFrames()}
	rec := core.NewRecorder(cfg.Surface.Width, cfg.Surface.Height)

	gameOpts := []runner.Option{
		runner.WithScheduler(sched),
		runner.WithLogger(logger),
		runner.OnGameOver(func(r runner.Result) {
			report.Results = append(report.Results, Outcome{Result: r})
			report.Frames += r.Frames
		}),
	}
	if opts.Seed != 0 {
		gameOpts = append(gameOpts, runner.WithSeed(opts.Seed))
	}
	game, err := runner.New(rec, opts.Store, cfg, gameOpts...)
	if err != nil {
		return report, fmt.Errorf("sim: %w", err)
	}

	pilot := NewAutopilot(opts.Skill, opts.Seed)
	sched.before = func() bool {
		s := game.Session()
		if opts.MaxFrames > 0 && s.Frames >= opts.MaxFrames {
			return false
		}
		switch pilot.Steer(s, game.Config()) {
		case -1:
			game.MoveLeft()
		case 1:
			game.MoveRight()
		}
		return true
	}

	for i := 0; i < games; i++ {
		game.Start()
		if err := loop.Run(ctx, sched.frames, opts.Rate); err != nil {
			game.Stop()
			return report, fmt.Errorf("sim: game %d: %w", i+1, err)
		}

		if game.Phase() != runner.PhaseGameOver {
			s := game.Session()
			report.Capped++
			report.Frames += s.Frames
			report.Results = append(report.Results, Outcome{
				Result: runner.Result{
					Score:     s.Score,
					HighScore: game.HighScore(),
					Frames:    s.Frames,
				},
				Capped: true,
			})
			game.Stop()
		}
		logger.Debug("simulated game", "game", i+1, "score", report.Results[len(report.Results)-1].Score)
	}

	report.HighScore = game.HighScore()
	return report, nil
}
