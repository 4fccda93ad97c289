package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hoodierun/internal/sim"
)

var (
	flagGames     int
	flagMaxFrames int
	flagSkill     float64
	flagRate      int
	flagSave      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play headless",
	Long: `Play games without a screen, steered by an autopilot.

Frames run back to back unless --rate is set. With the same --seed and
--skill every simulation replays exactly, which makes this handy for
trying out configs and difficulty presets.

Examples:
  hoodierun simulate
  hoodierun simulate --games 100 --seed 42
  hoodierun simulate --difficulty hard --skill 0.95
  hoodierun simulate --rate 60 --log-level debug`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 36000, "Frames per game before it is abandoned (0 = no cap)")
	simulateCmd.Flags().Float64Var(&flagSkill, "skill", 0.9, "Autopilot skill: chance to react on a frame (0-1)")
	simulateCmd.Flags().IntVar(&flagRate, "rate", 0, "Frames per second (0 = as fast as possible)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Keep the high score in the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := sim.Options{
		Config:    cfg,
		Seed:      flagSeed,
		Games:     flagGames,
		MaxFrames: flagMaxFrames,
		Rate:      flagRate,
		Skill:     flagSkill,
		Logger:    logger,
	}
	if flagSave {
		if store := openStore(logger); store != nil {
			defer store.Close()
			opts.Store = store
		}
	}

	report, err := sim.Run(ctx, opts)
	printReport(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printReport(r sim.Report) {
	if len(r.Results) == 0 {
		fmt.Println("No games played.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s\n", "Game", "Score", "Frames")
	fmt.Printf("  %-4s  %-8s  %-8s\n", "----", "-----", "------")

	for i, res := range r.Results {
		note := ""
		switch {
		case res.Capped:
			note = "capped"
		case res.NewRecord:
			note = "new record"
		}
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, res.Score, res.Frames, note)
	}

	fmt.Println()
	fmt.Printf("Games: %d (%d capped)  Frames: %d  Best: %d  High score: %d\n",
		len(r.Results), r.Capped, r.Frames, r.Best(), r.HighScore)
}
