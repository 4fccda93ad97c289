package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hoodierun/internal/platform/window"
	"github.com/vovakirdan/hoodierun/internal/runner"
	"github.com/vovakirdan/hoodierun/internal/storage"
)

var (
	flagScale       float64
	flagWindowTheme string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window, drawn pixel for pixel.

Controls:
  Left/Right       - Change lane
  Mouse drag/touch - Swipe to change lane
  Space            - Start
  Esc/P            - Pause / resume
  T                - Toggle theme
  Q                - Quit

Examples:
  hoodierun window
  hoodierun window --scale 2
  hoodierun window --difficulty hard --fps 30`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 300x500 road")
	windowCmd.Flags().StringVar(&flagWindowTheme, "theme", "", "Color theme: colorful or bw (default: last used)")
}

func runWindow(_ *cobra.Command, _ []string) {
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

	opts := window.Options{
		Config:   cfg,
		Seed:     flagSeed,
		Theme:    flagWindowTheme,
		Scale:    flagScale,
		TickRate: flagFPS,
		Logger:   logger,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
		opts.Store = store

		sessionID := uuid.New()
		player := playerName()
		opts.OnGameOver = func(r runner.Result) {
			if r.Score <= 0 {
				return
			}
			if _, err := store.SaveRun(storage.Run{
				SessionID: sessionID,
				Player:    player,
				Score:     r.Score,
				Frames:    r.Frames,
			}); err != nil {
				logger.Warn("could not save run", "error", err)
			}
		}
	}

	if err := window.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
