package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/platform/tui"
)

var flagTheme string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal with the start menu.

Controls:
  Left/Right, h/l  - Change lane
  Mouse drag       - Swipe to change lane
  Space            - Start
  Esc/P            - Pause / resume (back to menu when not playing)
  T                - Toggle colorful / black-and-white theme
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, fewer monsters
  normal - The classic road
  hard   - Faster start, more monsters
  fixed  - The road never speeds up

Examples:
  hoodierun play
  hoodierun play --difficulty easy
  hoodierun play --theme bw
  hoodierun play --config ./my-runner.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme: colorful or bw (default: last used)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store := openStore(logger)

	opts := tui.Options{
		Config:   cfg,
		Store:    store,
		Player:   playerName(),
		TickRate: rt.TickRate,
		Seed:     rt.Seed,
		Theme:    flagTheme,
		Logger:   logger,
	}
	runErr := tui.Run(opts, rt.ScreenW, rt.ScreenH)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
