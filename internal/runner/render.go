package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
)

var laneDash = []float64{20, 20}

const laneLineWidth = 3

// Render draws one complete frame of the session. It only reads s.
func Render(surf core.Surface, s *Session, cfg config.RunnerConfig) {
	w, h := surf.Width(), surf.Height()
	lw := cfg.LaneWidth()

	surf.Clear()
	surf.FillRect(core.NewRect(0, 0, w, h), colorRoad)

	for i := 1; i < config.LaneCount; i++ {
		x := lw * float64(i)
		surf.StrokeLine(x, 0, x, h, laneLineWidth, colorLine, laneDash)
	}

	for _, m := range s.Markings {
		surf.FillRect(core.NewRect(w/2-m.Width/2, m.Y, m.Width, m.Height), colorLine)
	}

	for _, o := range s.Obstacles {
		drawObstacle(surf, o)
	}
	drawPlayer(surf, s.Player)

	surf.Text(20, 30, fmt.Sprintf("Score: %d", s.Score), 20, colorText, core.AlignLeft)
}

func drawObstacle(surf core.Surface, o Obstacle) {
	surf.FillRect(o.Rect(), o.Color)

	surf.FillRect(core.NewRect(o.X+5, o.Y+5, 8, 8), colorFace)
	surf.FillRect(core.NewRect(o.X+o.Width-13, o.Y+5, 8, 8), colorFace)

	surf.FillRect(core.NewRect(o.X+7, o.Y+7, 4, 4), colorInk)
	surf.FillRect(core.NewRect(o.X+o.Width-11, o.Y+7, 4, 4), colorInk)
}

func drawPlayer(surf core.Surface, p Player) {
	surf.FillRect(p.Rect(), p.Color)
	surf.FillRect(core.NewRect(p.X+5, p.Y+10, 30, 20), colorFace)

	surf.FillRect(core.NewRect(p.X+12, p.Y+15, 4, 4), colorInk)
	surf.FillRect(core.NewRect(p.X+24, p.Y+15, 4, 4), colorInk)

	surf.StrokeArc(p.X+20, p.Y+20, 6, 0, math.Pi, colorInk)
}

// RenderReady draws the start screen.
func RenderReady(surf core.Surface) {
	w, h := surf.Width(), surf.Height()
	surf.Clear()
	surf.FillRect(core.NewRect(0, 0, w, h), colorBackdrop)
	surf.Text(w/2, h/2-20, "Game Ready!", 24, colorText, core.AlignCenter)
	surf.Text(w/2, h/2+20, "Press SPACE to start", 16, colorText, core.AlignCenter)
	surf.Text(w/2, h/2+50, "LEFT/RIGHT to change lanes", 16, colorText, core.AlignCenter)
}

// RenderPaused dims whatever is on the surface and draws the pause banner.
func RenderPaused(surf core.Surface) {
	w, h := surf.Width(), surf.Height()
	surf.FillRect(core.NewRect(0, 0, w, h), colorBackdrop.WithAlpha(0.7))
	surf.Text(w/2, h/2-20, "GAME PAUSED", 32, colorText, core.AlignCenter)
	surf.Text(w/2, h/2+20, "Press ESC to resume", 16, colorText, core.AlignCenter)
}

// RenderGameOver dims the last frame and shows the final and best scores.
func RenderGameOver(surf core.Surface, score, highScore int) {
	w, h := surf.Width(), surf.Height()
	surf.FillRect(core.NewRect(0, 0, w, h), colorBackdrop.WithAlpha(0.8))
	surf.Text(w/2, h/2-50, "Game Over!", 48, colorText, core.AlignCenter)
	surf.Text(w/2, h/2, fmt.Sprintf("Score: %d", score), 24, colorText, core.AlignCenter)
	surf.Text(w/2, h/2+30, fmt.Sprintf("High Score: %d", highScore), 24, colorText, core.AlignCenter)
	surf.Text(w/2, h/2+80, "Press SPACE to play again", 16, colorText, core.AlignCenter)
}
