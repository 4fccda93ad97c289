package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/runner"
)

// popup is a "+1" floating up from the middle of the road.
type popup struct {
	id   int
	born time.Time
}

// hud holds everything drawn around and over the game: the score widgets,
// score popups and the rainbow easter egg. The game writes into it through
// runner.ScoreSink and its callbacks.
type hud struct {
	score     int
	highScore int

	popups  []popup
	nextID  int
	created []int // popups added since the last drain

	rainbowFrom  time.Time
	rainbowUntil time.Time

	now func() time.Time
}

func newHUD() *hud {
	return &hud{now: time.Now}
}

// SetScore implements runner.ScoreSink.
func (h *hud) SetScore(score int) { h.score = score }

// SetHighScore implements runner.ScoreSink.
func (h *hud) SetHighScore(score int) { h.highScore = score }

func (h *hud) addPopup(int) {
	h.nextID++
	h.popups = append(h.popups, popup{id: h.nextID, born: h.now()})
	h.created = append(h.created, h.nextID)
}

// drainCreated returns the IDs of popups added since the previous call.
func (h *hud) drainCreated() []int {
	ids := h.created
	h.created = nil
	return ids
}

func (h *hud) removePopup(id int) {
	for i, p := range h.popups {
		if p.id == id {
			h.popups = append(h.popups[:i], h.popups[i+1:]...)
			return
		}
	}
}

func (h *hud) startRainbow() {
	h.rainbowFrom = h.now()
	h.rainbowUntil = h.rainbowFrom.Add(runner.RainbowDuration)
}

// hue returns the current rainbow rotation, 0 when the effect is off.
func (h *hud) hue() float64 {
	now := h.now()
	if !now.Before(h.rainbowUntil) {
		return 0
	}
	return runner.RainbowHue(now.Sub(h.rainbowFrom))
}

var popupColor = colorful.Color{R: 0, G: 1, B: 0}

// overlays places the live popups on the canvas. A popup starts in the
// middle of the surface, rises cfg.Popup.Rise pixels and fades into the road.
func (h *hud) overlays(canvas *core.Canvas, cfg config.RunnerConfig) []Overlay {
	if len(h.popups) == 0 {
		return nil
	}
	road := colorful.Color{R: float64(core.ColorRoad.R) / 255, G: float64(core.ColorRoad.G) / 255, B: float64(core.ColorRoad.B) / 255}
	now := h.now()

	out := make([]Overlay, 0, len(h.popups))
	for _, p := range h.popups {
		t := float64(now.Sub(p.born)) / float64(cfg.Popup.Duration)
		if t >= 1 {
			continue
		}
		t = core.ClampF(t, 0, 1)

		col, row := canvas.CellAt(canvas.Width()/2, canvas.Height()/2-cfg.Popup.Rise*t)
		r, g, b := popupColor.BlendRgb(road, t).Clamped().RGB255()
		out = append(out, Overlay{Col: col - 1, Row: row, Text: "+1", FG: core.RGB(r, g, b)})
	}
	return out
}

var (
	widgetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorPink.Hex()))
	widgetLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

// widgets renders the score and high score labels shown above the road.
func (h *hud) widgets(width int) string {
	left := widgetLabelStyle.Render("Score ") + widgetStyle.Render(fmt.Sprintf("%d", h.score))
	right := widgetLabelStyle.Render("High Score ") + widgetStyle.Render(fmt.Sprintf("%d", h.highScore))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
