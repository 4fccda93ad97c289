package window

import (
	"time"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/runner"
)

const popupSize = 24

// popups holds the birth time of every live "+1".
type popups []time.Time

func (p *popups) add(now time.Time) {
	*p = append(*p, now)
}

// prune drops popups older than d. Popups are appended in order, so the
// expired ones are always at the front.
func (p *popups) prune(now time.Time, d time.Duration) {
	n := 0
	for n < len(*p) && now.Sub((*p)[n]) >= d {
		n++
	}
	*p = (*p)[n:]
}

// popupFrame returns how far a popup of the given age has risen and its
// opacity. ok is false once the animation is over.
func popupFrame(age time.Duration, cfg config.PopupConfig) (rise, alpha float64, ok bool) {
	if age < 0 {
		age = 0
	}
	if age >= cfg.Duration {
		return 0, 0, false
	}
	t := float64(age) / float64(cfg.Duration)
	return cfg.Rise * t, 1 - t, true
}

// rainbow is the easter egg palette cycle.
type rainbow struct {
	from, until time.Time
}

func (r *rainbow) start(now time.Time) {
	r.from = now
	r.until = now.Add(runner.RainbowDuration)
}

// hue returns the current rotation in degrees, 0 when the effect is off.
func (r rainbow) hue(now time.Time) float64 {
	if !now.Before(r.until) {
		return 0
	}
	return runner.RainbowHue(now.Sub(r.from))
}
