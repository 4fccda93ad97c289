package window

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/loop"
	"github.com/vovakirdan/hoodierun/internal/runner"
)

// Options configures the desktop window.
type Options struct {
	Config     config.RunnerConfig
	Store      runner.Store // nil keeps scores in memory
	Seed       int64        // 0 picks a time-based seed
	Theme      string       // "" keeps the saved theme
	Scale      float64      // window size relative to the surface
	TickRate   int
	Logger     *log.Logger
	OnGameOver func(runner.Result)
}

// Host implements ebiten.Game around one runner.Game.
type Host struct {
	game    *runner.Game
	frames  *loop.Frames
	surf    *Surface
	cfg     config.RunnerConfig
	logger  *log.Logger
	popups  popups
	rainbow rainbow
	now     func() time.Time

	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	touch    ebiten.TouchID
	touching bool
}

// NewHost creates the game and its offscreen surface.
func NewHost(opts Options) (*Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config
	h := &Host{
		frames: loop.NewFrames(),
		surf:   NewSurface(int(cfg.Surface.Width), int(cfg.Surface.Height)),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}

	gameOpts := []runner.Option{
		runner.WithScheduler(h.frames),
		runner.WithLogger(logger),
		runner.OnScore(func(int) { h.popups.add(h.now()) }),
		runner.OnEasterEgg(func() { h.rainbow.start(h.now()) }),
	}
	if opts.OnGameOver != nil {
		gameOpts = append(gameOpts, runner.OnGameOver(opts.OnGameOver))
	}
	if opts.Seed != 0 {
		gameOpts = append(gameOpts, runner.WithSeed(opts.Seed))
	}
	if opts.Theme != "" {
		theme, err := runner.ParseTheme(opts.Theme)
		if err != nil {
			return nil, err
		}
		gameOpts = append(gameOpts, runner.WithTheme(theme))
	}

	game, err := runner.New(h.surf, opts.Store, cfg, gameOpts...)
	if err != nil {
		return nil, fmt.Errorf("window: cannot create game: %w", err)
	}
	h.game = game
	return h, nil
}

// Game returns the hosted game.
func (h *Host) Game() *runner.Game {
	return h.game
}

// Update implements ebiten.Game. Input is handled before the frame runs,
// like browser events queued ahead of the next animation frame.
func (h *Host) Update() error {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if k == ebiten.KeyQ {
			return ebiten.Termination
		}
		if gk := gameKey(k); gk != core.KeyNone {
			h.game.HandleKey(gk)
		}
	}

	h.handleTouch()
	h.handleMouse()

	h.frames.Tick()
	h.popups.prune(h.now(), h.cfg.Popup.Duration)
	return nil
}

// handleTouch follows the first finger down until it is lifted.
func (h *Host) handleTouch() {
	if !h.touching {
		h.touchIDs = inpututil.AppendJustPressedTouchIDs(h.touchIDs[:0])
		if len(h.touchIDs) > 0 {
			h.touch = h.touchIDs[0]
			h.touching = true
			x, _ := ebiten.TouchPosition(h.touch)
			h.game.TouchStart(float64(x))
		}
		return
	}
	if inpututil.IsTouchJustReleased(h.touch) {
		h.touching = false
		x, _ := inpututil.TouchPositionInPreviousTick(h.touch)
		h.game.TouchEnd(float64(x))
	}
}

// handleMouse treats a left button drag as a swipe.
func (h *Host) handleMouse() {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, _ := ebiten.CursorPosition()
		h.game.TouchStart(float64(x))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		x, _ := ebiten.CursorPosition()
		h.game.TouchEnd(float64(x))
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	now := h.now()
	if hue := h.rainbow.hue(now); hue != 0 {
		var cm colorm.ColorM
		cm.RotateHue(hue * math.Pi / 180)
		colorm.DrawImage(screen, h.surf.Image(), cm, &colorm.DrawImageOptions{})
	} else {
		screen.DrawImage(h.surf.Image(), nil)
	}

	for _, born := range h.popups {
		rise, alpha, ok := popupFrame(now.Sub(born), h.cfg.Popup)
		if !ok {
			continue
		}
		drawText(screen, h.surf.face, h.surf.Width()/2, h.surf.Height()/2-rise, "+1", popupSize, nrgba(core.ColorGreen.WithAlpha(alpha)), core.AlignCenter)
	}
}

// Layout implements ebiten.Game. The surface has a fixed size and
// Ebitengine scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(h.surf.Width()), int(h.surf.Height())
}

// Run opens the window and blocks until it is closed or q is pressed.
func Run(opts Options) error {
	h, err := NewHost(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowTitle("Endless Pink Hoodie Run")
	ebiten.SetWindowSize(int(h.surf.Width()*scale), int(h.surf.Height()*scale))
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// gameKey translates an Ebitengine key into a game key.
func gameKey(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeyArrowLeft, ebiten.KeyH:
		return core.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyL:
		return core.KeyRight
	case ebiten.KeyArrowUp:
		return core.KeyUp
	case ebiten.KeyArrowDown:
		return core.KeyDown
	case ebiten.KeySpace:
		return core.KeySpace
	case ebiten.KeyEscape, ebiten.KeyP:
		return core.KeyEscape
	case ebiten.KeyEnter:
		return core.KeyEnter
	case ebiten.KeyT:
		return core.KeyTheme
	case ebiten.KeyA:
		return core.KeyA
	case ebiten.KeyB:
		return core.KeyB
	}
	return core.KeyNone
}
