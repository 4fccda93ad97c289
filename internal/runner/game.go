package runner

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/loop"
)

// Construction errors.
var (
	ErrNoDisplay = errors.New("runner: no display")
	ErrNoContext = errors.New("runner: display has no 2D context")
)

// Scheduler arms the next frame callback. *loop.Frames implements it.
type Scheduler interface {
	Request(fn func() bool)
}

// Result summarizes a finished session.
type Result struct {
	Score     int
	HighScore int
	NewRecord bool
	Frames    int
}

// Game is the run loop controller. It owns one session and drives it
// through ready, running, paused and game over in response to input and
// scheduled frames.
//
// A Game is not safe for concurrent use. Input handlers and frames must
// run on the host's update thread.
type Game struct {
	cfg  config.RunnerConfig // active palette applied
	base config.RunnerConfig // colorful palette as configured

	surf   core.Surface
	store  Store
	sched  Scheduler
	rng    Rand
	logger *log.Logger
	sink   ScoreSink

	session  Session
	theme    Theme
	themeSet bool
	armed    bool

	swipe  SwipeTracker
	konami *Sequence

	onScore     func(score int)
	onGameOver  func(Result)
	onEasterEgg func()
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for lifecycle events. Logging is off by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithScheduler sets the frame scheduler. The default is a fresh
// loop.Frames reachable through Scheduler.
func WithScheduler(s Scheduler) Option {
	return func(g *Game) {
		if s != nil {
			g.sched = s
		}
	}
}

// WithSeed makes obstacle spawning deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used for spawning.
func WithRand(r Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithScoreSink sets the widget that mirrors score and high score.
func WithScoreSink(s ScoreSink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithTheme overrides the theme saved in the store.
func WithTheme(t Theme) Option {
	return func(g *Game) {
		g.theme = t
		g.themeSet = true
	}
}

// OnScore registers a callback fired once per point scored, with the new
// score. Hosts use it for "+1" popups.
func OnScore(fn func(score int)) Option {
	return func(g *Game) { g.onScore = fn }
}

// OnGameOver registers a callback fired when a session ends.
func OnGameOver(fn func(Result)) Option {
	return func(g *Game) { g.onGameOver = fn }
}

// OnEasterEgg registers a callback fired when the Konami code is entered.
func OnEasterEgg(fn func()) Option {
	return func(g *Game) { g.onEasterEgg = fn }
}

// New creates a controller drawing on display and keeping its high score
// in store. A nil store keeps scores in memory. The game starts in the
// ready phase with the start screen drawn.
func New(display core.Display, store Store, cfg config.RunnerConfig, opts ...Option) (*Game, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}
	surf, err := display.Context2D()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoContext, err)
	}
	if surf == nil {
		return nil, ErrNoContext
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	if store == nil {
		store = NewMemoryStore()
	}

	g := &Game{
		cfg:    cfg,
		base:   cfg,
		surf:   surf,
		store:  store,
		logger: log.New(io.Discard),
		sink:   nopSink{},
		konami: NewSequence(KonamiCode),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sched == nil {
		g.sched = loop.NewFrames()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.swipe.Threshold = cfg.Input.SwipeThreshold

	if !g.themeSet {
		g.theme = g.loadTheme()
	}
	applyTheme(&g.cfg, g.base, g.theme)

	g.session = NewSession(g.cfg)
	g.session.HighScore = g.loadHighScore()

	g.sink.SetScore(0)
	g.sink.SetHighScore(g.session.HighScore)
	RenderReady(g.surf)

	g.logger.Debug("game ready", "highScore", g.session.HighScore, "theme", g.theme)
	return g, nil
}

func (g *Game) loadHighScore() int {
	v, ok, err := g.store.Int(KeyHighScore)
	if err != nil {
		g.logger.Warn("could not read high score", "error", err)
		return 0
	}
	if !ok || v < 0 {
		return 0
	}
	return v
}

func (g *Game) loadTheme() Theme {
	v, ok, err := g.store.Int(KeyTheme)
	if err != nil {
		g.logger.Warn("could not read theme", "error", err)
		return ThemeColorful
	}
	if ok && Theme(v) == ThemeBW {
		return ThemeBW
	}
	return ThemeColorful
}

// Start begins a new session. It does nothing while a session is running
// or paused.
func (g *Game) Start() {
	if g.session.Running() {
		return
	}
	g.session.Reset(g.cfg)
	g.session.Phase = PhaseRunning
	g.sink.SetScore(0)
	g.logger.Info("session started", "speed", g.session.Speed)
	g.arm()
}

// Pause freezes a running session and draws the pause overlay over the
// last frame.
func (g *Game) Pause() {
	if g.session.Phase != PhaseRunning {
		return
	}
	g.session.Phase = PhasePaused
	RenderPaused(g.surf)
	g.logger.Debug("paused", "score", g.session.Score)
}

// Resume continues a paused session from where it stopped.
func (g *Game) Resume() {
	if g.session.Phase != PhasePaused {
		return
	}
	g.session.Phase = PhaseRunning
	g.logger.Debug("resumed", "score", g.session.Score)
	g.arm()
}

// TogglePause pauses a running session or resumes a paused one.
func (g *Game) TogglePause() {
	if g.session.Paused() {
		g.Resume()
		return
	}
	g.Pause()
}

// Stop abandons a running or paused session without a game over: the
// score is dropped, the high score is untouched and the ready screen is
// drawn again. The armed frame, if any, finishes on its next tick.
func (g *Game) Stop() {
	if !g.session.Running() {
		return
	}
	score := g.session.Score
	g.armed = false
	g.session.Reset(g.cfg)
	g.session.Phase = PhaseReady
	g.sink.SetScore(0)
	RenderReady(g.surf)
	g.logger.Info("session stopped", "score", score)
}

// MoveLeft moves the player one lane left if possible.
func (g *Game) MoveLeft() bool {
	return g.session.MoveLane(g.cfg, -1)
}

// MoveRight moves the player one lane right if possible.
func (g *Game) MoveRight() bool {
	return g.session.MoveLane(g.cfg, 1)
}

// HandleKey applies a key press and returns the action it mapped to.
func (g *Game) HandleKey(k core.Key) Action {
	if g.konami.Feed(k) {
		g.logger.Info("konami code entered")
		if g.onEasterEgg != nil {
			g.onEasterEgg()
		}
	}

	action := ActionFor(k)
	switch action {
	case ActionLeft:
		g.MoveLeft()
	case ActionRight:
		g.MoveRight()
	case ActionStart:
		if g.session.Running() {
			return ActionNone
		}
		g.Start()
	case ActionPause:
		if !g.session.Running() {
			return ActionNone
		}
		g.TogglePause()
	case ActionTheme:
		g.ToggleTheme()
	}
	return action
}

// TouchStart records the x position where a touch began.
func (g *Game) TouchStart(x float64) {
	g.swipe.Start(x)
}

// TouchEnd finishes a touch. A horizontal swipe longer than the configured
// threshold changes lane against the finger: swiping left moves right.
func (g *Game) TouchEnd(x float64) {
	switch g.swipe.End(x) {
	case -1:
		g.MoveLeft()
	case 1:
		g.MoveRight()
	}
}

// Frame runs one frame: it steps the session, handles scoring and
// collisions and renders. It reports whether another frame should follow.
func (g *Game) Frame() bool {
	if g.session.Phase != PhaseRunning {
		g.armed = false
		return false
	}

	before := g.session.Score
	next, res := Step(g.session, g.cfg, g.rng)
	g.session = next

	if res.Removed > 0 {
		if g.onScore != nil {
			for score := before + 1; score <= next.Score; score++ {
				g.onScore(score)
			}
		}
		g.sink.SetScore(next.Score)
	}
	if res.SpeedUps > 0 {
		g.logger.Debug("speed up", "score", next.Score, "speed", next.Speed)
	}

	if res.Collided {
		g.armed = false
		g.gameOver()
		return false
	}

	Render(g.surf, &g.session, g.cfg)
	return true
}

// gameOver records the final score, draws the game over overlay over the
// last rendered frame and resets the session for the next start.
func (g *Game) gameOver() {
	final := g.session.Score
	frames := g.session.Frames
	newRecord := final > g.session.HighScore

	if newRecord {
		g.session.HighScore = final
		if err := g.store.SetInt(KeyHighScore, final); err != nil {
			g.logger.Warn("could not save high score", "error", err)
		}
		g.sink.SetHighScore(final)
	}

	g.session.LastScore = final
	g.session.Phase = PhaseGameOver
	RenderGameOver(g.surf, final, g.session.HighScore)
	g.session.Reset(g.cfg)
	g.sink.SetScore(0)

	g.logger.Info("game over", "score", final, "highScore", g.session.HighScore, "frames", frames)

	if g.onGameOver != nil {
		g.onGameOver(Result{
			Score:     final,
			HighScore: g.session.HighScore,
			NewRecord: newRecord,
			Frames:    frames,
		})
	}
}

func (g *Game) arm() {
	if g.armed {
		return
	}
	g.armed = true
	g.sched.Request(g.Frame)
}

// SetTheme switches palette. The player and future obstacles take the new
// colors; obstacles already on the road keep theirs. The choice is saved.
func (g *Game) SetTheme(t Theme) {
	g.theme = t
	applyTheme(&g.cfg, g.base, t)
	g.session.Player.Color = g.cfg.Player.Color
	if err := g.store.SetInt(KeyTheme, int(t)); err != nil {
		g.logger.Warn("could not save theme", "error", err)
	}
	g.logger.Debug("theme changed", "theme", t)
}

// ToggleTheme switches to the other palette.
func (g *Game) ToggleTheme() {
	g.SetTheme(g.theme.Next())
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	return g.session.Clone()
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// HighScore returns the best score so far.
func (g *Game) HighScore() int {
	return g.session.HighScore
}

// Theme returns the active theme.
func (g *Game) Theme() Theme {
	return g.theme
}

// Config returns the configuration with the active palette applied.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Surface returns the surface the game draws on.
func (g *Game) Surface() core.Surface {
	return g.surf
}

// Scheduler returns the frame scheduler.
func (g *Game) Scheduler() Scheduler {
	return g.sched
}
