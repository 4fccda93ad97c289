package runner

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/loop"
)

type testGame struct {
	*Game
	rec    *core.Recorder
	frames *loop.Frames
	store  *MemoryStore
	sink   *recordingSink
}

func newTestGame(t *testing.T, rng Rand, opts ...Option) testGame {
	t.Helper()
	cfg := testConfig()
	tg := testGame{
		rec:    core.NewRecorder(cfg.Surface.Width, cfg.Surface.Height),
		frames: loop.NewFrames(),
		store:  NewMemoryStore(),
		sink:   &recordingSink{},
	}
	opts = append([]Option{
		WithScheduler(tg.frames),
		WithRand(rng),
		WithScoreSink(tg.sink),
	}, opts...)
	g, err := New(tg.rec, tg.store, cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tg.Game = g
	return tg
}

func TestNewErrors(t *testing.T) {
	cfg := testConfig()

	if _, err := New(nil, nil, cfg); !errors.Is(err, ErrNoDisplay) {
		t.Errorf("nil display: err = %v, want ErrNoDisplay", err)
	}

	_, err := New(brokenDisplay{}, nil, cfg)
	if !errors.Is(err, ErrNoContext) || !errors.Is(err, errNoGPU) {
		t.Errorf("broken display: err = %v, want ErrNoContext wrapping the cause", err)
	}

	if _, err := New(nilDisplay{}, nil, cfg); !errors.Is(err, ErrNoContext) {
		t.Errorf("nil context: err = %v, want ErrNoContext", err)
	}

	bad := testConfig()
	bad.Surface.Width = 0
	if _, err := New(core.NewRecorder(300, 500), nil, bad); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestNewDrawsReadyScreen(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})

	if g.Phase() != PhaseReady {
		t.Errorf("phase = %v, want ready", g.Phase())
	}
	texts := g.rec.Texts()
	if len(texts) == 0 || texts[0] != "Game Ready!" {
		t.Errorf("texts = %v", texts)
	}
	if g.frames.Pending() {
		t.Error("no frame should be armed before start")
	}
	if s := g.Session(); s.Player.Lane != 1 || s.Player.X != 130 {
		t.Errorf("player = %+v, want centered", s.Player)
	}
}

func TestNewLoadsHighScore(t *testing.T) {
	cfg := testConfig()
	store := NewMemoryStore()
	store.SetInt(KeyHighScore, 42)
	sink := &recordingSink{}

	g, err := New(core.NewRecorder(300, 500), store, cfg, WithScoreSink(sink))
	if err != nil {
		t.Fatal(err)
	}
	if g.HighScore() != 42 {
		t.Errorf("high score = %d, want 42", g.HighScore())
	}
	if len(sink.highScores) != 1 || sink.highScores[0] != 42 {
		t.Errorf("sink high scores = %v", sink.highScores)
	}
}

type failingStore struct{}

func (failingStore) Int(string) (int, bool, error) { return 0, false, errors.New("disk gone") }
func (failingStore) SetInt(string, int) error      { return errors.New("disk gone") }

func TestUnreadableStoreMeansZero(t *testing.T) {
	g, err := New(core.NewRecorder(300, 500), failingStore{}, testConfig(), WithRand(spawnIn(1, 0)), WithScheduler(loop.NewFrames()))
	if err != nil {
		t.Fatal(err)
	}
	if g.HighScore() != 0 {
		t.Errorf("high score = %d, want 0", g.HighScore())
	}

	// a failing save does not stop the game
	g.Start()
	frames := g.Scheduler().(*loop.Frames)
	frames.TickN(500)
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, want game-over", g.Phase())
	}
}

func TestStartArmsFrames(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	g.Start()

	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", g.Phase())
	}
	if !g.frames.Pending() {
		t.Fatal("start should arm a frame")
	}
	g.frames.TickN(3)
	if s := g.Session(); s.Frames != 3 {
		t.Errorf("frames = %d, want 3", s.Frames)
	}
	if texts := g.rec.Texts(); len(texts) != 1 || texts[0] != "Score: 0" {
		t.Errorf("texts = %v", texts)
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	g := newTestGame(t, spawnIn(0, 0))
	g.Start()
	g.frames.TickN(10)
	before := g.Session()

	if a := g.HandleKey(core.KeySpace); a != ActionNone {
		t.Errorf("space while running mapped to %v", a)
	}
	g.Start()

	after := g.Session()
	if after.Frames != before.Frames || len(after.Obstacles) != len(before.Obstacles) {
		t.Error("start while running reset the session")
	}
}

func TestWidth300RightTwice(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	g.HandleKey(core.KeySpace)
	g.HandleKey(core.KeyRight)
	g.HandleKey(core.KeyRight)

	s := g.Session()
	if s.Player.Lane != 2 || s.Player.X != 230 {
		t.Errorf("lane/x = %d/%v, want 2/230", s.Player.Lane, s.Player.X)
	}
}

func TestLaneChangeOutsideRunning(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	g.HandleKey(core.KeyLeft)
	if s := g.Session(); s.Player.Lane != 0 {
		t.Errorf("lane = %d, want 0", s.Player.Lane)
	}
	if g.frames.Pending() {
		t.Error("lane change must not start the loop")
	}

	// start centers the player again
	g.Start()
	if s := g.Session(); s.Player.Lane != 1 {
		t.Errorf("lane after start = %d, want 1", s.Player.Lane)
	}
}

func TestPauseTransparency(t *testing.T) {
	g := newTestGame(t, spawnIn(0, 0))
	g.Start()
	g.frames.TickN(20)
	before := g.Session()

	if a := g.HandleKey(core.KeyEscape); a != ActionPause {
		t.Fatalf("escape mapped to %v", a)
	}
	if g.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", g.Phase())
	}
	if texts := g.rec.Texts(); texts[len(texts)-1] != "Press ESC to resume" {
		t.Errorf("pause overlay not drawn: %v", texts)
	}

	g.frames.TickN(50)
	if g.frames.Pending() {
		t.Error("paused game should stop requesting frames")
	}
	paused := g.Session()
	if paused.Frames != before.Frames || paused.Obstacles[0] != before.Obstacles[0] || paused.Score != before.Score {
		t.Error("state changed while paused")
	}

	g.HandleKey(core.KeyEscape)
	if g.Phase() != PhaseRunning || !g.frames.Pending() {
		t.Fatal("resume should re-arm the loop")
	}
	g.frames.Tick()

	after := g.Session()
	if after.Frames != before.Frames+1 {
		t.Errorf("frames = %d, want %d (no catch-up)", after.Frames, before.Frames+1)
	}
	if after.Obstacles[0].Y != before.Obstacles[0].Y+after.Speed {
		t.Errorf("obstacle y = %v, want one step from %v", after.Obstacles[0].Y, before.Obstacles[0].Y)
	}
}

func TestQuickPauseResumeRunsOneLoop(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	g.Start()
	g.frames.Tick()

	g.Pause()
	g.Resume()
	g.Pause()
	g.Resume()

	g.frames.Tick()
	if s := g.Session(); s.Frames != 2 {
		t.Errorf("frames = %d, want 2", s.Frames)
	}
}

func TestEscapeIgnoredWhenNotRunning(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	if a := g.HandleKey(core.KeyEscape); a != ActionNone {
		t.Errorf("escape in ready mapped to %v", a)
	}
	if g.Phase() != PhaseReady {
		t.Errorf("phase = %v", g.Phase())
	}
}

// playUntilGameOver spawns one obstacle in the player's lane and ticks until
// it hits.
func playUntilGameOver(t *testing.T, g testGame) {
	t.Helper()
	g.Start()
	g.frames.TickN(1000)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game-over", g.Phase())
	}
}

func TestCollisionEndsGame(t *testing.T) {
	var results []Result
	g := newTestGame(t, spawnIn(1, 0), OnGameOver(func(r Result) { results = append(results, r) }))
	playUntilGameOver(t, g)

	if g.frames.Pending() {
		t.Error("loop still armed after game over")
	}
	texts := g.rec.Texts()
	if texts[len(texts)-4] != "Game Over!" {
		t.Errorf("texts = %v", texts)
	}
	if len(results) != 1 || results[0].Score != 0 || results[0].NewRecord {
		t.Errorf("results = %+v", results)
	}
	// red obstacle from y=-50 at 5 px per frame: overlaps the player at y > 350
	if results[0].Frames != 81 {
		t.Errorf("frames = %d, want 81", results[0].Frames)
	}

	s := g.Session()
	if s.Score != 0 || len(s.Obstacles) != 0 || s.Speed != 5 {
		t.Errorf("session not reset: %+v", s)
	}
}

func TestScoringAndHighScore(t *testing.T) {
	var scored []int
	rng := &scriptedRand{
		// first obstacle in lane 0 passes, second in lane 1 hits
		floats: []float64{0},
		ints:   []int{0, 0},
	}
	g := newTestGame(t, rng, OnScore(func(s int) { scored = append(scored, s) }))
	g.Start()

	// lane 0 obstacle passes the bottom on frame 111
	g.frames.TickN(110)
	if s := g.Session(); s.Score != 0 {
		t.Fatalf("score before passing = %d", s.Score)
	}
	g.frames.Tick()
	if s := g.Session(); s.Score != 1 || len(s.Obstacles) != 0 {
		t.Fatalf("score = %d obstacles = %d, want 1/0", s.Score, len(s.Obstacles))
	}
	if len(scored) != 1 || scored[0] != 1 {
		t.Errorf("OnScore calls = %v", scored)
	}

	// now drop one on the player
	rng.floats = []float64{0}
	rng.ints = []int{1, 0}
	g.frames.TickN(1000)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v", g.Phase())
	}
	if g.HighScore() != 1 {
		t.Errorf("high score = %d, want 1", g.HighScore())
	}
	if v, ok, _ := g.store.Int(KeyHighScore); !ok || v != 1 {
		t.Errorf("stored high score = %d (%v), want 1", v, ok)
	}
	if s := g.Session(); s.LastScore != 1 {
		t.Errorf("last score = %d, want 1", s.LastScore)
	}
	if hs := g.sink.highScores; hs[len(hs)-1] != 1 {
		t.Errorf("sink high scores = %v", hs)
	}
}

func TestHighScoreMonotonic(t *testing.T) {
	cfg := testConfig()
	store := NewMemoryStore()
	store.SetInt(KeyHighScore, 50)
	writes := store.Writes()

	frames := loop.NewFrames()
	g, err := New(core.NewRecorder(300, 500), store, cfg, WithScheduler(frames), WithRand(spawnIn(1, 0)))
	if err != nil {
		t.Fatal(err)
	}
	g.Start()
	frames.TickN(1000)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v", g.Phase())
	}
	if g.HighScore() != 50 {
		t.Errorf("high score = %d, want 50", g.HighScore())
	}
	if store.Writes() != writes {
		t.Error("high score written without improvement")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, spawnIn(1, 0))
	playUntilGameOver(t, g)

	g.HandleKey(core.KeyRight)
	g.HandleKey(core.KeySpace)
	if g.Phase() != PhaseRunning || !g.frames.Pending() {
		t.Fatal("space after game over should start a new session")
	}
	s := g.Session()
	if s.Player.Lane != 1 || s.Score != 0 || s.Frames != 0 {
		t.Errorf("new session = %+v", s)
	}
}

func TestTouchSwipe(t *testing.T) {
	g := newTestGame(t, &scriptedRand{})
	g.Start()

	g.TouchStart(100)
	g.TouchEnd(20)
	if s := g.Session(); s.Player.Lane != 2 {
		t.Errorf("swipe left: lane = %d, want 2", s.Player.Lane)
	}

	g.TouchStart(0)
	g.TouchEnd(60)
	if s := g.Session(); s.Player.Lane != 1 {
		t.Errorf("swipe right: lane = %d, want 1", s.Player.Lane)
	}

	g.TouchStart(0)
	g.TouchEnd(51)
	if s := g.Session(); s.Player.Lane != 0 {
		t.Errorf("second swipe right: lane = %d, want 0", s.Player.Lane)
	}

	g.TouchStart(0)
	g.TouchEnd(40)
	if s := g.Session(); s.Player.Lane != 0 {
		t.Errorf("short swipe moved the player to lane %d", s.Player.Lane)
	}
}

func TestKonamiFiresEasterEgg(t *testing.T) {
	fired := 0
	g := newTestGame(t, &scriptedRand{}, OnEasterEgg(func() { fired++ }))
	for _, k := range KonamiCode {
		g.HandleKey(k)
	}
	if fired != 1 {
		t.Errorf("easter egg fired %d times, want 1", fired)
	}
}

func TestThemeToggle(t *testing.T) {
	g := newTestGame(t, spawnIn(0, 0))
	g.Start()
	g.frames.Tick()
	red := g.Session().Obstacles[0].Color

	if a := g.HandleKey(core.KeyTheme); a != ActionTheme {
		t.Fatalf("t mapped to %v", a)
	}
	if g.Theme() != ThemeBW {
		t.Fatalf("theme = %v, want bw", g.Theme())
	}
	s := g.Session()
	if s.Player.Color != core.ColorBlack {
		t.Errorf("player color = %v, want black", s.Player.Color)
	}
	if s.Obstacles[0].Color != red {
		t.Error("existing obstacles must keep their color")
	}
	for _, a := range g.Config().Obstacles.Archetypes {
		if a.Color != core.ColorGray {
			t.Errorf("archetype %s color = %v, want gray", a.Name, a.Color)
		}
	}
	if v, ok, _ := g.store.Int(KeyTheme); !ok || Theme(v) != ThemeBW {
		t.Errorf("stored theme = %d (%v)", v, ok)
	}

	g.ToggleTheme()
	if g.Session().Player.Color != core.ColorPink || g.Config().Obstacles.Archetypes[0].Color != core.ColorRed {
		t.Error("colorful palette not restored")
	}
}

func TestThemeLoadedFromStore(t *testing.T) {
	store := NewMemoryStore()
	store.SetInt(KeyTheme, int(ThemeBW))

	g, err := New(core.NewRecorder(300, 500), store, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Theme() != ThemeBW || g.Session().Player.Color != core.ColorBlack {
		t.Errorf("theme = %v player = %v", g.Theme(), g.Session().Player.Color)
	}

	g2, err := New(core.NewRecorder(300, 500), store, testConfig(), WithTheme(ThemeColorful))
	if err != nil {
		t.Fatal(err)
	}
	if g2.Theme() != ThemeColorful {
		t.Errorf("WithTheme did not override the stored theme")
	}
}

func TestThemeDoesNotLeakIntoCallerConfig(t *testing.T) {
	cfg := testConfig()
	g, err := New(core.NewRecorder(300, 500), nil, cfg, WithTheme(ThemeBW))
	if err != nil {
		t.Fatal(err)
	}
	_ = g
	if cfg.Obstacles.Archetypes[0].Color != core.ColorRed {
		t.Error("theme modified the caller's archetypes")
	}
}

func TestStopAbandonsSession(t *testing.T) {
	g := newTestGame(t, spawnIn(0, 0))
	g.Start()
	g.frames.TickN(5)
	writes := g.store.Writes()

	g.Stop()
	if g.Phase() != PhaseReady {
		t.Fatalf("phase = %v, want ready", g.Phase())
	}
	if s := g.Session(); s.Frames != 0 || len(s.Obstacles) != 0 {
		t.Errorf("session not reset: %+v", s)
	}
	if g.store.Writes() != writes {
		t.Error("stop must not touch the store")
	}
	if texts := g.rec.Texts(); len(texts) == 0 || texts[0] != "Game Ready!" {
		t.Errorf("texts = %v, want the ready screen", texts)
	}

	// the stale frame drains without simulating
	g.frames.Tick()
	if g.frames.Pending() || g.Session().Frames != 0 {
		t.Error("stale frame kept running after stop")
	}

	g.Start()
	g.frames.TickN(2)
	if s := g.Session(); s.Frames != 2 {
		t.Errorf("frames after restart = %d, want 2", s.Frames)
	}
}
