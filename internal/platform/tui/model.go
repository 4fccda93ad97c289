package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/hoodierun/internal/config"
	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/loop"
	"github.com/vovakirdan/hoodierun/internal/runner"
	"github.com/vovakirdan/hoodierun/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Config config.RunnerConfig

	// Store keeps the high score, the theme and run history.
	// Nil keeps scores in memory for the lifetime of the session.
	Store *storage.Store

	// Shared marks Store as used by several sessions at once.
	Shared bool

	Player        string // recorded with each run
	TickRate      int
	Seed          int64  // 0 picks a time-based seed for each game
	Theme         string // "" keeps the saved theme
	Logger        *log.Logger
	ScreenshotDir string
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// kv returns the scalar store games read and write.
func (o Options) kv() runner.Store {
	switch {
	case o.Store == nil:
		return runner.NewMemoryStore()
	case o.Shared:
		return o.Store.Shared(runner.KeyHighScore)
	default:
		return o.Store
	}
}

// GameModel is the Bubble Tea model that hosts one runner.Game.
type GameModel struct {
	game      *runner.Game
	canvas    *core.Canvas
	frames    *loop.Frames
	hud       *hud
	opts      Options
	sessionID uuid.UUID
	keys      PlayKeyMap
	help      help.Model
	width     int
	height    int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates the game for one terminal session. kv is the store
// for high score and theme; runs are recorded under sessionID.
func NewGameModel(opts Options, kv runner.Store, sessionID uuid.UUID) (GameModel, error) {
	cfg := opts.Config
	canvas := core.NewCanvas(cfg.Surface.Width, cfg.Surface.Height, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	frames := loop.NewFrames()
	h := newHUD()
	logger := opts.logger()

	m := GameModel{
		canvas:    canvas,
		frames:    frames,
		hud:       h,
		opts:      opts,
		sessionID: sessionID,
		keys:      DefaultPlayKeyMap(),
		help:      help.New(),
	}

	gameOpts := []runner.Option{
		runner.WithScheduler(frames),
		runner.WithScoreSink(h),
		runner.WithLogger(logger),
		runner.OnScore(h.addPopup),
		runner.OnEasterEgg(h.startRainbow),
		runner.OnGameOver(func(r runner.Result) {
			saveRun(opts.Store, logger, storage.Run{
				SessionID: sessionID,
				Player:    opts.Player,
				Score:     r.Score,
				Frames:    r.Frames,
			})
		}),
	}
	if opts.Seed != 0 {
		gameOpts = append(gameOpts, runner.WithSeed(opts.Seed))
	}
	if opts.Theme != "" {
		theme, err := runner.ParseTheme(opts.Theme)
		if err != nil {
			return GameModel{}, err
		}
		gameOpts = append(gameOpts, runner.WithTheme(theme))
	}

	game, err := runner.New(canvas, kv, cfg, gameOpts...)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: cannot create game: %w", err)
	}
	m.game = game
	return m, nil
}

// saveRun records a finished run. Runs without a point are not worth a row.
func saveRun(store *storage.Store, logger *log.Logger, run storage.Run) {
	if store == nil || run.Score <= 0 {
		return
	}
	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not save run", "error", err)
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case popupExpiredMsg:
		m.hud.removePopup(msg.id)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if _, err := m.saveScreenshot(); err != nil {
			m.opts.logger().Warn("could not save screenshot", "error", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.Pause) && !m.game.Session().Running():
		// nothing to pause: leave for the menu
		m.backToMenu = true
		return m, nil
	}

	m.game.HandleKey(m.keys.GameKey(msg))
	return m, nil
}

// handleMouse turns a left button press and release into a swipe.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	x, _ := m.canvas.PixelAt(msg.X, 0)
	switch msg.Action {
	case tea.MouseActionPress:
		m.game.TouchStart(x)
	case tea.MouseActionRelease:
		m.game.TouchEnd(x)
	}
	return m, nil
}

// handleTick runs one frame and schedules the expiry of new popups.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.frames.Tick()

	cmds := []tea.Cmd{tickCmd(m.opts.TickRate)}
	for _, id := range m.hud.drainCreated() {
		cmds = append(cmds, popupExpireCmd(id, m.opts.Config.Popup.Duration))
	}
	return m, tea.Batch(cmds...)
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m GameModel) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".hoodierun", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("hoodierun_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot save screenshot: %w", err)
	}
	return path, nil
}

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// View renders the score widgets, the road and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	screen := m.canvas.Screen()
	if m.width > 0 && (m.width < screen.Width() || m.height < screen.Height()+2) {
		return alertStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			screen.Width(), screen.Height()+2, m.width, m.height,
		))
	}

	var b strings.Builder
	b.WriteString(m.hud.widgets(screen.Width()))
	b.WriteString("\n")
	b.WriteString(RenderScreen(screen, m.hud.hue(), m.hud.overlays(m.canvas, m.opts.Config)...))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Game returns the hosted game.
func (m GameModel) Game() *runner.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
