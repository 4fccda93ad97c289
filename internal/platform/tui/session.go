package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/hoodierun/internal/runner"
)

// screenKind is which part of the session is on screen.
type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts      Options
	kv        runner.Store
	sessionID uuid.UUID
	screen    screenKind
	menu      MenuModel
	game      *GameModel
	scores    *ScoreboardModel
	width     int
	height    int
	lastErr   error
	quitting  bool
}

// NewSessionModel creates a new session. Every run played in it is recorded
// under one session ID.
func NewSessionModel(opts Options, width, height int) SessionModel {
	kv := opts.kv()

	// A theme given on the command line becomes the saved theme, so the menu
	// shows it and can still change it.
	if opts.Theme != "" {
		if theme, err := runner.ParseTheme(opts.Theme); err == nil {
			if err := kv.SetInt(runner.KeyTheme, int(theme)); err != nil {
				opts.logger().Warn("could not save theme", "error", err)
			}
		}
		opts.Theme = ""
	}

	return SessionModel{
		opts:      opts,
		kv:        kv,
		sessionID: uuid.New(),
		menu:      NewMenuModel(kv, width, height),
		width:     width,
		height:    height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		game, err := NewGameModel(m.opts, m.kv, m.sessionID)
		if err != nil {
			m.lastErr = err
			m.opts.logger().Error("could not start game", "error", err)
			m.menu = NewMenuModel(m.kv, m.width, m.height)
			return m, nil
		}
		game.width, game.height = m.width, m.height
		game.help.Width = m.width
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceScores:
		scores := NewScoreboardModel(m.opts.Store, m.width, m.height)
		m.scores = &scores
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	game := next.(GameModel)
	m.game = &game

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		// the pending tick finds no game and is dropped
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	scores := next.(ScoreboardModel)
	m.scores = &scores

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.screen = screenMenu
	m.game = nil
	m.scores = nil
	m.menu = NewMenuModel(m.kv, m.width, m.height)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.lastErr != nil {
		view += "\n" + centerText(alertStyle.Render(m.lastErr.Error()), m.width)
	}
	return view
}

// SessionID returns the ID runs of this session are recorded under.
func (m SessionModel) SessionID() uuid.UUID {
	return m.sessionID
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options, width, height int) error {
	model := NewSessionModel(opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drags act as swipes
	)

	_, err := p.Run()
	return err
}
