package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hoodierun/internal/core"
	"github.com/vovakirdan/hoodierun/internal/runner"
)

// MenuChoice is what the user picked in the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceTheme
	ChoiceQuit
)

var menuItems = []MenuChoice{ChoicePlay, ChoiceScores, ChoiceTheme, ChoiceQuit}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	kv       runner.Store
	theme    runner.Theme
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected MenuChoice
}

// NewMenuModel creates a new menu model. The theme item reads and writes
// the saved theme in kv.
func NewMenuModel(kv runner.Store, width, height int) MenuModel {
	theme := runner.ThemeColorful
	if v, ok, err := kv.Int(runner.KeyTheme); err == nil && ok && runner.Theme(v) == runner.ThemeBW {
		theme = runner.ThemeBW
	}
	return MenuModel{
		width:  width,
		height: height,
		kv:     kv,
		theme:  theme,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Scores):
		m.selected = ChoiceScores

	case key.Matches(msg, m.keys.Select):
		switch choice := menuItems[m.cursor]; choice {
		case ChoiceTheme:
			// toggled in place, the menu stays open
			m.theme = m.theme.Next()
			//nolint:errcheck // Best-effort save, the game reads whatever is stored
			m.kv.SetInt(runner.KeyTheme, int(m.theme))
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.selected = choice
		}
	}

	return m, nil
}

func (m MenuModel) label(c MenuChoice) string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceScores:
		return "High Scores"
	case ChoiceTheme:
		return fmt.Sprintf("Theme: %s", m.theme)
	case ChoiceQuit:
		return "Quit"
	}
	return ""
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorPink.Hex()))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("ENDLESS PINK HOODIE RUN"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Dodge the monsters, one lane at a time", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + m.label(item)
		if i == m.cursor {
			line = selectedStyle.Render("> " + m.label(item))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen item, ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Theme returns the theme currently shown in the menu.
func (m MenuModel) Theme() runner.Theme {
	return m.theme
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
