// Package tui provides the Bubble Tea host for the runner: a start menu,
// the game itself rasterized into terminal cells, the scoreboard and the
// SSH server that serves all of it per connection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// popupExpiredMsg removes a score popup once its animation is over.
type popupExpiredMsg struct {
	id int
}

func popupExpireCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return popupExpiredMsg{id: id}
	})
}
