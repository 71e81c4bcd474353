// Package tui provides the Bubble Tea integration for the simulator: an
// animated watch view for single games, a run-history table, and SSH
// serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next die roll in the watch view.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rolls-per-second rate.
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 1
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
