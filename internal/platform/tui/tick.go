// Package tui runs registered games in a Bubble Tea program.
// It maps keys to game actions, drives the game at a fixed tick rate,
// records finished rounds and serves the same flow over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Owner identifies the model whose tick loop produced it.
type TickMsg struct {
	Owner string
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(owner string, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Owner: owner, Time: t}
	})
}
