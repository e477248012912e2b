// Package tui provides the Bubble Tea integration for the duel.
// It handles the terminal UI loop, held-key input sampling, the setup menu
// and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick of the match with ID.
// Ticks addressed to an earlier match are dropped, so only one loop runs.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var matchIDs atomic.Int64

// nextMatchID returns a process-unique tick loop ID.
func nextMatchID() int64 {
	return matchIDs.Add(1)
}

// tickInterval is the fixed simulation step for the given rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends a tick message after one interval.
// The next tick is only scheduled once the previous one has been handled.
func tickCmd(tickRate int, id int64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
