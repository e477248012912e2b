package duel

import (
	"time"

	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
)

const frame = 16 * time.Millisecond

// runningGame returns a game already past the intro with actors at the
// given positions.
func runningGame(mode Mode, x1, y1, x2, y2 float64) *Game {
	g := New(config.DefaultDuelConfig(), mode)
	g.phase = PhaseRunning
	g.actors[0].X, g.actors[0].Y = x1, y1
	g.actors[1].X, g.actors[1].Y = x2, y2
	return g
}

// input builds a frame where the given player holds the given actions.
func input(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	m := core.NewMultiInputFrame()
	for _, a := range actions {
		m.Press(id, a)
	}
	return m
}

func countEvents(snap Snapshot, kind EventKind, player core.PlayerID) int {
	n := 0
	for _, e := range snap.Events {
		if e.Kind == kind && e.Player == player {
			n++
		}
	}
	return n
}
