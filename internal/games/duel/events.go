package duel

import "github.com/vovakirdan/shield-duel/internal/core"

// EventKind identifies a discrete occurrence during a tick.
type EventKind int

const (
	EventFired        EventKind = iota // Player fired a projectile
	EventHit                           // Player was hit
	EventShieldBroken                  // Player's shield dropped to zero
	EventMatchStarted                  // intro finished, Player is unset
	EventMatchOver                     // Player is the winner, unset on a draw
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventHit:
		return "hit"
	case EventShieldBroken:
		return "shield-broken"
	case EventMatchStarted:
		return "match-started"
	case EventMatchOver:
		return "match-over"
	default:
		return "unknown"
	}
}

// Event is reported once, in the snapshot of the tick it happened in.
type Event struct {
	Kind   EventKind
	Player core.PlayerID
}

func (g *Game) emit(kind EventKind, player core.PlayerID) {
	g.events = append(g.events, Event{Kind: kind, Player: player})
}
