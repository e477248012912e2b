package duel

import (
	"fmt"

	"github.com/vovakirdan/shield-duel/internal/core"
)

// Mode selects who drives player 2.
type Mode int

const (
	ModeDuo  Mode = iota // two humans on one keyboard
	ModeSolo             // player 2 is driven by the opponent policy
)

// String returns the mode name used on the command line.
func (m Mode) String() string {
	if m == ModeSolo {
		return "solo"
	}
	return "duo"
}

// ParseMode parses "duo" or "solo".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "duo":
		return ModeDuo, nil
	case "solo":
		return ModeSolo, nil
	default:
		return ModeDuo, fmt.Errorf("unknown mode %q (want duo or solo)", s)
	}
}

// Phase is the match lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // at rest, waiting for start
	PhaseDropping              // countdown and drop-in intro
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDropping:
		return "dropping"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
	OutcomeDraw
)

// Banner returns the text announcing the outcome.
func (o Outcome) Banner() string {
	switch o {
	case OutcomePlayer1:
		return "Player 1 wins!"
	case OutcomePlayer2:
		return "Player 2 wins!"
	case OutcomeDraw:
		return "It's a draw!"
	default:
		return ""
	}
}

// Winner returns the winning player, or 0 for a draw or unfinished match.
func (o Outcome) Winner() core.PlayerID {
	switch o {
	case OutcomePlayer1:
		return core.Player1
	case OutcomePlayer2:
		return core.Player2
	default:
		return 0
	}
}

// resolveOutcome maps end-of-tick health to an outcome.
func resolveOutcome(health1, health2 int) Outcome {
	switch {
	case health1 <= 0 && health2 <= 0:
		return OutcomeDraw
	case health1 <= 0:
		return OutcomePlayer2
	case health2 <= 0:
		return OutcomePlayer1
	default:
		return OutcomeNone
	}
}

// checkTerminal ends the match if either actor is out of health.
// The survivor scores a point; a draw scores nothing.
func (g *Game) checkTerminal() {
	outcome := resolveOutcome(g.actors[0].Health, g.actors[1].Health)
	if outcome == OutcomeNone {
		return
	}

	g.phase = PhaseOver
	g.outcome = outcome
	switch outcome {
	case OutcomePlayer1:
		g.score1++
	case OutcomePlayer2:
		g.score2++
	}
	g.emit(EventMatchOver, outcome.Winner())
}
