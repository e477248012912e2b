// Package duel implements the two-actor arena duel simulation.
// Players move, raise shields and fire projectiles until one runs out of
// health. In solo mode player 2 is driven by a reactive opponent policy.
//
// The simulation is advanced by Tick and never touches the terminal, audio
// or clock on its own; the platform reads Snapshot after each tick.
package duel

import (
	"time"

	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
)

// Game owns both actors, the live projectiles and the match state.
type Game struct {
	cfg     config.DuelConfig
	pending *config.DuelConfig // applied on the next reset

	mode    Mode
	phase   Phase
	outcome Outcome
	score1  int
	score2  int

	actors      [2]Actor
	projectiles []Projectile

	now       time.Duration // sim clock, frozen while paused or idle
	tickCount uint64
	pauseHeld bool

	introStage IntroStage
	introUntil time.Duration

	events []Event
}

// New creates a game in the Idle phase.
func New(cfg config.DuelConfig, mode Mode) *Game {
	g := &Game{
		cfg:  cfg,
		mode: mode,
	}
	g.actors[0] = newActor(core.Player1, cfg)
	g.actors[1] = newActor(core.Player2, cfg)
	return g
}

// Config returns the active tuning.
func (g *Game) Config() config.DuelConfig {
	return g.cfg
}

// SetConfig replaces the tuning. It takes effect immediately while Idle and
// otherwise on the next rematch or reset.
func (g *Game) SetConfig(cfg config.DuelConfig) {
	if g.phase == PhaseIdle {
		g.cfg = cfg
		g.pending = nil
		g.resetActors()
		return
	}
	g.pending = &cfg
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetMode changes the mode. It is ignored unless the match is Idle.
func (g *Game) SetMode(m Mode) bool {
	if g.phase != PhaseIdle {
		return false
	}
	g.mode = m
	g.resetActors()
	return true
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Start begins the intro. Only valid while Idle.
func (g *Game) Start() bool {
	if g.phase != PhaseIdle {
		return false
	}
	g.phase = PhaseDropping
	g.beginIntro()
	return true
}

// TogglePause switches between Running and Paused.
func (g *Game) TogglePause() bool {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// Rematch returns a finished match to Idle. Scores are kept.
func (g *Game) Rematch() bool {
	if g.phase != PhaseOver {
		return false
	}
	g.Reset()
	return true
}

// Reset abandons the current match from any phase and returns to Idle with
// fresh actors and no projectiles. Scores are kept.
func (g *Game) Reset() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.phase = PhaseIdle
	g.outcome = OutcomeNone
	g.pauseHeld = false
	g.resetActors()
}

// ResetScores zeroes both scores.
func (g *Game) ResetScores() {
	g.score1 = 0
	g.score2 = 0
}

func (g *Game) resetActors() {
	for i := range g.actors {
		g.actors[i].reset(g.cfg)
	}
	g.projectiles = g.projectiles[:0]
}

// actor returns the actor for id.
func (g *Game) actor(id core.PlayerID) *Actor {
	if id == core.Player2 {
		return &g.actors[1]
	}
	return &g.actors[0]
}

// Tick advances the simulation by one step and returns the resulting state.
//
// Pause toggles on the press edge of ActionPause from either player. While
// Paused, Idle or Over nothing moves and the clock only runs in Over, so
// cosmetic timers can expire on the result screen.
func (g *Game) Tick(in core.MultiInputFrame, dt time.Duration) Snapshot {
	g.events = g.events[:0]

	pause := in.Any(core.ActionPause)
	if pause && !g.pauseHeld {
		g.TogglePause()
	}
	g.pauseHeld = pause

	switch g.phase {
	case PhaseDropping:
		g.now += dt
		g.tickCount++
		g.stepIntro()
	case PhaseRunning:
		g.now += dt
		g.tickCount++
		g.step(in)
	case PhaseOver:
		g.now += dt
		g.expireTimers()
	}

	return g.Snapshot()
}

// step runs one Running tick: fire, movement, projectiles, terminal check.
func (g *Game) step(in core.MultiInputFrame) {
	g.expireTimers()

	p1, p2 := &g.actors[0], &g.actors[1]
	in1 := in.Player1()
	var in2 core.InputFrame
	if g.mode == ModeDuo {
		in2 = in.Player2()
	}

	p1.faceFromInput(in1)
	g.humanFire(p1, in1)
	if g.mode == ModeDuo {
		p2.faceFromInput(in2)
		g.humanFire(p2, in2)
	}

	g.resolveMovement(in1, in2)

	p1.ShieldActive = in1.Has(core.ActionShield)
	if g.mode == ModeDuo {
		p2.ShieldActive = in2.Has(core.ActionShield)
	}

	g.advanceProjectiles()
	g.checkTerminal()
}

// humanFire fires on the press edge of Fire. The gate reopens once Fire is
// released.
func (g *Game) humanFire(a *Actor, in core.InputFrame) {
	if !in.Has(core.ActionFire) {
		if !a.fireTimed {
			a.CanFire = true
		}
		return
	}
	if a.CanFire {
		g.fire(a)
	}
}

func (g *Game) expireTimers() {
	for i := range g.actors {
		g.actors[i].expireTimers(g.now)
	}
}
