package duel

import (
	"math"

	"github.com/vovakirdan/shield-duel/internal/core"
)

// ActorState is the read-only view of an actor.
type ActorState struct {
	ID           core.PlayerID
	X, Y         float64
	W, H         float64
	Health       int
	Shield       int
	MaxHealth    int
	MaxShield    int
	ShieldActive bool
	ShieldBroken bool
	Facing       Direction
	CanFire      bool
}

// Box returns the actor's bounding box.
func (s ActorState) Box() core.Box {
	return core.NewBox(s.X, s.Y, s.W, s.H)
}

// ProjectileState is the read-only view of a projectile.
type ProjectileState struct {
	X, Y  float64
	W, H  float64
	Owner core.PlayerID
}

// Snapshot is everything presentation needs after a tick.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Phase   Phase
	Outcome Outcome
	Banner  string
	Score1  int
	Score2  int

	ArenaW, ArenaH float64

	Actors      [2]ActorState
	Projectiles []ProjectileState

	IntroStage IntroStage
	Countdown  int // whole seconds left while counting down

	// Events that happened during this tick only.
	Events []Event
}

// Actor returns the state of the given player.
func (s Snapshot) Actor(id core.PlayerID) ActorState {
	if id == core.Player2 {
		return s.Actors[1]
	}
	return s.Actors[0]
}

// HasEvent reports whether an event of the given kind happened this tick.
func (s Snapshot) HasEvent(kind EventKind) bool {
	for _, e := range s.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Snapshot returns the current state. Slices are copies.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tickCount,
		Mode:       g.mode,
		Phase:      g.phase,
		Outcome:    g.outcome,
		Banner:     g.outcome.Banner(),
		Score1:     g.score1,
		Score2:     g.score2,
		ArenaW:     g.cfg.Arena.Width,
		ArenaH:     g.cfg.Arena.Height,
		IntroStage: g.introStage,
		Countdown:  g.countdownRemaining(),
	}

	for i := range g.actors {
		a := &g.actors[i]
		snap.Actors[i] = ActorState{
			ID:           a.ID,
			X:            a.X,
			Y:            a.Y,
			W:            a.W,
			H:            a.H,
			Health:       a.Health,
			Shield:       a.Shield,
			MaxHealth:    a.maxHealth,
			MaxShield:    a.maxShield,
			ShieldActive: a.ShieldActive,
			ShieldBroken: a.ShieldBroken,
			Facing:       a.Facing,
			CanFire:      a.CanFire,
		}
	}

	snap.Projectiles = make([]ProjectileState, len(g.projectiles))
	for i, p := range g.projectiles {
		snap.Projectiles[i] = ProjectileState{X: p.X, Y: p.Y, W: p.W, H: p.H, Owner: p.Owner}
	}

	if len(g.events) > 0 {
		snap.Events = append([]Event(nil), g.events...)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Projectile order is not part of the hash.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score1)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score2)  //#nosec G115 -- hash computation

	for _, a := range snap.Actors {
		h = h*31 + math.Float64bits(a.X)
		h = h*31 + math.Float64bits(a.Y)
		h = h*31 + uint64(a.Health) //#nosec G115 -- hash computation
		h = h*31 + uint64(a.Shield) //#nosec G115 -- hash computation
		h = h*31 + uint64(a.Facing) //#nosec G115 -- hash computation
		h = h*31 + boolBit(a.ShieldActive)
		h = h*31 + boolBit(a.ShieldBroken)
		h = h*31 + boolBit(a.CanFire)
	}

	// Sum projectiles so swap-removal order does not matter.
	var ph uint64
	for _, p := range snap.Projectiles {
		v := math.Float64bits(p.X)*31 + math.Float64bits(p.Y)
		ph += v*31 + uint64(p.Owner) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(len(snap.Projectiles))
	h = h*31 + ph

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
