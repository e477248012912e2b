package duel

import (
	"time"

	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
)

// Direction is the cardinal direction an actor faces. Shots travel this way.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Actor is one of the two combatants.
type Actor struct {
	ID   core.PlayerID
	X, Y float64
	W, H float64

	Health int
	Shield int

	ShieldActive bool
	ShieldBroken bool // cosmetic, cleared once the sim clock passes shieldBrokenUntil
	Facing       Direction
	CanFire      bool

	shieldBrokenUntil time.Duration
	fireReadyAt       time.Duration
	fireTimed         bool // gate reopens at fireReadyAt instead of on release
	maxHealth         int
	maxShield         int
}

// newActor creates an actor at its spawn point with full pools.
func newActor(id core.PlayerID, cfg config.DuelConfig) Actor {
	a := Actor{ID: id}
	a.reset(cfg)
	return a
}

// reset restores spawn position, pools and gates.
func (a *Actor) reset(cfg config.DuelConfig) {
	spawn := cfg.Spawn.Player1
	facing := DirRight
	if a.ID == core.Player2 {
		spawn = cfg.Spawn.Player2
		facing = DirLeft
	}

	a.X, a.Y = spawn.X, spawn.Y
	a.W, a.H = cfg.Actor.Width, cfg.Actor.Height
	a.maxHealth = cfg.Actor.MaxHealth
	a.maxShield = cfg.Actor.MaxShield
	a.Health = a.maxHealth
	a.Shield = a.maxShield
	a.ShieldActive = false
	a.ShieldBroken = false
	a.Facing = facing
	a.CanFire = true
	a.shieldBrokenUntil = 0
	a.fireReadyAt = 0
	a.fireTimed = false
}

// Box returns the actor's bounding box.
func (a *Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.W, a.H)
}

// Center returns the center of the actor's box.
func (a *Actor) Center() (float64, float64) {
	return a.Box().Center()
}

// Alive reports whether the actor still has health.
func (a *Actor) Alive() bool {
	return a.Health > 0
}

// clampPools keeps health and shield inside their valid range.
func (a *Actor) clampPools() {
	a.Health = core.Clamp(a.Health, 0, a.maxHealth)
	a.Shield = core.Clamp(a.Shield, 0, a.maxShield)
}

// expireTimers clears flags whose deadline has passed.
func (a *Actor) expireTimers(now time.Duration) {
	if a.ShieldBroken && now >= a.shieldBrokenUntil {
		a.ShieldBroken = false
	}
	if !a.CanFire && a.fireTimed && now >= a.fireReadyAt {
		a.CanFire = true
		a.fireTimed = false
	}
}

// closeGateFor closes the fire gate until the sim clock reaches now+d.
func (a *Actor) closeGateFor(now, d time.Duration) {
	a.CanFire = false
	a.fireTimed = true
	a.fireReadyAt = now + d
}

// faceFromInput updates facing from held movement keys.
// Up wins over down, down over left, left over right.
func (a *Actor) faceFromInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		a.Facing = DirUp
	case in.Has(core.ActionDown):
		a.Facing = DirDown
	case in.Has(core.ActionLeft):
		a.Facing = DirLeft
	case in.Has(core.ActionRight):
		a.Facing = DirRight
	}
}
