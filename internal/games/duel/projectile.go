package duel

import (
	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
)

// Projectile is a shot in flight. Exactly one velocity axis is nonzero.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Owner  core.PlayerID
}

// Box returns the projectile's bounding box.
func (p Projectile) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// spawnProjectile creates a shot leaving the shooter's facing edge.
// Vertical shots start centered above or below the actor; horizontal shots
// start beside it, centered vertically. The projectile width is used as
// the offset on every side.
func spawnProjectile(a *Actor, cfg config.DuelConfig) Projectile {
	size := cfg.Projectile.Width
	speed := cfg.Projectile.Speed
	p := Projectile{
		W:     cfg.Projectile.Width,
		H:     cfg.Projectile.Height,
		Owner: a.ID,
	}

	switch a.Facing {
	case DirUp:
		p.X = a.X + a.W/2 - size/2
		p.Y = a.Y - size
		p.VY = -speed
	case DirDown:
		p.X = a.X + a.W/2 - size/2
		p.Y = a.Y + a.H
		p.VY = speed
	case DirLeft:
		p.X = a.X - size
		p.Y = a.Y + a.H/2 - size/2
		p.VX = -speed
	default:
		p.X = a.X + a.W
		p.Y = a.Y + a.H/2 - size/2
		p.VX = speed
	}
	return p
}

// outOfBounds reports whether the projectile left the playfield.
func (p Projectile) outOfBounds(width, height float64) bool {
	return p.X < 0 || p.X > width || p.Y < 0 || p.Y > height
}

// advanceProjectiles moves every projectile one step, drops the ones that
// left the arena and resolves hits on the non-owning actor. Iteration runs
// from the end so removal does not skip entries.
func (g *Game) advanceProjectiles() {
	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height

	for i := len(g.projectiles) - 1; i >= 0; i-- {
		p := &g.projectiles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.outOfBounds(w, h) {
			g.removeProjectile(i)
			continue
		}

		target := g.actor(p.Owner.Other())
		if p.Box().Overlaps(target.Box(), g.cfg.Arena.Margin) {
			g.removeProjectile(i)
			// A knocked-out actor takes no further damage this tick
			if target.Alive() {
				g.hit(target)
			}
		}
	}
}

// removeProjectile deletes index i without preserving order.
func (g *Game) removeProjectile(i int) {
	last := len(g.projectiles) - 1
	g.projectiles[i] = g.projectiles[last]
	g.projectiles = g.projectiles[:last]
}

// fire spawns a projectile for a and closes its gate.
func (g *Game) fire(a *Actor) {
	g.projectiles = append(g.projectiles, spawnProjectile(a, g.cfg))
	a.CanFire = false
	g.emit(EventFired, a.ID)
}

// hit applies one hit to target and records the events.
func (g *Game) hit(target *Actor) {
	g.emit(EventHit, target.ID)
	if applyHit(target, g.cfg.Damage.PerHit, g.now, g.cfg.ShieldBreakDuration()) {
		g.emit(EventShieldBroken, target.ID)
	}
}
