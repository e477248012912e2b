package duel

import (
	"testing"

	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
)

func TestSpawnProjectileOffsets(t *testing.T) {
	cfg := config.DefaultDuelConfig()

	tests := []struct {
		facing       Direction
		wantX, wantY float64
		wantVX       float64
		wantVY       float64
	}{
		{DirUp, 115, 90, 0, -10},
		{DirDown, 115, 140, 0, 10},
		{DirLeft, 90, 115, -10, 0},
		{DirRight, 140, 115, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.facing.String(), func(t *testing.T) {
			a := newActor(core.Player1, cfg)
			a.X, a.Y = 100, 100
			a.Facing = tc.facing

			p := spawnProjectile(&a, cfg)

			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("spawn = (%v, %v), expected (%v, %v)", p.X, p.Y, tc.wantX, tc.wantY)
			}
			if p.VX != tc.wantVX || p.VY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", p.VX, p.VY, tc.wantVX, tc.wantVY)
			}
			if p.Owner != core.Player1 || p.W != 10 || p.H != 4 {
				t.Errorf("projectile = %+v, expected a 10x4 shot owned by player 1", p)
			}
		})
	}
}

func TestProjectileLeavingBoundsIsAMiss(t *testing.T) {
	tests := []struct {
		name string
		p    Projectile
	}{
		{"right edge", Projectile{X: 795, Y: 100, VX: 10}},
		{"left edge", Projectile{X: 5, Y: 100, VX: -10}},
		{"top edge", Projectile{X: 400, Y: 5, VY: -10}},
		{"bottom edge", Projectile{X: 400, Y: 595, VY: 10}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := runningGame(ModeDuo, 100, 300, 600, 300)
			tc.p.W, tc.p.H, tc.p.Owner = 10, 4, core.Player1
			g.projectiles = append(g.projectiles, tc.p)

			g.advanceProjectiles()

			if len(g.projectiles) != 0 {
				t.Errorf("projectile should be removed, got %+v", g.projectiles)
			}
			if len(g.events) != 0 {
				t.Errorf("a miss should not produce events, got %v", g.events)
			}
			if g.actors[0].Health != 100 || g.actors[1].Health != 100 {
				t.Error("a miss should not damage anyone")
			}
		})
	}
}

func TestProjectileHitsOnlyNonOwner(t *testing.T) {
	g := runningGame(ModeDuo, 100, 300, 160, 300)

	snap := g.Tick(input(core.Player1, core.ActionFire), frame)

	if snap.Actors[1].Health != 90 {
		t.Errorf("player 2 health = %d, expected 90", snap.Actors[1].Health)
	}
	if snap.Actors[0].Health != 100 {
		t.Errorf("shooter should not be hit, health = %d", snap.Actors[0].Health)
	}
	if len(snap.Projectiles) != 0 {
		t.Errorf("projectile should be consumed by the hit, got %d", len(snap.Projectiles))
	}
	if countEvents(snap, EventFired, core.Player1) != 1 || countEvents(snap, EventHit, core.Player2) != 1 {
		t.Errorf("events = %v, expected one fire and one hit", snap.Events)
	}
}

func TestProjectileRemovalKeepsOthers(t *testing.T) {
	g := runningGame(ModeDuo, 100, 300, 600, 300)
	shots := []Projectile{
		{X: 795, Y: 100, VX: 10},  // leaves the arena
		{X: 400, Y: 100, VX: 10},  // keeps flying
		{X: 580, Y: 318, VX: 10},  // hits player 2
		{X: 400, Y: 200, VY: -10}, // keeps flying
	}
	for _, s := range shots {
		s.W, s.H, s.Owner = 10, 4, core.Player1
		g.projectiles = append(g.projectiles, s)
	}

	g.advanceProjectiles()

	if len(g.projectiles) != 2 {
		t.Fatalf("%d projectiles left, expected 2", len(g.projectiles))
	}
	for _, p := range g.projectiles {
		if p.X != 410 && p.Y != 190 {
			t.Errorf("unexpected survivor %+v", p)
		}
	}
	if g.actors[1].Health != 90 {
		t.Errorf("player 2 health = %d, expected exactly one hit", g.actors[1].Health)
	}
}

func TestProjectilesSkipKnockedOutActor(t *testing.T) {
	g := runningGame(ModeDuo, 100, 300, 600, 300)
	g.actors[1].Health = 10
	g.actors[1].Shield = 0
	for _, y := range []float64{310, 318, 326} {
		g.projectiles = append(g.projectiles, Projectile{X: 580, Y: y, VX: 10, W: 10, H: 4, Owner: core.Player1})
	}

	g.advanceProjectiles()

	if len(g.projectiles) != 0 {
		t.Errorf("%d projectiles left, expected all consumed on contact", len(g.projectiles))
	}
	if g.actors[1].Health != 0 {
		t.Errorf("player 2 health = %d, expected 0", g.actors[1].Health)
	}
	hits := 0
	for _, e := range g.events {
		if e.Kind == EventHit {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("%d hits recorded, expected only the lethal one", hits)
	}
}

func TestHumanFireGate(t *testing.T) {
	g := runningGame(ModeDuo, 100, 100, 600, 500)
	fire := input(core.Player1, core.ActionFire)
	empty := core.NewMultiInputFrame()

	fired := 0
	for _, in := range []core.MultiInputFrame{fire, fire, fire, empty, fire, fire} {
		snap := g.Tick(in, frame)
		fired += countEvents(snap, EventFired, core.Player1)
	}

	if fired != 2 {
		t.Errorf("fired %d times, expected one shot per press", fired)
	}
}

func TestFireUsesHeldDirection(t *testing.T) {
	g := runningGame(ModeDuo, 100, 100, 600, 500)
	snap := g.Tick(input(core.Player1, core.ActionUp, core.ActionFire), frame)

	if snap.Actors[0].Facing != DirUp {
		t.Errorf("facing = %v, expected up", snap.Actors[0].Facing)
	}
	if len(snap.Projectiles) != 1 || snap.Projectiles[0].X != 115 {
		t.Errorf("projectiles = %+v, expected one shot going up", snap.Projectiles)
	}
}
