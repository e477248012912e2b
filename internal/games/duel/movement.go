package duel

import "github.com/vovakirdan/shield-duel/internal/core"

// intentDelta converts held keys to a per-axis displacement.
// Opposite keys cancel out.
func intentDelta(in core.InputFrame, speed float64) (dx, dy float64) {
	if in.Has(core.ActionLeft) {
		dx -= speed
	}
	if in.Has(core.ActionRight) {
		dx += speed
	}
	if in.Has(core.ActionUp) {
		dy -= speed
	}
	if in.Has(core.ActionDown) {
		dy += speed
	}
	return dx, dy
}

// gate drops delta when pos+delta would leave [0, limit].
func gate(pos, delta, limit float64) float64 {
	next := pos + delta
	if next < 0 || next > limit {
		return 0
	}
	return delta
}

// resolveMovement moves both actors for one tick.
//
// Horizontal deltas for both actors are applied together and reverted
// together if the actors end up overlapping; the vertical pass follows with
// its own snapshot. In solo mode the policy move runs afterwards and only
// the policy actor is reverted on overlap.
func (g *Game) resolveMovement(in1, in2 core.InputFrame) {
	p1, p2 := &g.actors[0], &g.actors[1]
	speed := g.cfg.Actor.Speed
	maxX := g.cfg.Arena.Width - g.cfg.Actor.Width
	maxY := g.cfg.Arena.Height - g.cfg.Actor.Height
	margin := g.cfg.Arena.Margin

	dx1, dy1 := intentDelta(in1, speed)
	var dx2, dy2 float64
	if g.mode == ModeDuo {
		dx2, dy2 = intentDelta(in2, speed)
	}

	dx1 = gate(p1.X, dx1, maxX)
	dx2 = gate(p2.X, dx2, maxX)
	dy1 = gate(p1.Y, dy1, maxY)
	dy2 = gate(p2.Y, dy2, maxY)

	// Horizontal pass
	oldX1, oldX2 := p1.X, p2.X
	p1.X += dx1
	p2.X += dx2
	if p1.Box().Overlaps(p2.Box(), margin) {
		p1.X, p2.X = oldX1, oldX2
	}

	// Vertical pass
	oldY1, oldY2 := p1.Y, p2.Y
	p1.Y += dy1
	p2.Y += dy2
	if p1.Box().Overlaps(p2.Box(), margin) {
		p1.Y, p2.Y = oldY1, oldY2
	}

	if g.mode == ModeSolo {
		g.movePolicyActor(p2, p1)
	}
}

// movePolicyActor applies the opponent policy to ai, reverting its move if
// it would overlap the human, then fires if the policy asks to.
func (g *Game) movePolicyActor(ai, human *Actor) {
	d := decide(ai, human, ai.CanFire, g.cfg)

	oldX, oldY := ai.X, ai.Y
	ai.X = core.ClampF(ai.X+d.DX, 0, g.cfg.Arena.Width-ai.W)
	ai.Y = core.ClampF(ai.Y+d.DY, 0, g.cfg.Arena.Height-ai.H)
	if ai.Box().Overlaps(human.Box(), g.cfg.Arena.Margin) {
		ai.X, ai.Y = oldX, oldY
	}

	ai.Facing = d.Facing
	ai.ShieldActive = false
	if d.Fire {
		g.fire(ai)
		ai.closeGateFor(g.now, g.cfg.FireCooldown())
	}
}
