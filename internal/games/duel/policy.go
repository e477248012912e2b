package duel

import (
	"math"

	"github.com/vovakirdan/shield-duel/internal/config"
)

// Decision is the opponent policy's output for one tick.
type Decision struct {
	DX, DY float64   // displacement to apply this tick
	Fire   bool      // fire a projectile this tick
	Facing Direction // direction to face (and shoot)
}

// decide computes the policy actor's move from both centers.
//
// The displacement is the center-to-center vector scaled by the gain, each
// axis clamped to ±speed, so the actor slows down as it closes in. It fires
// when the target is within range and the gate is open.
func decide(self, target *Actor, gateOpen bool, cfg config.DuelConfig) Decision {
	sx, sy := self.Center()
	tx, ty := target.Center()
	diffX := tx - sx
	diffY := ty - sy

	speed := cfg.Actor.Speed
	d := Decision{
		DX:     clampSym(diffX*cfg.Policy.Gain, speed),
		DY:     clampSym(diffY*cfg.Policy.Gain, speed),
		Facing: facingToward(diffX, diffY, self.Facing),
	}

	distance := math.Hypot(diffX, diffY)
	d.Fire = gateOpen && distance < cfg.Policy.FireRange
	return d
}

// facingToward picks the dominant axis of (dx, dy). A zero vector keeps
// the current facing.
func facingToward(dx, dy float64, current Direction) Direction {
	switch {
	case dx == 0 && dy == 0:
		return current
	case math.Abs(dx) >= math.Abs(dy):
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	case dy > 0:
		return DirDown
	default:
		return DirUp
	}
}

func clampSym(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
