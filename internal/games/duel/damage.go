package duel

import "time"

// applyHit resolves one projectile hit against a.
// An active, non-empty shield absorbs the hit; otherwise health takes it.
// Exactly one pool is decremented. It reports whether the shield broke.
//
// A break sets ShieldBroken until now+flash. Another break inside the
// window restarts it.
func applyHit(a *Actor, amount int, now, flash time.Duration) bool {
	if a.ShieldActive && a.Shield > 0 {
		before := a.Shield
		a.Shield -= amount
		a.clampPools()
		if before > 0 && a.Shield == 0 {
			a.ShieldBroken = true
			a.shieldBrokenUntil = now + flash
			return true
		}
		return false
	}

	a.Health -= amount
	a.clampPools()
	return false
}
