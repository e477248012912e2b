package duel

import "time"

// IntroStage is the step of the drop-in sequence while Dropping.
type IntroStage int

const (
	IntroCountdown IntroStage = iota // counting down before the drop
	IntroFalling                     // actors fall toward the drop line
	IntroHolding                     // landed, short pause before the fight
)

// String returns the stage name.
func (s IntroStage) String() string {
	switch s {
	case IntroCountdown:
		return "countdown"
	case IntroFalling:
		return "falling"
	case IntroHolding:
		return "holding"
	default:
		return "unknown"
	}
}

// beginIntro starts the countdown.
func (g *Game) beginIntro() {
	g.introStage = IntroCountdown
	g.introUntil = g.now + g.cfg.Countdown()
}

// stepIntro advances the drop-in sequence by one tick.
func (g *Game) stepIntro() {
	switch g.introStage {
	case IntroCountdown:
		if g.now >= g.introUntil {
			g.introStage = IntroFalling
		}

	case IntroFalling:
		target := g.cfg.Intro.DropTargetY
		landed := true
		for i := range g.actors {
			a := &g.actors[i]
			if a.Y < target {
				a.Y = min(a.Y+g.cfg.Intro.DropSpeed, target)
			}
			if a.Y < target {
				landed = false
			}
		}
		if landed {
			g.introStage = IntroHolding
			g.introUntil = g.now + g.cfg.IntroHold()
		}

	case IntroHolding:
		if g.now >= g.introUntil {
			g.phase = PhaseRunning
			g.emit(EventMatchStarted, 0)
		}
	}
}

// countdownRemaining returns whole seconds left in the countdown, rounded up.
func (g *Game) countdownRemaining() int {
	if g.phase != PhaseDropping || g.introStage != IntroCountdown {
		return 0
	}
	left := g.introUntil - g.now
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}
